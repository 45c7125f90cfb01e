package leaf

import (
	"fmt"
	"math"
	"strconv"
)

// Parameters holds the growth constants of one leaf.
type Parameters struct {
	// VeinGrowthRate is the distance a vein tip advances per time unit.
	VeinGrowthRate float64 `yaml:"vein_growth_rate"`
	// NewVeinProportion is the share of a splitting edge's length that
	// becomes the new tip segment.
	NewVeinProportion float64 `yaml:"new_vein_proportion"`
}

// DefaultParameters returns the standard growth constants.
func DefaultParameters() Parameters {
	return Parameters{VeinGrowthRate: 1.0, NewVeinProportion: 0.1}
}

// Validate reports whether the parameters are usable.
func (p Parameters) Validate() error {
	if !(p.VeinGrowthRate > 0) || math.IsInf(p.VeinGrowthRate, 0) {
		return fmt.Errorf("%w: vein growth rate %v must be positive", ErrBadParams, p.VeinGrowthRate)
	}
	if !(p.NewVeinProportion > 0 && p.NewVeinProportion < 1) {
		return fmt.Errorf("%w: new vein proportion %v must be in (0,1)", ErrBadParams, p.NewVeinProportion)
	}
	return nil
}

// Config selects the seed mesh and growth constants for a leaf.
type Config struct {
	Seed   string
	Params Parameters
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Seed: SeedSeedling, Params: DefaultParameters()}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok && v != "" {
		c.Seed = v
	}
	if v, ok := cfg["vein_growth_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.VeinGrowthRate = parsed
		}
	}
	if v, ok := cfg["new_vein_proportion"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			c.Params.NewVeinProportion = parsed
		}
	}
	return c
}
