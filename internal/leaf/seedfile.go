package leaf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout of a seed mesh:
//
//	name: fan
//	params:
//	  vein_growth_rate: 0.5
//	  new_vein_proportion: 0.2
//	vertices:
//	  - {role: vein, x: 0, y: 0}
//	  - {role: convergence, x: 0, y: 1}
//	edges:
//	  - [0, 1]
type seedFile struct {
	Name     string       `yaml:"name"`
	Params   *Parameters  `yaml:"params,omitempty"`
	Vertices []seedVertex `yaml:"vertices"`
	Edges    [][]int      `yaml:"edges"`
}

type seedVertex struct {
	Role string  `yaml:"role"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// DecodeSeed reads a YAML seed mesh. Missing params fall back to
// DefaultParameters.
func DecodeSeed(r io.Reader) (Seed, error) {
	var f seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Seed{}, fmt.Errorf("%w: %v", ErrBadSeed, err)
	}

	seed := Seed{Name: f.Name, Params: DefaultParameters()}
	if f.Params != nil {
		seed.Params = *f.Params
	}
	for i, sv := range f.Vertices {
		role, ok := ParseRole(strings.ToLower(strings.TrimSpace(sv.Role)))
		if !ok {
			return Seed{}, fmt.Errorf("%w: vertex %d has unknown role %q", ErrBadSeed, i, sv.Role)
		}
		v, err := NewVertex(role, Point{X: sv.X, Y: sv.Y})
		if err != nil {
			return Seed{}, err
		}
		seed.Vertices = append(seed.Vertices, v)
	}
	for i, e := range f.Edges {
		if len(e) != 2 {
			return Seed{}, fmt.Errorf("%w: edge %d has %d endpoints", ErrBadSeed, i, len(e))
		}
		seed.Edges = append(seed.Edges, Edge{A: e[0], B: e[1]})
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// LoadSeedFile reads a YAML seed mesh from path. The seed is named after the
// file when the document carries no name.
func LoadSeedFile(path string) (Seed, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Seed{}, errors.Wrap(err, "open seed file")
	}
	defer fh.Close()

	seed, err := DecodeSeed(fh)
	if err != nil {
		return Seed{}, errors.Wrapf(err, "decode seed file %s", path)
	}
	if seed.Name == "" {
		seed.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return seed, nil
}
