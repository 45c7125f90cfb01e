package leaf

import (
	"fmt"
	"slices"
	"sort"
)

// Seed names registered by this package.
const (
	SeedSeedling = "seedling"
	SeedTwin     = "twin"
)

// Seed describes a bootstrap mesh and the parameters it prefers.
type Seed struct {
	Name     string
	Vertices []Vertex
	Edges    []Edge
	Params   Parameters
}

// Validate checks that every edge references a vertex of the seed.
func (s Seed) Validate() error {
	if len(s.Vertices) == 0 {
		return fmt.Errorf("%w: %q has no vertices", ErrBadSeed, s.Name)
	}
	for i, v := range s.Vertices {
		if v == nil {
			return fmt.Errorf("%w: %q vertex %d is nil", ErrBadSeed, s.Name, i)
		}
	}
	for i, e := range s.Edges {
		if e.A < 0 || e.A >= len(s.Vertices) || e.B < 0 || e.B >= len(s.Vertices) || e.A == e.B {
			return fmt.Errorf("%w: %q edge %d %v", ErrBadEdge, s.Name, i, e)
		}
	}
	return nil
}

func (s Seed) clone() Seed {
	s.Vertices = slices.Clone(s.Vertices)
	s.Edges = slices.Clone(s.Edges)
	return s
}

// SeedFactory builds a fresh copy of a seed.
type SeedFactory func() Seed

var seeds = map[string]SeedFactory{}

// RegisterSeed adds a seed factory under the provided name.
func RegisterSeed(name string, f SeedFactory) {
	if name == "" || f == nil {
		return
	}
	seeds[name] = f
}

// Seeds exposes the registry of available seeds.
func Seeds() map[string]SeedFactory {
	return seeds
}

// SeedNames returns the registered seed names in sorted order.
func SeedNames() []string {
	names := make([]string, 0, len(seeds))
	for name := range seeds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupSeed returns a fresh copy of the named seed.
func LookupSeed(name string) (Seed, error) {
	f, ok := seeds[name]
	if !ok {
		return Seed{}, fmt.Errorf("%w %q", ErrUnknownSeed, name)
	}
	return f(), nil
}

// Seedling is the minimal leaf: one vein segment reaching a convergence
// point, flanked by two margin vertices.
func Seedling() Seed {
	return Seed{
		Name: SeedSeedling,
		Vertices: []Vertex{
			Vein{Pos: Point{0, 0}},
			Convergence{Pos: Point{0, 1}},
			Margin{Pos: Point{0.1, 0.1}},
			Margin{Pos: Point{-0.1, 0.1}},
		},
		Edges:  []Edge{{0, 1}, {0, 2}, {0, 2}, {0, 3}, {2, 1}, {3, 1}},
		Params: DefaultParameters(),
	}
}

// Twin is a base vein feeding two convergence points that share a margin
// vertex between them.
func Twin() Seed {
	return Seed{
		Name: SeedTwin,
		Vertices: []Vertex{
			Vein{Pos: Point{0, 0}},
			Convergence{Pos: Point{0.5, 1}},
			Convergence{Pos: Point{-0.5, 1}},
			Margin{Pos: Point{0.8, 0.4}},
			Margin{Pos: Point{0, 0.9}},
			Margin{Pos: Point{-0.8, 0.4}},
		},
		Edges: []Edge{
			{0, 1}, {0, 2},
			{0, 3}, {0, 4}, {0, 5},
			{3, 1}, {4, 1}, {4, 2}, {5, 2},
		},
		Params: DefaultParameters(),
	}
}

func init() {
	RegisterSeed(SeedSeedling, Seedling)
	RegisterSeed(SeedTwin, Twin)
}
