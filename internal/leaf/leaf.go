// Package leaf grows a planar leaf mesh: vein edges elongate toward
// convergence targets and split, inserting new vein vertices while keeping
// the triangulated faces around the split edge intact.
package leaf

import (
	"log/slog"
	"math"
	"slices"

	"leaf-morphogenesis/internal/logging"
)

// Leaf owns the mesh and growth parameters of one simulation run.
type Leaf struct {
	name     string
	vertices []Vertex
	edges    []Edge
	params   Parameters

	seed  Seed
	steps int
	err   error
	log   *slog.Logger
}

// StepStats summarizes one call to StepSimulation.
type StepStats struct {
	Elongated  int
	Splits     int
	Degenerate int
	Vertices   int
	Edges      int
}

// New returns the seedling leaf with the default parameters.
func New() *Leaf {
	return fromSeed(Seedling())
}

// NewWithConfig returns a leaf built from the configured seed and parameters.
func NewWithConfig(cfg Config) (*Leaf, error) {
	seed, err := LookupSeed(cfg.Seed)
	if err != nil {
		return nil, err
	}
	seed.Params = cfg.Params
	return NewFromSeed(seed)
}

// NewFromSeed returns a leaf bootstrapped from seed using seed.Params.
func NewFromSeed(seed Seed) (*Leaf, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	if err := seed.Params.Validate(); err != nil {
		return nil, err
	}
	return fromSeed(seed), nil
}

func fromSeed(seed Seed) *Leaf {
	l := &Leaf{
		name: seed.Name,
		seed: seed.clone(),
		log:  logging.Discard(),
	}
	l.Reset()
	return l
}

// SetLogger routes the leaf's debug records to logger.
func (l *Leaf) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	l.log = logger.With("leaf", l.name)
}

// Name returns the seed name the leaf was built from.
func (l *Leaf) Name() string { return l.name }

// Reset restores the construction seed and clears any recorded fault.
func (l *Leaf) Reset() {
	s := l.seed.clone()
	l.vertices = s.Vertices
	l.edges = s.Edges
	l.params = s.Params
	l.steps = 0
	l.err = nil
}

// Params returns the growth parameters.
func (l *Leaf) Params() Parameters { return l.params }

// Steps reports how many steps have completed since construction or Reset.
func (l *Leaf) Steps() int { return l.steps }

// Err returns the topology fault that stopped the leaf, if any.
func (l *Leaf) Err() error { return l.err }

// NumVertices returns the vertex count.
func (l *Leaf) NumVertices() int { return len(l.vertices) }

// NumEdges returns the edge count.
func (l *Leaf) NumEdges() int { return len(l.edges) }

// Vertex returns the vertex at index i.
func (l *Leaf) Vertex(i int) Vertex { return l.vertices[i] }

// Edge returns the edge at index i.
func (l *Leaf) Edge(i int) Edge { return l.edges[i] }

// Vertices returns a copy of the vertex sequence.
func (l *Leaf) Vertices() []Vertex { return slices.Clone(l.vertices) }

// Edges returns a copy of the edge sequence.
func (l *Leaf) Edges() []Edge { return slices.Clone(l.edges) }

// StepSimulation advances the leaf by delta time units.
func (l *Leaf) StepSimulation(delta float64) (StepStats, error) {
	if l.err != nil {
		return StepStats{}, l.err
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		return StepStats{}, ErrBadDelta
	}
	stats, err := l.stepVeins(delta)
	stats.Vertices = len(l.vertices)
	stats.Edges = len(l.edges)
	if err != nil {
		l.err = err
		return stats, err
	}
	l.steps++
	return stats, nil
}
