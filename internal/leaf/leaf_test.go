package leaf

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func requirePoint(t *testing.T, want, got Point) {
	t.Helper()
	require.InDelta(t, want.X, got.X, eps, "x of %v", got)
	require.InDelta(t, want.Y, got.Y, eps, "y of %v", got)
}

func TestNewSeedling(t *testing.T) {
	l := New()

	require.Equal(t, 4, l.NumVertices())
	require.Equal(t, []Edge{{0, 1}, {0, 2}, {0, 2}, {0, 3}, {2, 1}, {3, 1}}, l.Edges())
	require.Equal(t, Parameters{VeinGrowthRate: 1.0, NewVeinProportion: 0.1}, l.Params())

	roles := []Role{RoleVein, RoleConvergence, RoleMargin, RoleMargin}
	for i, want := range roles {
		require.Equal(t, want, l.Vertex(i).Role(), "vertex %d", i)
	}
	require.NoError(t, l.Validate())
}

func TestVeinEdgesEligibility(t *testing.T) {
	seed := Seed{
		Name: "eligibility",
		Vertices: []Vertex{
			Vein{Pos: Point{0, 0}},
			Vein{Pos: Point{0, 1}},
			Convergence{Pos: Point{0, 2}},
			Margin{Pos: Point{1, 0}},
			Lamina{Pos: Point{1, 1}},
		},
		Edges: []Edge{
			{0, 1}, // vein, vein
			{1, 2}, // vein, convergence
			{2, 1}, // convergence first: not a tip
			{0, 3},
			{3, 0},
			{1, 4},
		},
		Params: DefaultParameters(),
	}
	l, err := NewFromSeed(seed)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, l.VeinEdges())
}

func TestStepScenario(t *testing.T) {
	l := New()

	stats, err := l.StepSimulation(1.0)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Elongated)
	require.Equal(t, 1, stats.Splits)
	require.Equal(t, 5, stats.Vertices)
	require.Equal(t, 9, stats.Edges)

	requirePoint(t, Point{0, 0}, l.Vertex(0).Position())
	requirePoint(t, Point{0, 2}, l.Vertex(1).Position())
	requirePoint(t, Point{0.1, 0.1}, l.Vertex(2).Position())
	requirePoint(t, Point{-0.1, 0.1}, l.Vertex(3).Position())

	nv := l.Vertex(4)
	require.Equal(t, RoleVein, nv.Role())
	requirePoint(t, Point{0, 0.9}, nv.Position())

	want := []Edge{{0, 2}, {0, 2}, {0, 3}, {2, 1}, {3, 1}, {4, 2}, {4, 3}, {0, 4}, {4, 1}}
	require.Equal(t, want, l.Edges())
	require.NoError(t, l.Validate())
}

func TestElongationAlongDirection(t *testing.T) {
	seed := Seed{
		Name: "diagonal",
		Vertices: []Vertex{
			Vein{Pos: Point{1, 1}},
			Vein{Pos: Point{4, 5}},
			Margin{Pos: Point{4, 1}},
		},
		Edges:  []Edge{{0, 1}, {0, 2}, {2, 1}},
		Params: Parameters{VeinGrowthRate: 2.0, NewVeinProportion: 0.5},
	}
	l, err := NewFromSeed(seed)
	require.NoError(t, err)

	_, err = l.StepSimulation(0.5)
	require.NoError(t, err)

	requirePoint(t, Point{1, 1}, l.Vertex(0).Position())
	// Pre-step length 5 along (3,4)/5, grown by 2.0*0.5.
	requirePoint(t, Point{4 + 0.6, 5 + 0.8}, l.Vertex(1).Position())
	base, tip := l.Vertex(0).Position(), l.Vertex(1).Position()
	require.InDelta(t, 6.0, math.Hypot(tip.X-base.X, tip.Y-base.Y), eps)
	require.Equal(t, 3, l.NumVertices(), "vein to vein edges never split")
}

func TestStepUsesPreStepPositions(t *testing.T) {
	// Vertex 1 is the tip of (0,1) and the base of (1,2).
	seed := Seed{
		Name: "chain",
		Vertices: []Vertex{
			Vein{Pos: Point{0, 0}},
			Vein{Pos: Point{1, 0}},
			Vein{Pos: Point{1, 1}},
			Margin{Pos: Point{0, 1}},
		},
		Edges:  []Edge{{0, 1}, {1, 2}, {3, 0}, {3, 1}, {3, 2}},
		Params: Parameters{VeinGrowthRate: 1.0, NewVeinProportion: 0.5},
	}
	l, err := NewFromSeed(seed)
	require.NoError(t, err)

	_, err = l.StepSimulation(1.0)
	require.NoError(t, err)
	requirePoint(t, Point{2, 0}, l.Vertex(1).Position())
	requirePoint(t, Point{1, 2}, l.Vertex(2).Position())
}

func TestSharedTipAccumulates(t *testing.T) {
	seed := Seed{
		Name: "shared",
		Vertices: []Vertex{
			Vein{Pos: Point{-1, 0}},
			Vein{Pos: Point{1, 0}},
			Vein{Pos: Point{0, 1}},
			Margin{Pos: Point{0, -1}},
		},
		Edges:  []Edge{{0, 2}, {1, 2}, {0, 1}, {0, 3}, {3, 1}},
		Params: Parameters{VeinGrowthRate: 1.0, NewVeinProportion: 0.5},
	}
	l, err := NewFromSeed(seed)
	require.NoError(t, err)

	_, err = l.StepSimulation(1.0)
	require.NoError(t, err)
	// Both edges push vertex 2 along their own direction; x components cancel.
	requirePoint(t, Point{0, 1 + math.Sqrt2}, l.Vertex(2).Position())
}

func TestZeroDeltaStillSplits(t *testing.T) {
	l := New()
	stats, err := l.StepSimulation(0)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Splits)
	requirePoint(t, Point{0, 1}, l.Vertex(1).Position())
	requirePoint(t, Point{0, 0.9}, l.Vertex(4).Position())
}

func TestDegenerateVeinEdgeSkipped(t *testing.T) {
	seed := Seed{
		Name: "collapsed",
		Vertices: []Vertex{
			Vein{Pos: Point{0, 0}},
			Convergence{Pos: Point{0, 0}},
			Margin{Pos: Point{1, 0}},
		},
		Edges:  []Edge{{0, 1}, {0, 2}, {2, 1}},
		Params: DefaultParameters(),
	}
	l, err := NewFromSeed(seed)
	require.NoError(t, err)

	stats, err := l.StepSimulation(1)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Degenerate)
	require.Zero(t, stats.Splits)
	require.Equal(t, 3, l.NumVertices())
	requirePoint(t, Point{0, 0}, l.Vertex(1).Position())
}

func TestBadDelta(t *testing.T) {
	l := New()
	for _, d := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := l.StepSimulation(d)
		require.ErrorIs(t, err, ErrBadDelta, "delta %v", d)
	}
	require.Equal(t, 4, l.NumVertices())
	require.Zero(t, l.Steps())
}

func TestMonotonicGrowthAndInvariant(t *testing.T) {
	for _, name := range SeedNames() {
		t.Run(name, func(t *testing.T) {
			l, err := NewWithConfig(Config{Seed: name, Params: DefaultParameters()})
			require.NoError(t, err)

			prevVertices := l.Vertices()
			for step := 0; step < 40; step++ {
				before := l.NumEdges()
				stats, err := l.StepSimulation(0.05)
				require.NoError(t, err, "step %d", step)
				require.GreaterOrEqual(t, l.NumVertices(), len(prevVertices))
				for i, v := range prevVertices {
					require.Equal(t, v.Role(), l.Vertex(i).Role(), "vertex %d changed role", i)
				}
				require.Equal(t, before+3*stats.Splits, l.NumEdges(), "interior splits add three edges")
				require.NoError(t, l.Validate(), "step %d", step)
				prevVertices = l.Vertices()
			}
			require.Equal(t, 40, l.Steps())
		})
	}
}

func TestMultipleSplitsInOneStep(t *testing.T) {
	l, err := NewWithConfig(Config{Seed: SeedTwin, Params: DefaultParameters()})
	require.NoError(t, err)

	stats, err := l.StepSimulation(0.1)
	require.NoError(t, err)
	require.Equal(t, 2, stats.Splits)
	require.Equal(t, 8, l.NumVertices())
	require.Equal(t, 9+6, l.NumEdges())

	// Neither original vein edge survives and each tip hangs off its new vertex.
	edges := l.Edges()
	require.NotContains(t, edges, Edge{0, 1})
	require.NotContains(t, edges, Edge{0, 2})
	require.Contains(t, edges, Edge{6, 1})
	require.Contains(t, edges, Edge{7, 2})
	require.NoError(t, l.Validate())
}

func TestDuplicateEdgesPreserved(t *testing.T) {
	l := New()
	for i := 0; i < 10; i++ {
		_, err := l.StepSimulation(0.1)
		require.NoError(t, err)
	}
	count := 0
	for _, e := range l.Edges() {
		if e == (Edge{0, 2}) {
			count++
		}
	}
	require.Equal(t, 2, count)
}

func TestDeterministic(t *testing.T) {
	run := func() ([]Vertex, []Edge) {
		l, err := NewWithConfig(Config{Seed: SeedTwin, Params: Parameters{VeinGrowthRate: 0.7, NewVeinProportion: 0.3}})
		require.NoError(t, err)
		for _, d := range []float64{0.1, 0.25, 0, 0.5, 0.1} {
			_, err := l.StepSimulation(d)
			require.NoError(t, err)
		}
		return l.Vertices(), l.Edges()
	}
	v1, e1 := run()
	v2, e2 := run()
	if !slices.Equal(v1, v2) {
		t.Fatal("vertex sequences differ between identical runs")
	}
	if !slices.Equal(e1, e2) {
		t.Fatal("edge sequences differ between identical runs")
	}
}

func TestResetRestoresSeed(t *testing.T) {
	l := New()
	initial := l.Vertices()
	for i := 0; i < 3; i++ {
		_, err := l.StepSimulation(0.2)
		require.NoError(t, err)
	}
	l.Reset()
	require.Equal(t, initial, l.Vertices())
	require.Equal(t, Seedling().Edges, l.Edges())
	require.Zero(t, l.Steps())
}

func TestAccessorsReturnCopies(t *testing.T) {
	l := New()
	edges := l.Edges()
	edges[0] = Edge{3, 3}
	verts := l.Vertices()
	verts[0] = Lamina{}
	require.Equal(t, Edge{0, 1}, l.Edge(0))
	require.Equal(t, RoleVein, l.Vertex(0).Role())
}

func TestTopologyFaultIsSticky(t *testing.T) {
	// Edge (0,1) has no apex: nothing is adjacent to both endpoints.
	seed := Seed{
		Name: "bare",
		Vertices: []Vertex{
			Vein{Pos: Point{0, 0}},
			Convergence{Pos: Point{0, 1}},
		},
		Edges:  []Edge{{0, 1}},
		Params: DefaultParameters(),
	}
	l, err := NewFromSeed(seed)
	require.NoError(t, err)

	_, err = l.StepSimulation(1)
	var topo *TopologyError
	require.True(t, errors.As(err, &topo))
	require.Equal(t, 0, topo.Edge)
	require.Equal(t, 0, topo.Count)
	require.ErrorIs(t, err, ErrTopology)
	require.ErrorIs(t, l.Err(), ErrTopology)

	_, again := l.StepSimulation(1)
	require.ErrorIs(t, again, ErrTopology)
}

func TestNewWithConfigErrors(t *testing.T) {
	_, err := NewWithConfig(Config{Seed: "nope", Params: DefaultParameters()})
	require.ErrorIs(t, err, ErrUnknownSeed)

	_, err = NewWithConfig(Config{Seed: SeedSeedling, Params: Parameters{VeinGrowthRate: 0, NewVeinProportion: 0.1}})
	require.ErrorIs(t, err, ErrBadParams)

	_, err = NewWithConfig(Config{Seed: SeedSeedling, Params: Parameters{VeinGrowthRate: 1, NewVeinProportion: 1}})
	require.ErrorIs(t, err, ErrBadParams)

	_, err = NewFromSeed(Seed{Name: "dangling", Vertices: []Vertex{Vein{}}, Edges: []Edge{{0, 4}}, Params: DefaultParameters()})
	require.ErrorIs(t, err, ErrBadEdge)
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"seed":                SeedTwin,
		"vein_growth_rate":    "0.25",
		"new_vein_proportion": "0.4",
	})
	require.Equal(t, SeedTwin, c.Seed)
	require.Equal(t, Parameters{VeinGrowthRate: 0.25, NewVeinProportion: 0.4}, c.Params)

	bad := FromMap(map[string]string{"vein_growth_rate": "-2", "new_vein_proportion": "1.5"})
	require.Equal(t, DefaultConfig(), bad)
	require.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestParametersSnapshot(t *testing.T) {
	l := New()
	_, err := l.StepSimulation(1)
	require.NoError(t, err)

	snap := l.Parameters()
	p, ok := snap.Lookup("vein_growth_rate")
	require.True(t, ok)
	require.Equal(t, "1", p.Value)
	p, ok = snap.Lookup("vertices")
	require.True(t, ok)
	require.Equal(t, "5", p.Value)
	p, ok = snap.Lookup("seed")
	require.True(t, ok)
	require.Equal(t, SeedSeedling, p.Value)
}
