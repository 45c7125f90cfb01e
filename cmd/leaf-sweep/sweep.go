package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"leaf-morphogenesis/internal/core"
	"leaf-morphogenesis/internal/leaf"
)

type paramSet struct {
	growthRate float64
	proportion float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("rate=%.3f proportion=%.3f", p.growthRate, p.proportion)
}

type scenarioResult struct {
	params     paramSet
	steps      int
	vertices   int
	edges      int
	veinLength float64
	tipReach   float64
	fault      error
}

func (r scenarioResult) String() string {
	s := fmt.Sprintf("reach=%.3f veinLength=%.3f vertices=%d edges=%d steps=%d %s",
		r.tipReach, r.veinLength, r.vertices, r.edges, r.steps, r.params)
	if r.fault != nil {
		s += " (faulted)"
	}
	return s
}

type sweepOptions struct {
	steps   int
	delta   float64
	workers int
}

func gridSets(rates, proportions []float64) []paramSet {
	sets := make([]paramSet, 0, len(rates)*len(proportions))
	for _, rate := range rates {
		for _, prop := range proportions {
			sets = append(sets, paramSet{growthRate: rate, proportion: prop})
		}
	}
	return sets
}

// randomSets draws n pairs with rates in (0.1, 3) and proportions in (0, 1).
func randomSets(seed int64, n int) []paramSet {
	rng := core.NewRNG(seed)
	sets := make([]paramSet, 0, max(n, 0))
	for i := 0; i < n; i++ {
		sets = append(sets, paramSet{
			growthRate: rng.OpenRange(0.1, 3),
			proportion: rng.OpenRange(0, 1),
		})
	}
	return sets
}

// sweep grows one leaf per parameter set and returns the results ordered by
// descending tip reach.
func sweep(ctx context.Context, base leaf.Seed, sets []paramSet, opts sweepOptions) ([]scenarioResult, error) {
	results := make([]scenarioResult, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	if opts.workers > 0 {
		g.SetLimit(opts.workers)
	}
	for i, params := range sets {
		g.Go(func() error {
			res, err := runScenario(ctx, base, params, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].tipReach > results[j].tipReach })
	return results, nil
}

// runScenario grows a leaf from base with params. A topology fault ends the
// run early and is reported in the result; other errors abort the sweep.
func runScenario(ctx context.Context, base leaf.Seed, params paramSet, opts sweepOptions) (scenarioResult, error) {
	seed := base
	seed.Params = leaf.Parameters{VeinGrowthRate: params.growthRate, NewVeinProportion: params.proportion}
	l, err := leaf.NewFromSeed(seed)
	if err != nil {
		return scenarioResult{}, fmt.Errorf("%s: %w", params, err)
	}

	res := scenarioResult{params: params}
	for step := 0; step < opts.steps; step++ {
		if err := ctx.Err(); err != nil {
			return scenarioResult{}, err
		}
		if _, err := l.StepSimulation(opts.delta); err != nil {
			if !errors.Is(err, leaf.ErrTopology) {
				return scenarioResult{}, fmt.Errorf("%s: %w", params, err)
			}
			res.fault = err
			break
		}
	}
	res.steps = l.Steps()
	res.vertices = l.NumVertices()
	res.edges = l.NumEdges()
	res.veinLength, res.tipReach = measure(l)
	return res, nil
}

// measure returns the summed length of the vein edges and the largest
// distance from vertex 0 to any vein or convergence vertex.
func measure(l *leaf.Leaf) (length, reach float64) {
	for _, e := range l.VeinEdges() {
		edge := l.Edge(e)
		d := l.Vertex(edge.B).Position().Sub(l.Vertex(edge.A).Position())
		length += math.Hypot(d.X, d.Y)
	}
	origin := l.Vertex(0).Position()
	for _, v := range l.Vertices() {
		switch v.(type) {
		case leaf.Vein, leaf.Convergence:
			d := v.Position().Sub(origin)
			reach = math.Max(reach, math.Hypot(d.X, d.Y))
		}
	}
	return length, reach
}
