package leaf

import "math"

// splitCandidate records a vein edge whose tip is a convergence vertex, with
// the geometry it had before elongation.
type splitCandidate struct {
	edge        int
	dx, dy      float64
	orientation float64
	base        Point
}

// isVeinEdge reports whether e is eligible for growth: (Vein, Vein) or
// (Vein, Convergence) with the convergence vertex as tip.
func isVeinEdge(a, b Vertex) bool {
	if _, ok := a.(Vein); !ok {
		return false
	}
	switch b.(type) {
	case Vein, Convergence:
		return true
	}
	return false
}

// VeinEdges returns the indices of the edges eligible for growth.
func (l *Leaf) VeinEdges() []int {
	var veins []int
	for i, e := range l.edges {
		if isVeinEdge(l.vertices[e.A], l.vertices[e.B]) {
			veins = append(veins, i)
		}
	}
	return veins
}

func (l *Leaf) stepVeins(delta float64) (StepStats, error) {
	var stats StepStats
	veins := l.VeinEdges()
	if len(veins) == 0 {
		return stats, nil
	}

	before := make([]Point, len(l.vertices))
	for i, v := range l.vertices {
		before[i] = v.Position()
	}

	growth := l.params.VeinGrowthRate * delta
	moved := make(map[int]Point, len(veins))
	var order []int
	var tips []splitCandidate
	for _, i := range veins {
		e := l.edges[i]
		pa, pb := before[e.A], before[e.B]
		dx := pb.X - pa.X
		dy := pb.Y - pa.Y
		if dx == 0 && dy == 0 {
			stats.Degenerate++
			l.log.Debug("skip zero-length vein edge", "edge", i, "a", e.A, "b", e.B)
			continue
		}
		orientation := math.Atan2(dy, dx)
		if _, ok := l.vertices[e.B].(Convergence); ok {
			tips = append(tips, splitCandidate{edge: i, dx: dx, dy: dy, orientation: orientation, base: pa})
		}
		if _, seen := moved[e.B]; !seen {
			order = append(order, e.B)
		}
		moved[e.B] = moved[e.B].Add(Point{X: math.Cos(orientation) * growth, Y: math.Sin(orientation) * growth})
		stats.Elongated++
	}
	for _, v := range order {
		l.vertices[v] = l.vertices[v].WithPosition(before[v].Add(moved[v]))
	}

	for k, tip := range tips {
		length := math.Sqrt(tip.dx*tip.dx + tip.dy*tip.dy)
		newEdgeLength := length * l.params.NewVeinProportion
		at := Point{
			X: tip.base.X + math.Cos(tip.orientation)*(length-newEdgeLength),
			Y: tip.base.Y + math.Sin(tip.orientation)*(length-newEdgeLength),
		}
		// Each earlier split removed one edge below this index.
		if err := l.splitEdge(tip.edge-k, Vein{Pos: at}); err != nil {
			return stats, err
		}
		stats.Splits++
	}
	return stats, nil
}
