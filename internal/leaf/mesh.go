package leaf

import (
	"fmt"
	"slices"
)

// TrianglesForEdge returns the apex vertices of the faces bordering edge e,
// in ascending index order. An apex is any vertex other than the endpoints
// that shares an edge, in either direction, with both endpoints.
func (l *Leaf) TrianglesForEdge(e int) ([]int, error) {
	if e < 0 || e >= len(l.edges) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrBadEdge, e, len(l.edges))
	}
	a, b := l.edges[e].A, l.edges[e].B
	adjA := make([]bool, len(l.vertices))
	adjB := make([]bool, len(l.vertices))
	for _, edge := range l.edges {
		if c := edge.Other(a); c >= 0 {
			adjA[c] = true
		}
		if c := edge.Other(b); c >= 0 {
			adjB[c] = true
		}
	}

	var apexes []int
	for c := range l.vertices {
		if c == a || c == b {
			continue
		}
		if adjA[c] && adjB[c] {
			apexes = append(apexes, c)
		}
	}
	if len(apexes) != 1 && len(apexes) != 2 {
		return apexes, &TopologyError{Edge: e, A: a, B: b, Count: len(apexes)}
	}
	return apexes, nil
}

// splitEdge inserts v on edge e and reconnects it to each bordering face's
// opposite corner. The lookup runs before the removal renumbers edges.
func (l *Leaf) splitEdge(e int, v Vertex) error {
	apexes, err := l.TrianglesForEdge(e)
	if err != nil {
		return err
	}

	id := len(l.vertices)
	l.vertices = append(l.vertices, v)
	for _, c := range apexes {
		l.edges = append(l.edges, Edge{A: id, B: c})
	}
	split := l.edges[e]
	l.edges = append(l.edges, Edge{A: split.A, B: id}, Edge{A: id, B: split.B})
	l.edges = slices.Delete(l.edges, e, e+1)

	l.log.Debug("split vein edge", "edge", e, "a", split.A, "b", split.B, "vertex", id, "faces", len(apexes))
	return nil
}

// Validate checks every edge index and the one-or-two faces rule for every
// edge of the mesh.
func (l *Leaf) Validate() error {
	n := len(l.vertices)
	for i, e := range l.edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			return fmt.Errorf("%w: edge %d %v with %d vertices", ErrBadEdge, i, e, n)
		}
	}
	for i := range l.edges {
		if _, err := l.TrianglesForEdge(i); err != nil {
			return err
		}
	}
	return nil
}
