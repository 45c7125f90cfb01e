package leaf

import "fmt"

// Point is a position in leaf space.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Morphogens is the signal carried by margin and convergence vertices. Its
// content is opaque to the growth rules.
type Morphogens struct{}

// Role enumerates the four vertex variants.
type Role uint8

const (
	RoleLamina Role = iota
	RoleMargin
	RoleVein
	RoleConvergence
)

func (r Role) String() string {
	switch r {
	case RoleLamina:
		return "lamina"
	case RoleMargin:
		return "margin"
	case RoleVein:
		return "vein"
	case RoleConvergence:
		return "convergence"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// ParseRole maps a role name back to its Role.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "lamina":
		return RoleLamina, true
	case "margin":
		return RoleMargin, true
	case "vein":
		return RoleVein, true
	case "convergence":
		return RoleConvergence, true
	}
	return 0, false
}

// Vertex is one mesh point. The set of implementations is closed: Lamina,
// Margin, Vein and Convergence.
type Vertex interface {
	// Position reports the current position regardless of variant.
	Position() Point
	// WithPosition returns the same variant moved to p.
	WithPosition(p Point) Vertex
	// Role reports the variant tag.
	Role() Role

	isVertex()
}

// Lamina is interior blade tissue.
type Lamina struct {
	Pos Point
}

// Margin is a blade-boundary vertex.
type Margin struct {
	Pos        Point
	Morphogens Morphogens
}

// Vein is a vascular structural vertex.
type Vein struct {
	Pos Point
}

// Convergence is a vein-growth target.
type Convergence struct {
	Pos        Point
	Morphogens Morphogens
}

func (v Lamina) Position() Point      { return v.Pos }
func (v Margin) Position() Point      { return v.Pos }
func (v Vein) Position() Point        { return v.Pos }
func (v Convergence) Position() Point { return v.Pos }

func (v Lamina) WithPosition(p Point) Vertex      { v.Pos = p; return v }
func (v Margin) WithPosition(p Point) Vertex      { v.Pos = p; return v }
func (v Vein) WithPosition(p Point) Vertex        { v.Pos = p; return v }
func (v Convergence) WithPosition(p Point) Vertex { v.Pos = p; return v }

func (Lamina) Role() Role      { return RoleLamina }
func (Margin) Role() Role      { return RoleMargin }
func (Vein) Role() Role        { return RoleVein }
func (Convergence) Role() Role { return RoleConvergence }

func (Lamina) isVertex()      {}
func (Margin) isVertex()      {}
func (Vein) isVertex()        {}
func (Convergence) isVertex() {}

// NewVertex builds the variant for role at p.
func NewVertex(role Role, p Point) (Vertex, error) {
	switch role {
	case RoleLamina:
		return Lamina{Pos: p}, nil
	case RoleMargin:
		return Margin{Pos: p}, nil
	case RoleVein:
		return Vein{Pos: p}, nil
	case RoleConvergence:
		return Convergence{Pos: p}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrBadVertex, role)
}

// Edge connects two vertex indices. B is the growing tip of a vein edge.
type Edge struct {
	A, B int
}

// Has reports whether v is one of the endpoints.
func (e Edge) Has(v int) bool { return e.A == v || e.B == v }

// Other returns the endpoint opposite v, or -1 when v is not on the edge.
func (e Edge) Other(v int) int {
	switch v {
	case e.A:
		return e.B
	case e.B:
		return e.A
	}
	return -1
}

func (e Edge) String() string { return fmt.Sprintf("(%d,%d)", e.A, e.B) }
