// Package render turns a leaf mesh into pixels: a PNG rasteriser for the
// command-line driver and, with the ebiten tag, a live painter.
package render

import (
	"math"

	"leaf-morphogenesis/internal/leaf"
)

// Mesh is the read-only view of a leaf the renderers consume.
type Mesh interface {
	Vertices() []leaf.Vertex
	Edges() []leaf.Edge
}

// Box is an axis-aligned bounding box in leaf space.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Bounds returns the box enclosing every vertex position. It reports false
// for an empty vertex list.
func Bounds(vertices []leaf.Vertex) (Box, bool) {
	if len(vertices) == 0 {
		return Box{}, false
	}
	b := Box{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, v := range vertices {
		p := v.Position()
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b, true
}

// Transform maps leaf space onto a pixel grid.
type Transform struct {
	Scale            float64
	OffsetX, OffsetY float64
	Origin           leaf.Point
	Height           float64
	FlipY            bool
}

// Fit returns the uniform scale that fits b inside a width*height canvas
// less padding on every side, centered on both axes. A box with no extent on
// one axis is fitted on the other; a single point gets scale 1.
func Fit(b Box, width, height int, padding float64) Transform {
	availW := math.Max(float64(width)-2*padding, 1)
	availH := math.Max(float64(height)-2*padding, 1)
	bw, bh := b.Width(), b.Height()

	var scale float64
	switch {
	case bw > 0 && bh > 0:
		scale = math.Min(availW/bw, availH/bh)
	case bw > 0:
		scale = availW / bw
	case bh > 0:
		scale = availH / bh
	default:
		scale = 1
	}
	return Transform{
		Scale:   scale,
		OffsetX: (float64(width) - bw*scale) / 2,
		OffsetY: (float64(height) - bh*scale) / 2,
		Origin:  leaf.Point{X: b.MinX, Y: b.MinY},
		Height:  float64(height),
	}
}

// Apply maps p to pixel coordinates.
func (t Transform) Apply(p leaf.Point) (x, y float64) {
	x = (p.X-t.Origin.X)*t.Scale + t.OffsetX
	y = (p.Y-t.Origin.Y)*t.Scale + t.OffsetY
	if t.FlipY {
		y = t.Height - y
	}
	return x, y
}
