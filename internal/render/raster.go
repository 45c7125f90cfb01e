package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"leaf-morphogenesis/internal/leaf"
)

// Options controls the PNG rasteriser.
type Options struct {
	Width, Height int
	Padding       float64
	LineWidth     float64
	FlipY         bool

	// FillBlade paints the polygon through the margin and convergence
	// vertices before the edges are stroked.
	FillBlade bool

	Background color.Color
	EdgeColor  color.Color
	VeinColor  color.Color
	BladeColor color.Color
}

// DefaultOptions returns a 500x500 canvas with grey edges on white.
func DefaultOptions() Options {
	return Options{
		Width:      500,
		Height:     500,
		Padding:    10,
		LineWidth:  1,
		Background: color.White,
		EdgeColor:  color.RGBA{R: 80, G: 80, B: 80, A: 255},
		VeinColor:  color.RGBA{R: 34, G: 102, B: 44, A: 255},
		BladeColor: color.RGBA{R: 206, G: 234, B: 196, A: 255},
	}
}

// Render rasterises mesh into a new RGBA image.
func Render(mesh Mesh, opts Options) *image.RGBA {
	if opts.Width <= 0 {
		opts.Width = 1
	}
	if opts.Height <= 0 {
		opts.Height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	vertices := mesh.Vertices()
	box, ok := Bounds(vertices)
	if !ok {
		return img
	}
	tf := Fit(box, opts.Width, opts.Height, opts.Padding)
	tf.FlipY = opts.FlipY

	if opts.FillBlade && opts.BladeColor != nil {
		if outline := BladeOutline(vertices); len(outline) >= 3 {
			z := vector.NewRasterizer(opts.Width, opts.Height)
			for i, p := range outline {
				x, y := tf.Apply(p)
				if i == 0 {
					z.MoveTo(float32(x), float32(y))
					continue
				}
				z.LineTo(float32(x), float32(y))
			}
			z.ClosePath()
			z.Draw(img, img.Bounds(), image.NewUniform(opts.BladeColor), image.Point{})
		}
	}

	half := math.Max(opts.LineWidth, 0.5) / 2
	edges := vector.NewRasterizer(opts.Width, opts.Height)
	veins := vector.NewRasterizer(opts.Width, opts.Height)
	var nEdges, nVeins int
	for _, e := range mesh.Edges() {
		a, b := vertices[e.A], vertices[e.B]
		z := edges
		if opts.VeinColor != nil && isVein(a) && isVein(b) {
			z = veins
			nVeins++
		} else {
			nEdges++
		}
		ax, ay := tf.Apply(a.Position())
		bx, by := tf.Apply(b.Position())
		strokeQuad(z, ax, ay, bx, by, half)
	}
	if nEdges > 0 && opts.EdgeColor != nil {
		edges.Draw(img, img.Bounds(), image.NewUniform(opts.EdgeColor), image.Point{})
	}
	if nVeins > 0 {
		veins.Draw(img, img.Bounds(), image.NewUniform(opts.VeinColor), image.Point{})
	}
	return img
}

func isVein(v leaf.Vertex) bool {
	switch v.(type) {
	case leaf.Vein, leaf.Convergence:
		return true
	}
	return false
}

// strokeQuad adds a segment of half-width w as a rectangle. Every quad is
// wound the same way so overlapping strokes accumulate instead of cancelling.
func strokeQuad(z *vector.Rasterizer, ax, ay, bx, by, w float64) {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l == 0 {
		dx, dy, l = w, 0, w
		ax -= w / 2
		bx += w / 2
	}
	nx, ny := -dy/l*w, dx/l*w
	z.MoveTo(float32(ax+nx), float32(ay+ny))
	z.LineTo(float32(bx+nx), float32(by+ny))
	z.LineTo(float32(bx-nx), float32(by-ny))
	z.LineTo(float32(ax-nx), float32(ay-ny))
	z.ClosePath()
}

// BladeOutline returns the margin and convergence positions ordered by angle
// around their centroid.
func BladeOutline(vertices []leaf.Vertex) []leaf.Point {
	var pts []leaf.Point
	var cx, cy float64
	for _, v := range vertices {
		switch v.(type) {
		case leaf.Margin, leaf.Convergence:
			p := v.Position()
			pts = append(pts, p)
			cx += p.X
			cy += p.Y
		}
	}
	if len(pts) == 0 {
		return nil
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))
	sort.SliceStable(pts, func(i, j int) bool {
		return math.Atan2(pts[i].Y-cy, pts[i].X-cx) < math.Atan2(pts[j].Y-cy, pts[j].X-cx)
	})
	return pts
}
