//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EdgePainter strokes a mesh onto an ebiten image, refitting the view to the
// mesh bounds on every frame.
type EdgePainter struct {
	opts Options
}

// NewEdgePainter returns a painter using the colors and line width of opts.
func NewEdgePainter(opts Options) *EdgePainter {
	return &EdgePainter{opts: opts}
}

// Draw clears dst to the background and strokes every edge of mesh.
func (p *EdgePainter) Draw(dst *ebiten.Image, mesh Mesh) {
	if p.opts.Background != nil {
		dst.Fill(p.opts.Background)
	}
	vertices := mesh.Vertices()
	box, ok := Bounds(vertices)
	if !ok {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	tf := Fit(box, w, h, p.opts.Padding)
	tf.FlipY = p.opts.FlipY

	width := float32(p.opts.LineWidth)
	if width <= 0 {
		width = 1
	}
	for _, e := range mesh.Edges() {
		a, b := vertices[e.A], vertices[e.B]
		var clr color.Color = p.opts.EdgeColor
		if p.opts.VeinColor != nil && isVein(a) && isVein(b) {
			clr = p.opts.VeinColor
		}
		ax, ay := tf.Apply(a.Position())
		bx, by := tf.Apply(b.Position())
		vector.StrokeLine(dst, float32(ax), float32(ay), float32(bx), float32(by), width, clr, true)
	}
}
