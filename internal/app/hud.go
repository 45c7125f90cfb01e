//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding    = 8
	panelLineHeight = 16
)

// hud draws the parameter panel in the top-left corner of the view.
type hud struct {
	width int
	panel *ebiten.Image
}

func newHUD(width int) *hud {
	if width < 0 {
		width = 0
	}
	return &hud{width: width}
}

func (h *hud) Draw(screen *ebiten.Image, lines []string) {
	if h.width == 0 || len(lines) == 0 {
		return
	}
	height := 2*panelPadding + len(lines)*panelLineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			clr = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		y := panelPadding + (i+1)*panelLineHeight - 4
		text.Draw(h.panel, line, face, panelPadding, y, clr)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
