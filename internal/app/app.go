//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"log/slog"

	"leaf-morphogenesis/internal/core"
	"leaf-morphogenesis/internal/leaf"
	"leaf-morphogenesis/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a growing leaf to the ebiten.Game interface.
type Game struct {
	leaf    *leaf.Leaf
	painter *render.EdgePainter
	hud     *hud
	timer   *core.FixedStep
	cfg     Config
	log     *slog.Logger

	paused   bool
	tickOnce bool
	showHUD  bool
}

// New constructs a Game for the provided leaf.
func New(l *leaf.Leaf, cfg Config, logger *slog.Logger) *Game {
	opts := render.DefaultOptions()
	opts.LineWidth = cfg.LineWidth
	opts.FlipY = cfg.FlipY
	return &Game{
		leaf:    l,
		painter: render.NewEdgePainter(opts),
		hud:     newHUD(260),
		timer:   core.NewFixedStep(cfg.TPS),
		cfg:     cfg,
		log:     logger,
		showHUD: true,
	}
}

// Reset restores the leaf to its seed.
func (g *Game) Reset() {
	g.leaf.Reset()
	g.timer.Reset()
	g.tickOnce = false
	g.log.Info("leaf reset", "seed", g.leaf.Name())
}

// Update handles per-frame input and advances the leaf by the due ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	due := g.timer.Due()
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	for i := 0; i < due; i++ {
		if g.cfg.MaxSteps > 0 && g.leaf.Steps() >= g.cfg.MaxSteps {
			g.paused = true
			break
		}
		stats, err := g.leaf.StepSimulation(g.cfg.Delta)
		if err != nil {
			return fmt.Errorf("step %d: %w", g.leaf.Steps()+1, err)
		}
		g.log.Debug("step", "n", g.leaf.Steps(), "splits", stats.Splits, "vertices", stats.Vertices, "edges", stats.Edges)
	}
	return nil
}

// Draw renders the mesh and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.leaf)
	if g.showHUD {
		g.hud.Draw(screen, panelLines(g.status(), g.leaf.Parameters()))
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window titled after the leaf and blocks until it closes.
func Run(g *Game) error {
	ebiten.SetWindowTitle("leaf: " + g.leaf.Name())
	ebiten.SetTPS(ebiten.DefaultTPS)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) status() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  step %d", state, g.leaf.Steps())
}
