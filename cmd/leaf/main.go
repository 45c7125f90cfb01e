// Command leaf grows a leaf mesh for a number of steps and renders the result
// to a PNG file.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"leaf-morphogenesis/internal/leaf"
	"leaf-morphogenesis/internal/logging"
	"leaf-morphogenesis/internal/render"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// seedOptions selects and tunes the bootstrap mesh. Shared by every
// subcommand.
type seedOptions struct {
	seed       string
	seedFile   string
	growthRate float64
	proportion float64
	logLevel   string
}

func (o *seedOptions) bind(fs *pflag.FlagSet) {
	def := leaf.DefaultParameters()
	fs.StringVar(&o.seed, "seed", leaf.SeedSeedling, "registered seed mesh to start from")
	fs.StringVar(&o.seedFile, "seed-file", "", "YAML seed mesh to start from (overrides --seed)")
	fs.Float64Var(&o.growthRate, "growth-rate", def.VeinGrowthRate, "vein growth rate (overrides the seed's)")
	fs.Float64Var(&o.proportion, "proportion", def.NewVeinProportion, "split point as a fraction of the vein length (overrides the seed's)")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: error, warn, info, debug, trace")
}

// newLeaf builds the leaf described by o. Growth flags only replace the
// seed's parameters when set explicitly.
func (o *seedOptions) newLeaf(fs *pflag.FlagSet, log *slog.Logger) (*leaf.Leaf, error) {
	var (
		seed leaf.Seed
		err  error
	)
	if o.seedFile != "" {
		seed, err = leaf.LoadSeedFile(o.seedFile)
	} else {
		seed, err = leaf.LookupSeed(o.seed)
	}
	if err != nil {
		return nil, err
	}
	if fs.Changed("growth-rate") {
		seed.Params.VeinGrowthRate = o.growthRate
	}
	if fs.Changed("proportion") {
		seed.Params.NewVeinProportion = o.proportion
	}
	l, err := leaf.NewFromSeed(seed)
	if err != nil {
		return nil, err
	}
	l.SetLogger(log)
	return l, nil
}

type growOptions struct {
	steps     int
	delta     float64
	width     int
	height    int
	padding   float64
	lineWidth float64
	fill      bool
	flipY     bool
	check     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	so := &seedOptions{}
	opts := growOptions{
		steps:     50,
		delta:     0.1,
		width:     500,
		height:    500,
		padding:   render.DefaultOptions().Padding,
		lineWidth: render.DefaultOptions().LineWidth,
		flipY:     true,
	}

	root := &cobra.Command{
		Use:   "leaf <output.png>",
		Short: "Grow a leaf mesh and render it as a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Failures past argument parsing are reported through the logger.
			cmd.SilenceUsage, cmd.SilenceErrors = true, true
			log := logging.NewLogger(so.logLevel, stderr)
			l, err := so.newLeaf(cmd.Flags(), log)
			if err != nil {
				log.Error("build leaf", "err", err)
				return err
			}
			if err := grow(l, opts, log); err != nil {
				log.Error("grow leaf", "err", err, "step", l.Steps()+1)
				return err
			}
			if err := writeImage(args[0], l, opts); err != nil {
				log.Error("write image", "err", err)
				return err
			}
			log.Info("wrote leaf", "path", args[0], "steps", l.Steps(), "vertices", l.NumVertices(), "edges", l.NumEdges())
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	so.bind(root.PersistentFlags())
	fs := root.Flags()
	fs.IntVar(&opts.steps, "steps", opts.steps, "growth steps to simulate")
	fs.Float64Var(&opts.delta, "delta", opts.delta, "time units per step")
	fs.IntVar(&opts.width, "width", opts.width, "image width in pixels")
	fs.IntVar(&opts.height, "height", opts.height, "image height in pixels")
	fs.Float64Var(&opts.padding, "padding", opts.padding, "margin around the mesh in pixels")
	fs.Float64Var(&opts.lineWidth, "line-width", opts.lineWidth, "edge stroke width in pixels")
	fs.BoolVar(&opts.fill, "fill", opts.fill, "shade the blade inside the margin outline")
	fs.BoolVar(&opts.flipY, "flip-y", opts.flipY, "draw leaf space with y pointing up")
	fs.BoolVar(&opts.check, "check", opts.check, "validate the mesh topology after every step")

	root.AddCommand(newViewCmd(so), newSeedsCmd())
	return root
}

func grow(l *leaf.Leaf, opts growOptions, log *slog.Logger) error {
	if opts.steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", opts.steps)
	}
	log.Info("growing", append([]any{"seed", l.Name(), "steps", opts.steps, "delta", opts.delta}, l.Parameters().Attrs()...)...)
	for i := 0; i < opts.steps; i++ {
		stats, err := l.StepSimulation(opts.delta)
		if err != nil {
			return err
		}
		if opts.check {
			if err := l.Validate(); err != nil {
				return errors.Wrapf(err, "after step %d", l.Steps())
			}
		}
		log.Debug("step", "n", l.Steps(), "elongated", stats.Elongated, "splits", stats.Splits,
			"degenerate", stats.Degenerate, "vertices", stats.Vertices, "edges", stats.Edges)
	}
	return nil
}

func writeImage(path string, l *leaf.Leaf, opts growOptions) error {
	ro := render.DefaultOptions()
	ro.Width, ro.Height = opts.width, opts.height
	ro.Padding = opts.padding
	ro.LineWidth = opts.lineWidth
	ro.FillBlade = opts.fill
	ro.FlipY = opts.flipY
	if ro.Width <= 0 || ro.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", ro.Width, ro.Height)
	}
	return render.WritePNG(path, render.Render(l, ro))
}
