// Command leaf-sweep grows one leaf per growth parameter pair and ranks the
// pairs by how far the vein tips reach.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/pflag"

	"leaf-morphogenesis/internal/leaf"
	"leaf-morphogenesis/internal/logging"
)

func main() {
	fs := pflag.NewFlagSet("leaf-sweep", pflag.ExitOnError)
	steps := fs.Int("steps", 120, "steps to simulate per leaf")
	delta := fs.Float64("delta", 0.05, "time units per step")
	seed := fs.String("seed", leaf.SeedSeedling, "registered seed mesh")
	random := fs.Int("random", 0, "extra parameter pairs sampled at random")
	rngSeed := fs.Int64("rng-seed", 1337, "seed for the random samples")
	workers := fs.Int("workers", runtime.NumCPU(), "number of leaves grown concurrently")
	top := fs.Int("top", 5, "results to print")
	logLevel := fs.String("log-level", "info", "log level: error, warn, info, debug, trace")
	_ = fs.Parse(os.Args[1:])

	log := logging.NewLogger(*logLevel, os.Stderr)
	base, err := leaf.LookupSeed(*seed)
	if err != nil {
		log.Error("lookup seed", "err", err)
		os.Exit(1)
	}

	sets := gridSets(
		[]float64{0.5, 1.0, 1.5, 2.0},
		[]float64{0.05, 0.1, 0.2, 0.3, 0.5},
	)
	sets = append(sets, randomSets(*rngSeed, *random)...)
	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, seed %s)\n", len(sets), *workers, *steps, base.Name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := sweep(ctx, base, sets, sweepOptions{steps: *steps, delta: *delta, workers: *workers})
	if err != nil {
		log.Error("sweep", "err", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}
	for _, res := range results {
		if res.fault != nil {
			log.Warn("topology fault", "params", res.params.String(), "step", res.steps+1, "err", res.fault)
		}
	}
}
