package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leaf-morphogenesis/internal/leaf"
)

func newSeedsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seeds",
		Short: "List the registered seed meshes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range leaf.SeedNames() {
				seed, err := leaf.LookupSeed(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-10s %d vertices, %d edges\n", name, len(seed.Vertices), len(seed.Edges))
			}
			return nil
		},
	}
}
