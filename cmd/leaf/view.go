package main

import (
	"github.com/spf13/cobra"

	"leaf-morphogenesis/internal/app"
	"leaf-morphogenesis/internal/logging"
)

func newViewCmd(so *seedOptions) *cobra.Command {
	cfg := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Watch the leaf grow in a window (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			log := logging.NewLogger(so.logLevel, cmd.ErrOrStderr())
			l, err := so.newLeaf(cmd.Flags(), log)
			if err != nil {
				return err
			}
			return app.Run(app.New(l, *cfg, log))
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}
