package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/vaultexport/internal/platform"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Export, then export again whenever the catalog changes",
		Long: `watch runs an export, then watches the catalog file and re-runs the export
once writes have settled. Failed runs are logged and watching continues.
Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := func(ctx context.Context) error {
				report, err := platform.Export(ctx, a.cfg.CSVPath, a.cfg.VaultPath, a.options()...)
				if err != nil {
					return err
				}
				a.printReport(cmd, report)
				return nil
			}
			return platform.Watch(cmd.Context(), a.cfg.CSVPath, run, platform.WithLogger(a.logger))
		},
	}
}
