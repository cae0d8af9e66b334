package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/vaultexport/internal/config"
	"github.com/aretw0/vaultexport/internal/platform"
	"github.com/aretw0/vaultexport/pkg/core"
)

// app carries state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	verbose bool
	cfgFile string
	dryRun  bool
}

// newRootCmd builds the command tree. The root command runs the export.
func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "vaultexport",
		Short: "Export a CSV resource catalog into an Obsidian vault",
		Long: `vaultexport turns every row of a resource catalog into a Markdown note with
YAML front matter, filed by category, and writes an _Index.md with Dataview
queries over the result. Existing notes are overwritten on every run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := platform.Export(cmd.Context(), a.cfg.CSVPath, a.cfg.VaultPath, a.options()...)
			if err != nil {
				return err
			}
			a.printReport(cmd, report)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./vaultexport.yaml or ~/.config/vaultexport/vaultexport.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.String("vault-path", config.DefaultVaultPath, "Output vault directory")
	flags.String("csv", config.DefaultCSVPath, "Resource catalog CSV file")
	flags.String("index-source", "", "Folder the index queries read from (default \""+core.DefaultIndexSource+"\")")
	flags.BoolVar(&a.dryRun, "dry-run", false, "Render notes and report paths without writing")
	flags.Bool("commit", false, "Commit the vault to git after exporting")

	rootCmd.AddCommand(newStatusCmd(a), newWatchCmd(a), newVersionCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level: level,
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
	slog.SetDefault(a.logger)

	if cfg.File != "" {
		a.logger.Debug("using config file", "path", cfg.File)
	}
	return nil
}

func (a *app) options() []platform.Option {
	return []platform.Option{
		platform.WithLogger(a.logger),
		platform.WithCategoryFolders(a.cfg.Folders()),
		platform.WithIndexSource(a.cfg.IndexSource),
		platform.WithDryRun(a.dryRun),
		platform.WithVersioning(a.cfg.Commit),
	}
}

func (a *app) printReport(cmd *cobra.Command, report core.Report) {
	out := cmd.OutOrStdout()
	if a.dryRun {
		for _, p := range report.Notes {
			fmt.Fprintln(out, p)
		}
		fmt.Fprintf(out, "Dry run: %d resource notes + %s would be written to %s\n", report.Count(), core.IndexFile, a.cfg.VaultPath)
		return
	}
	fmt.Fprintf(out, "Created %d resource notes + %s in %s\n", report.Count(), core.IndexFile, a.cfg.VaultPath)
	if report.Committed {
		fmt.Fprintln(out, "Committed vault changes")
	}
}

// Execute runs the root command until it finishes or the process receives
// SIGINT or SIGTERM. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// printError writes err, then one line per offending column when err comes
// from record validation.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	fields := core.FieldErrors(err)
	for _, col := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(w, "  %s: %v\n", col, fields[col])
	}
}
