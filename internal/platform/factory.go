// Package platform wires the CSV source, the filesystem vault and the core
// service together.
package platform

import (
	"context"
	"log/slog"

	"github.com/aretw0/introspection"

	"github.com/aretw0/vaultexport/pkg/adapters/csv"
	"github.com/aretw0/vaultexport/pkg/adapters/fs"
	"github.com/aretw0/vaultexport/pkg/core"
)

// New creates a service writing to the vault at vaultPath.
//
//	svc, err := platform.New("obsidian_export", platform.WithDryRun(true))
func New(vaultPath string, opts ...Option) (*core.Service, error) {
	return newService(vaultPath, buildOptions(opts))
}

func newService(vaultPath string, o *options) (*core.Service, error) {
	repo := o.repository
	if repo == nil {
		if vaultPath == "" {
			return nil, core.InputErrorf("vault path is required")
		}
		repo = fs.NewVault(fs.Config{
			Path:   vaultPath,
			Logger: o.logger,
			DryRun: o.dryRun,
		})
	}

	return core.NewService(repo, core.Config{
		Folders:     o.folders,
		IndexSource: o.indexSource,
		Versioning:  o.versioning,
		Logger:      o.logger,
	}), nil
}

// Export reads the catalog at csvPath and writes one note per row plus the
// index into vaultPath.
func Export(ctx context.Context, csvPath, vaultPath string, opts ...Option) (core.Report, error) {
	o := buildOptions(opts)

	svc, err := newService(vaultPath, o)
	if err != nil {
		return core.Report{}, err
	}

	src := o.source
	if src == nil {
		file, err := csv.Open(csvPath)
		if err != nil {
			return core.Report{}, err
		}
		defer file.Close()
		o.log().Debug("catalog opened", "path", csvPath, "columns", file.Header())
		src = file
	}

	report, err := svc.Export(ctx, src)
	logState(o.log(), svc)
	return report, err
}

// logState records the service state, including the vault's, at debug level.
func logState(logger *slog.Logger, component introspection.Component) {
	intro, ok := component.(introspection.Introspectable)
	if !ok {
		return
	}
	logger.Debug("component state", "component", component.ComponentType(), "state", intro.State())
}

// Status reads the vault back and summarizes checklist progress per category.
func Status(ctx context.Context, vaultPath string, opts ...Option) ([]core.CategoryStatus, []core.VaultEntry, error) {
	svc, err := New(vaultPath, opts...)
	if err != nil {
		return nil, nil, err
	}
	return svc.Status(ctx)
}
