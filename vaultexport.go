package vaultexport

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/vaultexport/internal/platform"
	"github.com/aretw0/vaultexport/pkg/core"
)

// Version exposes the version of the library.
// See version.go for the implementation using go:embed.

// --- Types ---

// Report summarizes one export run.
type Report = core.Report

// CategoryStatus aggregates checklist progress for one category.
type CategoryStatus = core.CategoryStatus

// VaultEntry is a note read back from the vault.
type VaultEntry = core.VaultEntry

// RunFunc performs one export for Watch.
type RunFunc = platform.RunFunc

// --- Configuration ---

// Option defines a functional option for configuring an export.
type Option = platform.Option

// WithLogger sets the logger for the service and the vault.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithSource replaces the CSV file with another row source.
func WithSource(src core.RowSource) Option {
	return platform.WithSource(src)
}

// WithCategoryFolders overrides folder names for the given categories.
func WithCategoryFolders(overrides map[string]string) Option {
	return platform.WithCategoryFolders(overrides)
}

// WithIndexSource sets the folder the index queries read from.
func WithIndexSource(name string) Option {
	return platform.WithIndexSource(name)
}

// WithDryRun renders every note without writing anything.
func WithDryRun(enabled bool) Option {
	return platform.WithDryRun(enabled)
}

// WithVersioning commits the vault to git after a successful export.
func WithVersioning(enabled bool) Option {
	return platform.WithVersioning(enabled)
}

// WithDebounce sets how long Watch waits for changes to settle.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// --- Factory ---

// New creates a service writing to the vault at vaultPath.
func New(vaultPath string, opts ...Option) (*core.Service, error) {
	return platform.New(vaultPath, opts...)
}

// --- Operations ---

// Export converts the catalog at csvPath into notes under vaultPath.
func Export(ctx context.Context, csvPath, vaultPath string, opts ...Option) (Report, error) {
	return platform.Export(ctx, csvPath, vaultPath, opts...)
}

// Status summarizes checklist progress of the notes in vaultPath.
func Status(ctx context.Context, vaultPath string, opts ...Option) ([]CategoryStatus, []VaultEntry, error) {
	return platform.Status(ctx, vaultPath, opts...)
}

// Watch runs, then runs again whenever the file at csvPath changes, until
// ctx is cancelled.
func Watch(ctx context.Context, csvPath string, run RunFunc, opts ...Option) error {
	return platform.Watch(ctx, csvPath, run, opts...)
}
