package platform

import (
	"log/slog"
	"maps"
	"time"

	"github.com/aretw0/vaultexport/pkg/core"
)

// DefaultDebounce is how long Watch waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// options holds the internal configuration for an export.
type options struct {
	repository  core.Repository
	source      core.RowSource
	logger      *slog.Logger
	folders     core.FolderMap
	indexSource string
	dryRun      bool
	versioning  bool
	debounce    time.Duration
}

// Option defines a functional option for configuring an export.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		folders:     core.DefaultFolders(),
		indexSource: core.DefaultIndexSource,
		debounce:    DefaultDebounce,
	}
}

// log returns the configured logger, or one that discards everything.
func (o *options) log() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.logger
}

func buildOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger for the service and the vault.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the filesystem vault is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithSource replaces the CSV file with another row source.
func WithSource(src core.RowSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithCategoryFolders overrides folder names for the given categories.
// Categories not listed keep their default folder.
func WithCategoryFolders(overrides map[string]string) Option {
	return func(o *options) {
		folders := maps.Clone(o.folders)
		maps.Copy(folders, overrides)
		o.folders = folders
	}
}

// WithIndexSource sets the folder the index queries read from.
// An empty name keeps the default.
func WithIndexSource(name string) Option {
	return func(o *options) {
		if name != "" {
			o.indexSource = name
		}
	}
}

// WithDryRun renders every note and resolves its path without writing.
func WithDryRun(enabled bool) Option {
	return func(o *options) {
		o.dryRun = enabled
	}
}

// WithVersioning commits the vault to git after a successful export.
// Disabled by default.
func WithVersioning(enabled bool) Option {
	return func(o *options) {
		o.versioning = enabled
	}
}

// WithDebounce sets how long Watch waits after the last change before
// exporting again. Zero keeps the default.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}
