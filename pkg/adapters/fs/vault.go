// Package fs stores rendered notes as Markdown files under a vault directory
// and reads them back for status reports.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/vaultexport/pkg/core"
	"github.com/aretw0/vaultexport/pkg/git"
)

const (
	dirPerm  = 0755
	filePerm = 0644

	// LockName is the git lock file name used while committing the vault.
	LockName = "vaultexport.lock"
	// CommitScope is the Conventional Commit scope of export commits.
	CommitScope = "catalog"
)

// Config holds the configuration for the filesystem vault.
type Config struct {
	Path       string
	Logger     *slog.Logger
	DryRun     bool       // render and resolve paths, but write nothing
	Serializer Serializer // defaults to MarkdownSerializer
}

// Vault implements core.Repository on a directory tree.
// Writes overwrite unconditionally; there is no temp file or rollback.
type Vault struct {
	Path       string
	config     Config
	serializer Serializer
	git        *git.Client

	mu           sync.RWMutex
	notesWritten int
	indexWritten bool
	lastCommit   bool
}

// NewVault creates a vault rooted at config.Path.
func NewVault(config Config) *Vault {
	serializer := config.Serializer
	if serializer == nil {
		serializer = NewMarkdownSerializer()
	}
	return &Vault{
		Path:       config.Path,
		config:     config,
		serializer: serializer,
		git:        git.NewClient(config.Path, LockName, config.Logger),
	}
}

// SaveNote serializes n and writes it to <vault>/<n.Path>, creating parent
// directories as needed.
func (v *Vault) SaveNote(ctx context.Context, n core.Note) error {
	if n.Path == "" {
		return core.OutputErrorf("note has no path")
	}

	data, err := v.serializer.Serialize(n)
	if err != nil {
		return core.OutputErrorf("failed to serialize %s: %w", n.Path, err)
	}

	if err := v.write(n.Path, data); err != nil {
		return err
	}
	if id, ok := n.Get("id"); ok {
		v.debug("note saved", "id", id, "path", n.Path)
	}

	v.mu.Lock()
	v.notesWritten++
	v.mu.Unlock()
	return nil
}

// SaveIndex writes the index document to <vault>/<idx.Path>.
func (v *Vault) SaveIndex(ctx context.Context, idx core.Index) error {
	if err := v.write(idx.Path, []byte(idx.Content)); err != nil {
		return err
	}

	v.mu.Lock()
	v.indexWritten = true
	v.mu.Unlock()
	return nil
}

func (v *Vault) write(rel string, data []byte) error {
	fullPath := filepath.Join(v.Path, filepath.FromSlash(rel))

	if v.config.DryRun {
		v.debug("dry run, skipping write", "path", fullPath, "bytes", len(data))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), dirPerm); err != nil {
		return core.OutputErrorf("failed to create directories for %s: %w", rel, err)
	}

	v.debug("writing file", "path", fullPath)
	if err := os.WriteFile(fullPath, data, filePerm); err != nil {
		return core.OutputErrorf("failed to write %s: %w", rel, err)
	}
	return nil
}

// Commit stages the whole vault and records a Conventional Commit for the
// export. It returns false when the work tree was already clean.
func (v *Vault) Commit(ctx context.Context, report core.Report) (bool, error) {
	if v.config.DryRun {
		return false, nil
	}
	if !git.IsInstalled() {
		return false, core.OutputErrorf("git is not installed")
	}
	if !v.git.IsRepo() {
		return false, core.OutputErrorf("vault is not inside a git repository: %s", v.Path)
	}

	unlock, err := v.git.Lock()
	if err != nil {
		return false, core.OutputErrorf("failed to acquire git lock: %w", err)
	}
	defer unlock()

	status, err := v.git.Status(".")
	if err != nil {
		return false, core.OutputErrorf("failed to read git status: %w", err)
	}
	if status == "" {
		v.debug("vault unchanged, nothing to commit", "path", v.Path)
		return false, nil
	}

	if err := v.git.Add("-A", "."); err != nil {
		return false, core.OutputErrorf("failed to git add: %w", err)
	}

	subject := fmt.Sprintf("export %d resources", report.Count())
	msg := git.FormatCommitMessage(git.CommitTypeDocs, CommitScope, subject, "")
	if err := v.git.Commit(msg, "."); err != nil {
		return false, core.OutputErrorf("failed to git commit: %w", err)
	}

	v.mu.Lock()
	v.lastCommit = true
	v.mu.Unlock()
	return true, nil
}

func (v *Vault) debug(msg string, args ...any) {
	if v.config.Logger != nil {
		v.config.Logger.Debug(msg, args...)
	}
}

var (
	_ core.Repository = (*Vault)(nil)
	_ core.Versioned  = (*Vault)(nil)
	_ core.Scanner    = (*Vault)(nil)
)
