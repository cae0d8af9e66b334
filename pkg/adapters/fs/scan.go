package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/aretw0/vaultexport/pkg/core"
)

// notePattern matches every Markdown file below the vault root.
const notePattern = "**/*.md"

type noteMeta struct {
	ID          any    `yaml:"id"`
	Category    string `yaml:"category"`
	SubCategory string `yaml:"subcategory"`
}

// Scan reads the vault back. Only notes whose front matter carries an id are
// returned; the index and hidden directories (.obsidian, .git) are skipped.
func (v *Vault) Scan(ctx context.Context) ([]core.VaultEntry, error) {
	info, err := os.Stat(v.Path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, core.InputErrorf("vault path does not exist: %s", v.Path)
		}
		return nil, core.OutputErrorf("failed to stat vault: %w", err)
	}
	if !info.IsDir() {
		return nil, core.InputErrorf("vault path is not a directory: %s", v.Path)
	}

	fsys := os.DirFS(v.Path)
	matches, err := doublestar.Glob(fsys, notePattern)
	if err != nil {
		return nil, core.OutputErrorf("failed to list notes: %w", err)
	}
	sort.Strings(matches)

	var entries []core.VaultEntry
	for _, rel := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if rel == core.IndexFile || hidden(rel) {
			continue
		}

		data, err := iofs.ReadFile(fsys, rel)
		if err != nil {
			return nil, core.OutputErrorf("failed to read %s: %w", rel, err)
		}

		entry, ok, err := parseEntry(rel, data)
		if err != nil {
			if v.config.Logger != nil {
				v.config.Logger.Warn("skipping unreadable note", "path", filepath.Join(v.Path, rel), "error", err)
			}
			continue
		}
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func parseEntry(rel string, data []byte) (core.VaultEntry, bool, error) {
	var meta noteMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return core.VaultEntry{}, false, fmt.Errorf("parse frontmatter: %w", err)
	}
	if meta.ID == nil {
		return core.VaultEntry{}, false, nil
	}

	id := strings.TrimSpace(fmt.Sprint(meta.ID))
	if id == "" {
		return core.VaultEntry{}, false, nil
	}

	return core.VaultEntry{
		Path:        rel,
		ID:          id,
		Category:    meta.Category,
		SubCategory: meta.SubCategory,
		Checklist:   ParseChecklist(body),
	}, true, nil
}

func hidden(rel string) bool {
	for _, seg := range strings.Split(path.Dir(rel), "/") {
		if strings.HasPrefix(seg, ".") && seg != "." {
			return true
		}
	}
	return false
}
