package platform

import (
	"bytes"
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/vaultexport/pkg/core"
)

const catalogHeader = "ID,Category,Sub-Category,Display Name,Description,Primary Link,Secondary Link," +
	"Author Name,Author Link,License,Date Added,Active,Latest Release,Release Version\n"

func writeCatalog(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "THE_RESOURCES_TABLE.csv")
	data := catalogHeader + strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func readTree(t *testing.T, root string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, p)
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestExport(t *testing.T) {
	csvPath := writeCatalog(t,
		"hook-1,Hooks,General,My Hook,Runs first,https://a.example,,ann,https://a.example/ann,MIT,2025-01-02,TRUE,,",
		"tool-1,Tooling,Linters,Foo/Bar,Lints,https://b.example,https://b.example/docs,bob,https://b.example/bob,,,FALSE,2025-05-01,v1.2.0",
		"wf-1,Workflows & Knowledge Guides,Onboarding,Guide,Helps,https://c.example,,cid,https://c.example/cid,Apache-2.0,,true,,",
	)
	vault := filepath.Join(t.TempDir(), "obsidian_export")

	report, err := Export(context.Background(), csvPath, vault)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Count())
	assert.Equal(t, []string{"Hooks/My Hook.md", "Tooling/Linters/FooBar.md", "Workflows/Onboarding/Guide.md"}, report.Notes)

	files := readTree(t, vault)
	require.Len(t, files, 4)
	assert.Contains(t, files, core.IndexFile)

	hook := files["Hooks/My Hook.md"]
	assert.True(t, strings.HasPrefix(hook, "---\nid: hook-1\ncategory: \"Hooks\"\n"))
	assert.Contains(t, hook, "tags:\n  - claude-code\n  - hooks\n---\n")
	assert.NotContains(t, hook, "Secondary Link")
	assert.NotContains(t, hook, "Latest Release")

	tool := files["Tooling/Linters/FooBar.md"]
	assert.Contains(t, tool, "license: \"Unknown\"\n")
	assert.Contains(t, tool, "active: false\n")
	assert.Equal(t, 1, strings.Count(tool, "- **Secondary Link**: "))
	assert.Contains(t, tool, "- **Latest Release**: v1.2.0 (2025-05-01)\n")

	guide := files["Workflows/Onboarding/Guide.md"]
	assert.Contains(t, guide, "  - workflows-and-knowledge-guides\n  - onboarding\n")
}

func TestExport_Idempotent(t *testing.T) {
	csvPath := writeCatalog(t,
		"a,Hooks,General,A,desc,https://a,,ann,https://ann,MIT,2025-01-01,TRUE,,",
		"b,Tooling,Linters,B,desc,https://b,,bob,https://bob,,,TRUE,2025-02-02,",
	)
	vault := t.TempDir()

	_, err := Export(context.Background(), csvPath, vault)
	require.NoError(t, err)
	first := readTree(t, vault)

	_, err = Export(context.Background(), csvPath, vault)
	require.NoError(t, err)
	assert.Equal(t, first, readTree(t, vault))
}

func TestExport_MissingColumnWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte("ID,Category,Display Name\na,Hooks,A\n"), 0644))
	vault := filepath.Join(t.TempDir(), "vault")

	_, err := Export(context.Background(), path, vault)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInput)
	assert.Contains(t, err.Error(), "Primary Link")

	_, statErr := os.Stat(vault)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExport_MissingValueNamesRow(t *testing.T) {
	csvPath := writeCatalog(t,
		"a,Hooks,General,A,,https://a,,ann,,,,TRUE,,",
		"b,Hooks,General,B,,,,bob,,,,TRUE,,",
	)

	_, err := Export(context.Background(), csvPath, t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInput)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, core.FieldErrors(err), core.ColumnPrimaryLink)
}

func TestExport_MissingCatalog(t *testing.T) {
	_, err := Export(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), t.TempDir())
	assert.ErrorIs(t, err, core.ErrInput)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestExport_Options(t *testing.T) {
	csvPath := writeCatalog(t, "a,Hooks,General,A,,https://a,,ann,,,,TRUE,,")

	t.Run("Dry Run", func(t *testing.T) {
		vault := filepath.Join(t.TempDir(), "vault")
		report, err := Export(context.Background(), csvPath, vault, WithDryRun(true))
		require.NoError(t, err)
		assert.Equal(t, []string{"Hooks/A.md"}, report.Notes)
		_, statErr := os.Stat(vault)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("Category Folders", func(t *testing.T) {
		vault := t.TempDir()
		report, err := Export(context.Background(), csvPath, vault, WithCategoryFolders(map[string]string{"Hooks": "Lifecycle Hooks"}))
		require.NoError(t, err)
		assert.Equal(t, []string{"Lifecycle Hooks/A.md"}, report.Notes)
	})

	t.Run("Index Source", func(t *testing.T) {
		vault := t.TempDir()
		_, err := Export(context.Background(), csvPath, vault, WithIndexSource("AI/Catalog"))
		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(vault, core.IndexFile))
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(string(data), `FROM "AI/Catalog"`))
	})

	t.Run("Logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		_, err := Export(context.Background(), csvPath, t.TempDir(), WithLogger(logger))
		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "export complete")
		assert.Contains(t, out, "id=a")
		assert.Contains(t, out, "msg=\"catalog opened\"")
		assert.Contains(t, out, "Display Name")
		assert.Contains(t, out, "msg=\"component state\" component=service")
		assert.Contains(t, out, "RepositoryType:vault")
		assert.Contains(t, out, "NotesWritten:1")
		assert.Contains(t, out, "IndexWritten:true")
	})
}

func TestWithCategoryFolders_KeepsDefaults(t *testing.T) {
	o := buildOptions([]Option{WithCategoryFolders(map[string]string{"Hooks": "Other"})})
	assert.Equal(t, "Other", o.folders.Folder("Hooks"))
	assert.Equal(t, "Workflows", o.folders.Folder("Workflows & Knowledge Guides"))
	assert.Equal(t, "Hooks", core.DefaultFolders().Folder("Hooks"))
}

func TestNew_RequiresVaultPath(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, core.ErrInput)
}

func TestStatus(t *testing.T) {
	csvPath := writeCatalog(t,
		"a,Hooks,General,A,,https://a,,ann,,,,TRUE,,",
		"b,Hooks,General,B,,https://b,,bob,,,,TRUE,,",
		"c,Tooling,General,C,,https://c,,cid,,,,TRUE,,",
	)
	vault := t.TempDir()
	_, err := Export(context.Background(), csvPath, vault)
	require.NoError(t, err)

	path := filepath.Join(vault, "Hooks", "A.md")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, bytes.Replace(data, []byte("- [ ] Reviewed"), []byte("- [x] Reviewed"), 1), 0644))

	summary, entries, err := Status(context.Background(), vault)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, []core.CategoryStatus{
		{Category: "Hooks", Total: 2, Reviewed: 1},
		{Category: "Tooling", Total: 1},
	}, summary)
}
