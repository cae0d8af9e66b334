package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	csvPath := writeCatalog(t, "a,Hooks,General,A,,https://a,,ann,,,,TRUE,,")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan struct{}, 10)
	run := func(ctx context.Context) error {
		runs <- struct{}{}
		return nil
	}

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, csvPath, run, WithDebounce(100*time.Millisecond))
	}()

	waitRun(t, runs, "initial run")

	// Several writes in quick succession collapse into one run.
	for range 3 {
		require.NoError(t, os.WriteFile(csvPath, []byte(catalogHeader+"b,Hooks,General,B,,https://b,,bob,,,,TRUE,,\n"), 0644))
	}
	waitRun(t, runs, "run after change")

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(csvPath), "other.txt"), []byte("x"), 0644))
	select {
	case <-runs:
		t.Fatal("unexpected run for unrelated file")
	case <-time.After(400 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_RunErrorsKeepWatching(t *testing.T) {
	csvPath := writeCatalog(t, "a,Hooks,General,A,,https://a,,ann,,,,TRUE,,")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan struct{}, 10)
	run := func(ctx context.Context) error {
		runs <- struct{}{}
		return errors.New("boom")
	}

	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, csvPath, run, WithDebounce(10*time.Millisecond))
	}()

	waitRun(t, runs, "initial run")
	require.NoError(t, os.WriteFile(csvPath, []byte(catalogHeader), 0644))
	waitRun(t, runs, "run after change")

	cancel()
	assert.NoError(t, <-done)
}

func TestWatch_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone", "catalog.csv")
	err := Watch(context.Background(), missing, func(context.Context) error { return nil })
	assert.Error(t, err)
}

func waitRun(t *testing.T, runs <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-runs:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}
