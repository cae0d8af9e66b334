// Package git drives the git binary for vault versioning.
package git

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultLockTimeout bounds how long Lock waits for another process.
const DefaultLockTimeout = 10 * time.Second

// ErrLockTimeout is returned when the lock file is held for longer than the timeout.
var ErrLockTimeout = errors.New("timed out waiting for git lock")

// Client wraps git command execution with a file-based lock for process safety.
type Client struct {
	WorkDir     string
	Logger      *slog.Logger
	LockTimeout time.Duration
	lockName    string
}

// NewClient creates a new git client for the given working directory.
// lockName is the file created while a caller holds the lock.
func NewClient(workDir, lockName string, logger *slog.Logger) *Client {
	return &Client{
		WorkDir:     workDir,
		Logger:      logger,
		LockTimeout: DefaultLockTimeout,
		lockName:    lockName,
	}
}

// IsInstalled reports whether a git binary is on PATH.
func IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo reports whether WorkDir is inside a git work tree.
func (c *Client) IsRepo() bool {
	out, err := c.Run("rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// GitDir returns the absolute path of the repository's git directory.
func (c *Client) GitDir() (string, error) {
	return c.Run("rev-parse", "--absolute-git-dir")
}

// LockPath is where the lock file lives: inside the git directory when
// WorkDir is a repository, so that staging the work tree never picks it up.
func (c *Client) LockPath() string {
	if dir, err := c.GitDir(); err == nil && dir != "" {
		return filepath.Join(dir, c.lockName)
	}
	return filepath.Join(c.WorkDir, c.lockName)
}

// Lock acquires the file-based lock, polling until it is free or
// LockTimeout elapses.
func (c *Client) Lock() (func(), error) {
	fullLockPath := c.LockPath()

	timeout := c.LockTimeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	deadline := time.Now().Add(timeout)

	for {
		f, err := os.OpenFile(fullLockPath, os.O_CREATE|os.O_EXCL, 0666)
		if err == nil {
			f.Close()
			return func() {
				os.Remove(fullLockPath)
			}, nil
		}

		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to acquire lock: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, fullLockPath)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Run executes a raw git command in the working directory.
// It does NOT acquire the lock; callers wrap mutating sequences in Lock.
func (c *Client) Run(args ...string) (string, error) {
	if c.Logger != nil {
		c.Logger.Debug("executing git", "args", args, "dir", c.WorkDir)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = c.WorkDir

	out, err := cmd.CombinedOutput()
	output := string(out)

	if err != nil {
		return output, fmt.Errorf("git %s failed: %w\nOutput: %s", args[0], err, output)
	}

	return strings.TrimSpace(output), nil
}

// Add adds paths to the stage. Flags such as -A pass straight through.
func (c *Client) Add(args ...string) error {
	if len(args) == 0 {
		return nil
	}
	_, err := c.Run(append([]string{"add"}, args...)...)
	return err
}

// Commit records staged changes. With paths, only those paths are committed.
func (c *Client) Commit(msg string, paths ...string) error {
	args := []string{"commit", "-m", msg}
	if len(paths) > 0 {
		args = append(append(args, "--"), paths...)
	}
	_, err := c.Run(args...)
	return err
}

// Status returns the porcelain status, optionally limited to paths.
func (c *Client) Status(paths ...string) (string, error) {
	args := []string{"status", "--porcelain"}
	if len(paths) > 0 {
		args = append(append(args, "--"), paths...)
	}
	return c.Run(args...)
}
