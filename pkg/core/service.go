package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Config holds the service settings.
type Config struct {
	Folders     FolderMap
	IndexSource string
	Versioning  bool
	Logger      *slog.Logger
}

// Service runs the catalog export against a Repository.
type Service struct {
	repo   Repository
	config Config
	logger *slog.Logger

	mu         sync.RWMutex
	runs       int
	lastReport Report
}

// NewService creates a new Service.
func NewService(repo Repository, cfg Config) *Service {
	if cfg.Folders == nil {
		cfg.Folders = DefaultFolders()
	}
	if cfg.IndexSource == "" {
		cfg.IndexSource = DefaultIndexSource
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, config: cfg, logger: logger}
}

// Export renders every row of src into the repository, then writes the index.
//
// Workflow:
//  1. For each row: parse the record, resolve its path, render and save the note.
//  2. Save the static index.
//  3. (If versioning is enabled) commit the vault.
//
// The first failure aborts the run; notes already written stay in place.
func (s *Service) Export(ctx context.Context, src RowSource) (Report, error) {
	var report Report

	n := 0
	for row, err := range src.Rows() {
		if err != nil {
			return report, err
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		n++

		rec, err := ParseRecord(row)
		if err != nil {
			return report, fmt.Errorf("row %d: %w", n, err)
		}

		notePath, err := NotePath(s.config.Folders, rec)
		if err != nil {
			return report, fmt.Errorf("row %d: %w", n, err)
		}

		note := RenderNote(rec)
		note.Path = notePath
		if err := s.repo.SaveNote(ctx, note); err != nil {
			return report, err
		}
		report.Notes = append(report.Notes, notePath)
		s.logger.Debug("note written", "id", rec.ID, "path", notePath)
	}

	idx := BuildIndex(s.config.IndexSource)
	if err := s.repo.SaveIndex(ctx, idx); err != nil {
		return report, err
	}
	report.Index = idx.Path

	if s.config.Versioning {
		v, ok := s.repo.(Versioned)
		if !ok {
			return report, errors.New("repository does not support versioning")
		}
		committed, err := v.Commit(ctx, report)
		if err != nil {
			return report, err
		}
		report.Committed = committed
	}

	s.logger.Info("export complete", "notes", report.Count(), "index", report.Index, "committed", report.Committed)

	s.mu.Lock()
	s.runs++
	s.lastReport = report
	s.mu.Unlock()

	return report, nil
}

// Status reads the vault back and summarizes checklist progress per category.
func (s *Service) Status(ctx context.Context) ([]CategoryStatus, []VaultEntry, error) {
	sc, ok := s.repo.(Scanner)
	if !ok {
		return nil, nil, errors.New("repository does not support scanning")
	}
	entries, err := sc.Scan(ctx)
	if err != nil {
		return nil, nil, err
	}
	return Summarize(entries), entries, nil
}
