package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Runs           int    `json:"runs"`
	LastNoteCount  int    `json:"last_note_count"`
	IndexSource    string `json:"index_source"`
	Versioning     bool   `json:"versioning"`
	RepositoryType string `json:"repository_type"`
	Repository     any    `json:"repository,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	var repoState any
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
		if intro, ok := s.repo.(introspection.Introspectable); ok {
			repoState = intro.State()
		}
	}

	return ServiceState{
		Runs:           s.runs,
		LastNoteCount:  s.lastReport.Count(),
		IndexSource:    s.config.IndexSource,
		Versioning:     s.config.Versioning,
		RepositoryType: repoType,
		Repository:     repoState,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
