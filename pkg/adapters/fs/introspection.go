package fs

import (
	"github.com/aretw0/introspection"
)

// VaultState exposes internal state for observability.
type VaultState struct {
	Path         string `json:"path"`
	DryRun       bool   `json:"dry_run"`
	NotesWritten int    `json:"notes_written"`
	IndexWritten bool   `json:"index_written"`
	Committed    bool   `json:"committed"`
}

// State implements introspection.Introspectable.
func (v *Vault) State() any {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return VaultState{
		Path:         v.Path,
		DryRun:       v.config.DryRun,
		NotesWritten: v.notesWritten,
		IndexWritten: v.indexWritten,
		Committed:    v.lastCommit,
	}
}

// ComponentType implements introspection.Component.
func (v *Vault) ComponentType() string {
	return "vault"
}

var _ introspection.Introspectable = (*Vault)(nil)
var _ introspection.Component = (*Vault)(nil)
