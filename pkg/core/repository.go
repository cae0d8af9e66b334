package core

import (
	"context"
	"iter"
)

// RowSource yields catalog rows in file order. The sequence is lazy, finite
// and can only be ranged over once.
type RowSource interface {
	Rows() iter.Seq2[Row, error]
}

// Repository defines where rendered notes and the index end up.
// Adhering to this interface keeps the core independent of the filesystem.
type Repository interface {
	// SaveNote writes a note at its Path, replacing any existing file.
	SaveNote(ctx context.Context, n Note) error

	// SaveIndex writes the index document, replacing any existing file.
	SaveIndex(ctx context.Context, idx Index) error
}

// Versioned is implemented by repositories that can record an export in
// version control.
type Versioned interface {
	// Commit records the current vault state. It returns false when there was nothing to commit.
	Commit(ctx context.Context, report Report) (bool, error)
}

// Scanner is implemented by repositories that can read notes back.
type Scanner interface {
	// Scan returns every note carrying an id, in path order.
	Scan(ctx context.Context) ([]VaultEntry, error)
}
