// Package core holds the catalog-to-vault domain: records, rendered notes,
// the category table and the export service that ties them together.
package core

// Catalog column names.
const (
	ColumnID             = "ID"
	ColumnCategory       = "Category"
	ColumnSubCategory    = "Sub-Category"
	ColumnDisplayName    = "Display Name"
	ColumnDescription    = "Description"
	ColumnPrimaryLink    = "Primary Link"
	ColumnSecondaryLink  = "Secondary Link"
	ColumnAuthorName     = "Author Name"
	ColumnAuthorLink     = "Author Link"
	ColumnLicense        = "License"
	ColumnDateAdded      = "Date Added"
	ColumnActive         = "Active"
	ColumnLatestRelease  = "Latest Release"
	ColumnReleaseVersion = "Release Version"
)

const (
	// GeneralSubCategory is the sentinel sub-category that gets no folder of its own.
	GeneralSubCategory = "General"
	// DefaultLicense is used when a record carries no license.
	DefaultLicense = "Unknown"
	// BaseTag is attached to every rendered note.
	BaseTag = "claude-code"
	// IndexFile is the name of the generated index at the vault root.
	IndexFile = "_Index.md"
)

// Row is one data row of the catalog, keyed by header name.
type Row map[string]string

// Record is one validated catalog entry describing an external resource.
// It is read once per run and never mutated.
type Record struct {
	ID             string
	Category       string
	SubCategory    string
	DisplayName    string
	Description    string
	PrimaryLink    string
	SecondaryLink  string
	AuthorName     string
	AuthorLink     string
	License        string
	DateAdded      string
	Active         bool
	LatestRelease  string
	ReleaseVersion string
}

// Report summarizes one export run.
type Report struct {
	Notes     []string // vault-relative, slash separated
	Index     string
	Committed bool
}

// Count returns the number of notes written.
func (r Report) Count() int {
	return len(r.Notes)
}
