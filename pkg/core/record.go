package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RequiredColumns lists the header columns a catalog must carry.
var RequiredColumns = []string{
	ColumnID,
	ColumnCategory,
	ColumnDisplayName,
	ColumnPrimaryLink,
	ColumnAuthorName,
}

// ParseRecord applies the per-field contract to a row: required fields must be
// non-blank, optional fields fall back to their defaults.
// Failures are of kind ErrInput and list every offending column.
func ParseRecord(row Row) (Record, error) {
	// Every cell is trimmed, Description included, so a description with
	// leading spaces still renders as a plain "> " quote line.
	get := func(col string) string {
		return strings.TrimSpace(row[col])
	}

	rec := Record{
		ID:             get(ColumnID),
		Category:       get(ColumnCategory),
		SubCategory:    get(ColumnSubCategory),
		DisplayName:    get(ColumnDisplayName),
		Description:    get(ColumnDescription),
		PrimaryLink:    get(ColumnPrimaryLink),
		SecondaryLink:  get(ColumnSecondaryLink),
		AuthorName:     get(ColumnAuthorName),
		AuthorLink:     get(ColumnAuthorLink),
		License:        get(ColumnLicense),
		DateAdded:      get(ColumnDateAdded),
		Active:         true,
		LatestRelease:  get(ColumnLatestRelease),
		ReleaseVersion: get(ColumnReleaseVersion),
	}
	if rec.SubCategory == "" {
		rec.SubCategory = GeneralSubCategory
	}
	if rec.License == "" {
		rec.License = DefaultLicense
	}

	var activeErr error
	if raw := get(ColumnActive); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			activeErr = fmt.Errorf("invalid boolean %q", raw)
		}
		rec.Active = active
	}

	errs := validation.Errors{
		ColumnID:          validation.Validate(rec.ID, validation.Required),
		ColumnCategory:    validation.Validate(rec.Category, validation.Required),
		ColumnDisplayName: validation.Validate(rec.DisplayName, validation.Required),
		ColumnPrimaryLink: validation.Validate(rec.PrimaryLink, validation.Required),
		ColumnAuthorName:  validation.Validate(rec.AuthorName, validation.Required),
		ColumnActive:      activeErr,
	}
	if err := errs.Filter(); err != nil {
		return Record{}, InputErrorf("invalid record %q: %w", rec.ID, err)
	}

	return rec, nil
}

// MissingColumns reports which required columns are absent from header.
func MissingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	return missing
}

// FieldErrors extracts per-column validation failures from an error returned
// by ParseRecord. It returns nil when err carries none.
func FieldErrors(err error) map[string]error {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]error, len(verrs))
	for k, v := range verrs {
		out[k] = v
	}
	return out
}
