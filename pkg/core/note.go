package core

import (
	"fmt"
	"strings"
)

// Field is one front-matter entry. Quoted string values are emitted
// double-quoted; field order is kept on output.
type Field struct {
	Key    string
	Value  any
	Quoted bool
}

// Note is a rendered resource note.
// It is agnostic to storage format; adapters decide how to serialize it.
type Note struct {
	Path        string // vault-relative, slash separated
	Frontmatter []Field
	Body        string
}

// Get returns the value stored under key.
func (n Note) Get(key string) (any, bool) {
	for _, f := range n.Frontmatter {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Tags returns the tag list for rec: the base tag, the category slug and,
// outside the General sub-category, the sub-category slug.
func Tags(rec Record) []string {
	tags := []string{BaseTag, Slugify(rec.Category)}
	if rec.SubCategory != "" && rec.SubCategory != GeneralSubCategory {
		tags = append(tags, Slugify(rec.SubCategory))
	}
	return tags
}

// RenderNote maps one record to its note. It never fails: required fields
// are enforced by ParseRecord.
func RenderNote(rec Record) Note {
	return Note{
		Frontmatter: []Field{
			{Key: "id", Value: rec.ID},
			{Key: "category", Value: rec.Category, Quoted: true},
			{Key: "subcategory", Value: rec.SubCategory, Quoted: true},
			{Key: "author", Value: rec.AuthorName, Quoted: true},
			{Key: "license", Value: rec.License, Quoted: true},
			{Key: "date_added", Value: rec.DateAdded, Quoted: true},
			{Key: "active", Value: rec.Active},
			{Key: "tags", Value: Tags(rec)},
		},
		Body: renderBody(rec),
	}
}

func renderBody(rec Record) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", rec.DisplayName)
	fmt.Fprintf(&sb, "> %s\n\n", rec.Description)

	fmt.Fprintf(&sb, "- **Primary Link**: %s\n", link(rec.PrimaryLink, rec.PrimaryLink))
	if rec.SecondaryLink != "" {
		fmt.Fprintf(&sb, "- **Secondary Link**: %s\n", link(rec.SecondaryLink, rec.SecondaryLink))
	}
	fmt.Fprintf(&sb, "- **Author**: %s\n", link(rec.AuthorName, rec.AuthorLink))
	fmt.Fprintf(&sb, "- **License**: %s\n", rec.License)
	fmt.Fprintf(&sb, "- **Added**: %s\n", orNA(rec.DateAdded))
	if rec.LatestRelease != "" {
		fmt.Fprintf(&sb, "- **Latest Release**: %s (%s)\n", orNA(rec.ReleaseVersion), rec.LatestRelease)
	}

	sb.WriteString(`
## Notes

_Add your personal notes, use cases, and integration ideas here._

## Status

- [ ] ` + StatusReviewed + `
- [ ] ` + StatusInstalled + `
- [ ] ` + StatusIntegrated + `
`)
	return sb.String()
}

func link(label, target string) string {
	return "[" + label + "](" + target + ")"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
