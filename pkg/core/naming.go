package core

import (
	"maps"
	"path"
	"regexp"
	"strings"
)

// FolderMap maps category names to vault folder names.
type FolderMap map[string]string

var defaultFolders = FolderMap{
	"Agent Skills":                 "Agent Skills",
	"Workflows & Knowledge Guides": "Workflows",
	"Tooling":                      "Tooling",
	"Status Lines":                 "Status Lines",
	"Hooks":                        "Hooks",
	"Slash-Commands":               "Slash-Commands",
	"CLAUDE.md Files":              "CLAUDE.md Files",
	"Alternative Clients":          "Alternative Clients",
	"Official Documentation":       "Official Documentation",
}

// DefaultFolders returns a copy of the built-in category table.
func DefaultFolders() FolderMap {
	return maps.Clone(defaultFolders)
}

// Folder returns the folder for category. Unknown categories are used verbatim.
func (m FolderMap) Folder(category string) string {
	if folder, ok := m[category]; ok {
		return folder
	}
	return category
}

var forbiddenChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// Sanitize strips the characters < > : " / \ | ? * and surrounding whitespace
// from a path segment derived from catalog content.
func Sanitize(segment string) string {
	return strings.TrimSpace(forbiddenChars.ReplaceAllString(segment, ""))
}

// Slugify lowercases name, turns spaces into hyphens and expands "&" to "and".
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	return strings.ReplaceAll(slug, "&", "and")
}

// NoteDir returns the vault-relative directory for a category/sub-category pair.
// The General sub-category gets no folder of its own.
func NoteDir(folders FolderMap, category, subCategory string) string {
	dir := folders.Folder(category)
	if subCategory != "" && subCategory != GeneralSubCategory {
		dir = path.Join(dir, Sanitize(subCategory))
	}
	return dir
}

// NotePath returns the vault-relative, slash separated file path for rec.
func NotePath(folders FolderMap, rec Record) (string, error) {
	stem := Sanitize(rec.DisplayName)
	if stem == "" {
		return "", InputErrorf("record %q: display name %q is empty after sanitizing", rec.ID, rec.DisplayName)
	}
	return path.Join(NoteDir(folders, rec.Category, rec.SubCategory), stem+".md"), nil
}
