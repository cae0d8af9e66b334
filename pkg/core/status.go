package core

import "sort"

// Checklist labels rendered into every note's Status section.
const (
	StatusReviewed   = "Reviewed"
	StatusInstalled  = "Installed / Downloaded"
	StatusIntegrated = "Integrated into workflow"
)

// ChecklistItem is one task-list entry found in a note body.
type ChecklistItem struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// VaultEntry is a note read back from the vault.
type VaultEntry struct {
	Path        string          `json:"path"`
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subcategory"`
	Checklist   []ChecklistItem `json:"checklist"`
}

// Checked reports whether the entry has a ticked item labelled label.
func (e VaultEntry) Checked(label string) bool {
	for _, item := range e.Checklist {
		if item.Text == label && item.Checked {
			return true
		}
	}
	return false
}

// CategoryStatus aggregates checklist progress for one category.
type CategoryStatus struct {
	Category   string `json:"category"`
	Total      int    `json:"total"`
	Reviewed   int    `json:"reviewed"`
	Installed  int    `json:"installed"`
	Integrated int    `json:"integrated"`
}

// Summarize groups entries by category, sorted by category name.
func Summarize(entries []VaultEntry) []CategoryStatus {
	byCategory := make(map[string]*CategoryStatus)
	for _, e := range entries {
		st, ok := byCategory[e.Category]
		if !ok {
			st = &CategoryStatus{Category: e.Category}
			byCategory[e.Category] = st
		}
		st.Total++
		if e.Checked(StatusReviewed) {
			st.Reviewed++
		}
		if e.Checked(StatusInstalled) {
			st.Installed++
		}
		if e.Checked(StatusIntegrated) {
			st.Integrated++
		}
	}

	out := make([]CategoryStatus, 0, len(byCategory))
	for _, st := range byCategory {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}
