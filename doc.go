// Package vaultexport converts a CSV resource catalog into an Obsidian vault.
//
// Every catalog row becomes one Markdown note with YAML front matter, filed
// under a folder named after its category and, unless it is "General", its
// sub-category. A static _Index.md with Dataview queries is written next to
// the notes. Notes are overwritten on every run.
//
// Usage:
//
//	report, err := vaultexport.Export(ctx, "THE_RESOURCES_TABLE.csv", "obsidian_export",
//		vaultexport.WithLogger(logger),
//	)
//
//	// Read the vault back and count ticked checklist items.
//	summary, _, err := vaultexport.Status(ctx, "obsidian_export")
package vaultexport
