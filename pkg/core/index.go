package core

import "fmt"

const (
	// DefaultIndexSource is the vault folder the index queries read from.
	DefaultIndexSource = "Claude Code"
	// CatalogURL is the upstream catalog credited in the index.
	CatalogURL = "https://github.com/mccartmc21-del/awesome-claude-code"
)

// Index is the generated summary document.
type Index struct {
	Path    string
	Content string
}

// BuildIndex returns the static index document. Its Dataview queries are
// evaluated by the note viewer against the folder named source; nothing here
// looks at the exported records.
func BuildIndex(source string) Index {
	if source == "" {
		source = DefaultIndexSource
	}
	return Index{
		Path:    IndexFile,
		Content: fmt.Sprintf(indexTemplate, CatalogURL, source),
	}
}

const indexTemplate = "# Claude Code Resources Index\n" +
	"\n" +
	"> Auto-generated from [awesome-claude-code](%[1]s).\n" +
	"\n" +
	"## All Resources by Category\n" +
	"\n" +
	"```dataview\n" +
	"TABLE author, license, active\n" +
	"FROM %[2]q\n" +
	"WHERE id\n" +
	"GROUP BY category\n" +
	"SORT category ASC\n" +
	"```\n" +
	"\n" +
	"## Recently Added\n" +
	"\n" +
	"```dataview\n" +
	"TABLE category, author\n" +
	"FROM %[2]q\n" +
	"WHERE id\n" +
	"SORT date_added DESC\n" +
	"LIMIT 20\n" +
	"```\n" +
	"\n" +
	"## Reviewed Resources\n" +
	"\n" +
	"```dataview\n" +
	"LIST\n" +
	"FROM %[2]q\n" +
	"WHERE contains(file.tasks.text, \"Reviewed\") AND file.tasks.completed\n" +
	"SORT category ASC\n" +
	"```\n"
