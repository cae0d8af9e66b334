package fs

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/aretw0/vaultexport/pkg/core"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.TaskList))

// ParseChecklist returns every task-list item of a Markdown body in document
// order. Ordinary list items are ignored.
func ParseChecklist(body []byte) []core.ChecklistItem {
	doc := markdown.Parser().Parse(text.NewReader(body))

	var items []core.ChecklistItem
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		box, ok := n.(*east.TaskCheckBox)
		if !ok {
			return ast.WalkContinue, nil
		}
		label := ""
		if parent := box.Parent(); parent != nil {
			label = strings.TrimSpace(string(parent.Text(body)))
		}
		items = append(items, core.ChecklistItem{Text: label, Checked: box.IsChecked})
		return ast.WalkSkipChildren, nil
	})
	return items
}
