package fs

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/vaultexport/pkg/core"
)

// Serializer defines how a note is turned into file bytes.
type Serializer interface {
	// Serialize converts the Note to bytes.
	Serialize(n core.Note) ([]byte, error)
}

// MarkdownSerializer writes notes as Markdown with a YAML front-matter block.
// Front-matter keys keep the order of core.Note.Frontmatter.
type MarkdownSerializer struct {
	// Indent is the YAML indentation width. Zero means 2.
	Indent int
}

// NewMarkdownSerializer creates a new Markdown serializer.
func NewMarkdownSerializer() *MarkdownSerializer {
	return &MarkdownSerializer{Indent: 2}
}

func (s *MarkdownSerializer) Serialize(n core.Note) ([]byte, error) {
	var buf bytes.Buffer
	if len(n.Frontmatter) > 0 {
		node, err := frontmatterNode(n.Frontmatter)
		if err != nil {
			return nil, err
		}

		indent := s.Indent
		if indent <= 0 {
			indent = 2
		}

		buf.WriteString("---\n")
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(indent)
		if err := encoder.Encode(node); err != nil {
			return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
		}
		encoder.Close()
		buf.WriteString("---\n\n")
	}
	buf.WriteString(n.Body)
	return buf.Bytes(), nil
}

// frontmatterNode builds an ordered YAML mapping from fields.
func frontmatterNode(fields []core.Field) (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range fields {
		value, err := valueNode(f)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
			value,
		)
	}
	return mapping, nil
}

func valueNode(f core.Field) (*yaml.Node, error) {
	switch v := f.Value.(type) {
	case string:
		if f.Quoted {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: v}, nil
		}
		// No tag: the emitter writes the value plain whenever YAML allows it.
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil
	case []string:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item})
		}
		return seq, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}
