package git

import (
	"strings"
)

// CommitType constants for semantic commits.
const (
	CommitTypeFeat  = "feat"
	CommitTypeFix   = "fix"
	CommitTypeDocs  = "docs"
	CommitTypeChore = "chore"
)

// Footer is the trailer appended to every commit this tool makes.
const Footer = "Exported-by: vaultexport"

// FormatCommitMessage builds a Conventional Commit message:
//
//	<type>(<scope>): <subject>
//
//	<body>
//
//	Exported-by: vaultexport
func FormatCommitMessage(ctype, scope, subject, body string) string {
	var sb strings.Builder

	if ctype == "" {
		ctype = CommitTypeChore
	}
	sb.WriteString(ctype)

	if scope != "" {
		sb.WriteString("(")
		sb.WriteString(scope)
		sb.WriteString(")")
	}

	sb.WriteString(": ")
	sb.WriteString(subject)

	if body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(strings.TrimSpace(body))
	}

	sb.WriteString("\n\n")
	sb.WriteString(Footer)

	return sb.String()
}
