// Package schema implements the structural contracts shared by generated
// documents. It provides the validation issue collector, field-level check
// helpers, and the document pieces (Bloom's objectives, resources, sessions,
// role modules) that Blueprint and Playbook contracts compose.
package schema

import (
	"fmt"
	"strings"
)

// Issue describes a single contract violation at a dotted document path.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Issues accumulates contract violations during validation.
// An empty collection means the value satisfies its contract.
type Issues []Issue

// Add records a violation at the given path.
func (is *Issues) Add(path, message string) {
	*is = append(*is, Issue{Path: path, Message: message})
}

// Addf records a violation with a formatted message.
func (is *Issues) Addf(path, format string, args ...any) {
	is.Add(path, fmt.Sprintf(format, args...))
}

// Flatten renders the collected issues as one line per violation,
// suitable for repair prompts and operator logs.
func (is Issues) Flatten() string {
	if len(is) == 0 {
		return ""
	}

	lines := make([]string, len(is))
	for i, issue := range is {
		if issue.Path == "" {
			lines[i] = issue.Message
			continue
		}
		lines[i] = issue.Path + ": " + issue.Message
	}
	return strings.Join(lines, "\n")
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
