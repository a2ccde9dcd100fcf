package vault

import (
	"strings"

	"github.com/entrhq/architect/pkg/types"
)

// RelatedFile finds the project file associated with a node: the first file
// whose title contains the node's label or whose label contains the file's
// title, case-insensitively. At most one file is associated per node and the
// association is recomputed on every call; nothing stores it.
//
// This is deliberately a heuristic, kept behind this single function so it
// could be replaced by an explicit-ID scheme without touching the exporter.
func RelatedFile(node types.WorkflowNode, files []types.ProjectFile) (types.ProjectFile, bool) {
	label := strings.ToLower(node.Label)
	for _, f := range files {
		title := strings.ToLower(f.Title)
		if strings.Contains(title, label) || strings.Contains(label, title) {
			return f, true
		}
	}
	return types.ProjectFile{}, false
}

// EnsureMarkdownSuffix appends ".md" to a logical filename unless it already
// carries the suffix.
func EnsureMarkdownSuffix(filename string) string {
	if strings.HasSuffix(filename, ".md") {
		return filename
	}
	return filename + ".md"
}
