// Package vault transforms a session's project state into a portable
// Obsidian vault: a zip archive holding the Markdown knowledge-base files
// and one canvas layout document describing the workflow graph.
//
// The transformation is a pure function of its input. Given the same title,
// nodes, edges, and files it produces the same archive bytes; there is no
// network access and no hidden state.
package vault

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/entrhq/architect/pkg/types"
)

// DefaultFolderName substitutes a title that normalizes to nothing.
const DefaultFolderName = "workflow_project"

// DefaultCanvasName names the layout document when the title is empty.
const DefaultCanvasName = "workflow"

// CanvasExtension is the layout document's file extension.
const CanvasExtension = ".canvas"

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespace      = regexp.MustCompile(`\s+`)
)

// FolderName derives the filesystem-safe vault root folder name from a
// session title: every character outside [a-zA-Z0-9] is removed and the
// remainder lower-cased. An empty result falls back to DefaultFolderName.
func FolderName(title string) string {
	name := strings.ToLower(nonAlphanumeric.ReplaceAllString(title, ""))
	if name == "" {
		return DefaultFolderName
	}
	return name
}

// SuggestedArchiveName is the download filename offered for the archive.
func SuggestedArchiveName(title string) string {
	return whitespace.ReplaceAllString(title, "_") + "_Obsidian_Vault.zip"
}

// Generate builds the vault archive for the given project state and returns
// it as an in-memory zip. An error means no archive: a partial vault is
// never produced.
func Generate(title string, nodes []types.WorkflowNode, edges []types.WorkflowEdge, files []types.ProjectFile) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	root := FolderName(title)

	// Knowledge-base files, bytes untouched.
	for _, f := range files {
		w, err := zw.Create(root + "/" + EnsureMarkdownSuffix(f.Filename))
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry for %s: %w", f.Filename, err)
		}
		if _, err := w.Write([]byte(f.Content)); err != nil {
			return nil, fmt.Errorf("failed to write archive entry for %s: %w", f.Filename, err)
		}
	}

	doc := BuildCanvas(nodes, edges, files)
	docJSON, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize canvas document: %w", err)
	}

	canvasName := title
	if canvasName == "" {
		canvasName = DefaultCanvasName
	}
	w, err := zw.Create(root + "/" + canvasName + CanvasExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to create canvas entry: %w", err)
	}
	if _, err := w.Write(docJSON); err != nil {
		return nil, fmt.Errorf("failed to write canvas entry: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildCanvas maps the workflow graph to the layout document. Nodes with a
// related file become file-backed entries; the rest carry their label and
// description as text. Edges referencing a missing endpoint are dropped: a
// dangling edge is tolerated in the model but never exported.
func BuildCanvas(nodes []types.WorkflowNode, edges []types.WorkflowEdge, files []types.ProjectFile) CanvasDocument {
	doc := CanvasDocument{
		Nodes: make([]CanvasNode, 0, len(nodes)),
		Edges: make([]CanvasEdge, 0, len(edges)),
	}

	known := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		known[n.ID] = struct{}{}

		entry := CanvasNode{
			ID:     n.ID,
			X:      n.X,
			Y:      n.Y,
			Width:  nodeWidth,
			Height: nodeHeight,
			Color:  NodeColor(n.Type),
		}
		if related, ok := RelatedFile(n, files); ok {
			entry.Type = "file"
			entry.File = EnsureMarkdownSuffix(related.Filename)
		} else {
			entry.Type = "text"
			entry.Text = fmt.Sprintf("## %s\n\n%s", n.Label, n.Description)
		}
		doc.Nodes = append(doc.Nodes, entry)
	}

	for _, e := range edges {
		if _, ok := known[e.Source]; !ok {
			continue
		}
		if _, ok := known[e.Target]; !ok {
			continue
		}
		doc.Edges = append(doc.Edges, CanvasEdge{
			ID:       e.ID,
			FromNode: e.Source,
			FromSide: edgeFromSide,
			ToNode:   e.Target,
			ToSide:   edgeToSide,
			Label:    e.Label,
		})
	}
	return doc
}
