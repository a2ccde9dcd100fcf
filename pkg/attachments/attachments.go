// Package attachments renders user-attached files into the structured text
// appendix that travels with a chat message. The turn boundary only accepts
// plain text, so attachments are flattened here before submission: text files
// pass through as-is, HTML is reduced to its readable text, and anything
// outside the allowlist is replaced with a localized omission notice.
package attachments

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/net/html"

	"github.com/entrhq/architect/pkg/i18n"
)

// DefaultAllowlist matches the attachment names accepted by default. Matching
// is by logical filename only; content is never sniffed.
var DefaultAllowlist = []string{
	"*.md", "*.txt", "*.html", "*.htm", "*.json", "*.yaml", "*.yml", "*.csv",
}

// Attachment is one user-attached file: a logical name and its raw content.
type Attachment struct {
	Name    string
	Content []byte
}

// Renderer flattens attachments into a message appendix.
type Renderer struct {
	allowed []glob.Glob
}

// NewRenderer compiles the allowlist patterns. Invalid patterns are rejected
// so a misconfigured allowlist fails loudly at startup, not per message.
func NewRenderer(patterns []string) (*Renderer, error) {
	if len(patterns) == 0 {
		patterns = DefaultAllowlist
	}
	allowed := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid allowlist pattern %q: %w", p, err)
		}
		allowed = append(allowed, g)
	}
	return &Renderer{allowed: allowed}, nil
}

// Allowed reports whether an attachment name passes the allowlist.
func (r *Renderer) Allowed(name string) bool {
	lower := strings.ToLower(name)
	for _, g := range r.allowed {
		if g.Match(lower) {
			return true
		}
	}
	return false
}

// Render appends the attachments to the user text as a structured appendix:
//
//	<text>
//
//	---
//	Attached Files:
//	File: <name>
//	Content:
//	<content>
//
// Returns the text unchanged when there are no attachments.
func (r *Renderer) Render(text string, files []Attachment) string {
	if len(files) == 0 {
		return text
	}

	sections := make([]string, 0, len(files))
	for _, f := range files {
		sections = append(sections, fmt.Sprintf("%s: %s\n%s:\n%s",
			i18n.T("file"), f.Name, i18n.T("content"), r.contentFor(f)))
	}
	return text + fmt.Sprintf("\n\n---\n%s:\n", i18n.T("attachedFiles")) + strings.Join(sections, "\n\n")
}

func (r *Renderer) contentFor(f Attachment) string {
	if !r.Allowed(f.Name) {
		return i18n.T("unsupportedAttachment")
	}
	lower := strings.ToLower(f.Name)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		if text, err := htmlToText(string(f.Content)); err == nil {
			return text
		}
	}
	return string(f.Content)
}

// htmlToText extracts the readable text of an HTML document, skipping script
// and style subtrees and collapsing whitespace between blocks.
func htmlToText(rawHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var builder strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if builder.Len() > 0 {
					builder.WriteString("\n")
				}
				builder.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return builder.String(), nil
}
