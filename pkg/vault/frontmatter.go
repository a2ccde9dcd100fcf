package vault

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Frontmatter holds the metadata keys the assistant is instructed to put in
// every generated file. The exporter treats file content as opaque; the
// preview surface uses this to show what the assistant knows about a
// document.
type Frontmatter struct {
	Type       string   `yaml:"type"`
	Status     string   `yaml:"status"`
	Topics     []string `yaml:"topics"`
	Confidence float64  `yaml:"confidence"`
	Summary    string   `yaml:"summary"`
}

// ParseFrontmatter extracts the YAML frontmatter block of a Markdown
// document, if any. Content without a leading frontmatter block, or with one
// that does not parse, yields ok=false; frontmatter is always optional.
func ParseFrontmatter(content string) (Frontmatter, bool) {
	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return Frontmatter{}, false
	}
	rest := content[len(frontmatterDelimiter):]
	idx := strings.Index(rest, "\n"+frontmatterDelimiter)
	if idx == -1 {
		return Frontmatter{}, false
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(rest[:idx]), &fm); err != nil {
		return Frontmatter{}, false
	}
	return fm, true
}
