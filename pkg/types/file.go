package types

// FileType classifies a project file within the knowledge base.
type FileType string

const (
	FileSummary FileType = "summary"
	FileDetail  FileType = "detail"
	FileFAQ     FileType = "faq"
	FileConfig  FileType = "config"
)

// Valid reports whether t is one of the four known file types.
func (t FileType) Valid() bool {
	switch t {
	case FileSummary, FileDetail, FileFAQ, FileConfig:
		return true
	}
	return false
}

// ProjectFile is one Markdown document of a session's knowledge base.
// Filename is a logical name and is not guaranteed to carry a ".md" suffix;
// Content is opaque Markdown (frontmatter included) and is never rewritten.
type ProjectFile struct {
	Filename string   `json:"filename"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Type     FileType `json:"type"`
}
