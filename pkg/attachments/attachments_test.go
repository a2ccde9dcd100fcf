package attachments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(nil)
	require.NoError(t, err)
	return r
}

func TestNewRendererRejectsInvalidPattern(t *testing.T) {
	_, err := NewRenderer([]string{"[unclosed"})
	assert.Error(t, err)
}

func TestAllowed(t *testing.T) {
	r := newDefaultRenderer(t)

	assert.True(t, r.Allowed("notes.md"))
	assert.True(t, r.Allowed("READ ME.TXT"), "matching is case-insensitive")
	assert.True(t, r.Allowed("page.html"))
	assert.False(t, r.Allowed("binary.exe"))
	assert.False(t, r.Allowed("image.png"))
}

func TestRenderNoAttachments(t *testing.T) {
	r := newDefaultRenderer(t)
	assert.Equal(t, "hello", r.Render("hello", nil))
}

func TestRenderAppendix(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")
	r := newDefaultRenderer(t)

	got := r.Render("plan this", []Attachment{
		{Name: "a.md", Content: []byte("# A")},
		{Name: "b.txt", Content: []byte("raw text")},
	})

	assert.Equal(t, "plan this\n\n---\nAttached Files:\nFile: a.md\nContent:\n# A\n\nFile: b.txt\nContent:\nraw text", got)
}

func TestRenderDisallowedAttachmentIsOmitted(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")
	r := newDefaultRenderer(t)

	got := r.Render("x", []Attachment{{Name: "virus.exe", Content: []byte{0x4d, 0x5a}}})
	assert.Contains(t, got, "File: virus.exe")
	assert.Contains(t, got, "[unsupported attachment omitted]")
	assert.NotContains(t, got, "MZ")
}

func TestRenderHTMLReducedToText(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")
	r := newDefaultRenderer(t)

	page := `<html><head><title>t</title><style>p{color:red}</style></head>` +
		`<body><script>alert(1)</script><h1>Heading</h1><p>Body text</p></body></html>`
	got := r.Render("x", []Attachment{{Name: "page.html", Content: []byte(page)}})

	assert.Contains(t, got, "Heading")
	assert.Contains(t, got, "Body text")
	assert.NotContains(t, got, "alert(1)")
	assert.NotContains(t, got, "color:red")
}

func TestHTMLToText(t *testing.T) {
	text, err := htmlToText("<div><p>one</p><p>two</p></div>")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", text)
}
