package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/entrhq/architect/pkg/assistant"
	"github.com/entrhq/architect/pkg/types"
)

func TestNewProviderRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := NewProvider("")
	assert.ErrorIs(t, err, assistant.ErrNoAPIKey)
}

func TestBuildContents(t *testing.T) {
	history := []types.Message{
		{Role: types.RoleAssistant, Content: "greeting"},
		{Role: types.RoleUser, Content: "build me a bakery site"},
	}

	contents := buildContents(history, "context summary")
	require.Len(t, contents, 3)

	assert.Equal(t, genai.RoleModel, contents[0].Role)
	assert.Equal(t, "greeting", contents[0].Parts[0].Text)
	assert.Equal(t, genai.RoleUser, contents[1].Role)

	// The project context rides along as a trailing user message.
	last := contents[2]
	assert.Equal(t, genai.RoleUser, last.Role)
	assert.Equal(t, "context summary", last.Parts[0].Text)
}

func TestResponseText(t *testing.T) {
	t.Run("concatenates text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: `{"a":`}, {Text: `1}`}},
				},
			}},
		}
		text, err := responseText(resp)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, text)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := responseText(&genai.GenerateContentResponse{})
		assert.Error(t, err)
	})

	t.Run("nil response", func(t *testing.T) {
		_, err := responseText(nil)
		assert.Error(t, err)
	})
}

func TestResponseSchemaShape(t *testing.T) {
	require.Equal(t, genai.TypeObject, responseSchema.Type)
	assert.ElementsMatch(t,
		[]string{"assistant_message", "nodes", "edges", "files", "project_title"},
		responseSchema.Required)

	nodeItem := responseSchema.Properties["nodes"].Items
	assert.Equal(t, []string{"concept", "task", "question", "output"}, nodeItem.Properties["type"].Enum)
	assert.ElementsMatch(t, []string{"id", "label", "type", "x", "y"}, nodeItem.Required)

	fileItem := responseSchema.Properties["files"].Items
	assert.Equal(t, []string{"summary", "detail", "faq", "config"}, fileItem.Properties["type"].Enum)
}
