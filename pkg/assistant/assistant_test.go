package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/architect/pkg/types"
)

func TestDecodeResponse(t *testing.T) {
	valid := `{
		"assistant_message": "Here is your workflow.",
		"project_title": "Bakery Launch",
		"nodes": [{"id": "n1", "label": "Menu", "type": "concept", "description": "d", "x": 10, "y": -20}],
		"edges": [{"id": "e1", "source": "n1", "target": "n2", "label": "feeds"}],
		"files": [{"filename": "menu", "title": "Menu Plan", "content": "# Menu", "type": "summary"}]
	}`

	t.Run("valid document", func(t *testing.T) {
		resp, err := DecodeResponse(valid)
		require.NoError(t, err)
		assert.Equal(t, "Here is your workflow.", resp.AssistantMessage)
		assert.Equal(t, "Bakery Launch", resp.ProjectTitle)
		require.Len(t, resp.Nodes, 1)
		assert.Equal(t, types.NodeConcept, resp.Nodes[0].Type)
		assert.Equal(t, float64(-20), resp.Nodes[0].Y)
		require.Len(t, resp.Edges, 1)
		assert.Equal(t, "feeds", resp.Edges[0].Label)
		require.Len(t, resp.Files, 1)
	})

	t.Run("code-fenced document", func(t *testing.T) {
		fenced := "```json\n" + valid + "\n```"
		resp, err := DecodeResponse(fenced)
		require.NoError(t, err)
		assert.Equal(t, "Bakery Launch", resp.ProjectTitle)
	})

	t.Run("absent arrays become empty", func(t *testing.T) {
		resp, err := DecodeResponse(`{"assistant_message": "ok", "project_title": ""}`)
		require.NoError(t, err)
		assert.NotNil(t, resp.Nodes)
		assert.NotNil(t, resp.Edges)
		assert.NotNil(t, resp.Files)
		assert.Empty(t, resp.Nodes)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := DecodeResponse("{not json")
		assert.Error(t, err)
	})

	t.Run("empty response", func(t *testing.T) {
		_, err := DecodeResponse("   ")
		assert.Error(t, err)
	})

	t.Run("missing assistant_message", func(t *testing.T) {
		_, err := DecodeResponse(`{"project_title": "x"}`)
		assert.Error(t, err)
	})
}

func TestContextMessage(t *testing.T) {
	msg := ContextMessage([]string{"Auth Flow", "Billing"}, []string{"auth.md"})
	assert.Contains(t, msg, `Current Graph State: ["Auth Flow","Billing"]`)
	assert.Contains(t, msg, `Current Files: ["auth.md"]`)
	assert.Contains(t, msg, "Update the project based on the user's latest input.")

	empty := ContextMessage(nil, nil)
	assert.Contains(t, empty, "Current Graph State: []")
	assert.Contains(t, empty, "Current Files: []")
}

func TestContextFor(t *testing.T) {
	sess := types.ChatSession{
		Nodes: []types.WorkflowNode{{Label: "A"}, {Label: "B"}},
		Files: []types.ProjectFile{{Filename: "a.md"}},
	}
	labels, files := ContextFor(sess)
	assert.Equal(t, []string{"A", "B"}, labels)
	assert.Equal(t, []string{"a.md"}, files)
}

func TestTrimHistory(t *testing.T) {
	msg := func(content string) types.Message {
		return types.Message{Role: types.RoleUser, Content: content}
	}

	t.Run("under budget untouched", func(t *testing.T) {
		history := []types.Message{msg("a"), msg("b")}
		assert.Len(t, TrimHistory(history, 100), 2)
	})

	t.Run("drops oldest first", func(t *testing.T) {
		history := []types.Message{msg(strings.Repeat("x", 50)), msg("recent"), msg("latest")}
		trimmed := TrimHistory(history, 20)
		require.Len(t, trimmed, 2)
		assert.Equal(t, "recent", trimmed[0].Content)
		assert.Equal(t, "latest", trimmed[1].Content)
	})

	t.Run("always keeps the latest message", func(t *testing.T) {
		history := []types.Message{msg(strings.Repeat("x", 500))}
		trimmed := TrimHistory(history, 10)
		require.Len(t, trimmed, 1)
	})

	t.Run("empty history", func(t *testing.T) {
		assert.Empty(t, TrimHistory(nil, 10))
	})
}
