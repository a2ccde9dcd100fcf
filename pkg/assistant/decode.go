package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/entrhq/architect/pkg/types"
)

// DecodeResponse parses the assistant's raw text into a Response. Some models
// wrap JSON output in a Markdown code fence even when asked for a bare
// document, so fences are stripped before decoding. A document without an
// assistant_message is rejected as schema-violating.
func DecodeResponse(raw string) (*Response, error) {
	text := stripCodeFence(strings.TrimSpace(raw))
	if text == "" {
		return nil, fmt.Errorf("assistant: empty response")
	}

	var resp Response
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, fmt.Errorf("assistant: malformed response: %w", err)
	}
	if resp.AssistantMessage == "" {
		return nil, fmt.Errorf("assistant: response is missing assistant_message")
	}

	// Absent arrays decode as nil; normalize so a turn always replaces state
	// with concrete (possibly empty) sets.
	if resp.Nodes == nil {
		resp.Nodes = []types.WorkflowNode{}
	}
	if resp.Edges == nil {
		resp.Edges = []types.WorkflowEdge{}
	}
	if resp.Files == nil {
		resp.Files = []types.ProjectFile{}
	}
	return &resp, nil
}

// stripCodeFence removes a surrounding ```json ... ``` (or bare ```) fence.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	rest := strings.TrimPrefix(text, "```")
	if idx := strings.Index(rest, "\n"); idx >= 0 {
		rest = rest[idx+1:] // drop the language tag line
	}
	if idx := strings.LastIndex(rest, "```"); idx >= 0 {
		rest = rest[:idx]
	}
	return strings.TrimSpace(rest)
}
