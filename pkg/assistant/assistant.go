// Package assistant defines the boundary to the external AI assistant
// service: the request/response contract, the shared prompt, and response
// decoding. Concrete providers live in the gemini and openai subpackages.
//
// The assistant is an opaque collaborator. It receives the full ordered chat
// history plus a summary of the current project context and must return a
// single structured document carrying the complete replacement state of the
// project. Providers either return that document or fail; they do not retry.
package assistant

import (
	"context"
	"errors"

	"github.com/entrhq/architect/pkg/types"
)

// ErrNoAPIKey indicates the provider has no credentials configured. It is a
// turn-local configuration error, reported to the user as a chat message.
var ErrNoAPIKey = errors.New("assistant: API key not configured")

// Request carries everything the assistant needs for one turn.
type Request struct {
	// History is the full ordered message log; only role and content cross
	// the boundary.
	History []types.Message

	// NodeLabels and Filenames summarize the current project context so the
	// assistant can return a consistent full snapshot.
	NodeLabels []string
	Filenames  []string

	// Model is the assistant model identifier selected by the user.
	Model string
}

// Response is the structured document the assistant returns: a conversational
// message plus the complete replacement state of the project.
type Response struct {
	AssistantMessage string               `json:"assistant_message"`
	ProjectTitle     string               `json:"project_title"`
	Nodes            []types.WorkflowNode `json:"nodes"`
	Edges            []types.WorkflowEdge `json:"edges"`
	Files            []types.ProjectFile  `json:"files"`
}

// Provider is implemented by each assistant backend.
type Provider interface {
	// GenerateProject runs one request/response cycle against the assistant.
	// A returned error means the turn failed; the session state must be left
	// untouched by the caller.
	GenerateProject(ctx context.Context, req Request) (*Response, error)
}

// ContextFor extracts the node labels and filenames of a session for a Request.
func ContextFor(sess types.ChatSession) (nodeLabels, filenames []string) {
	nodeLabels = make([]string, 0, len(sess.Nodes))
	for _, n := range sess.Nodes {
		nodeLabels = append(nodeLabels, n.Label)
	}
	filenames = make([]string, 0, len(sess.Files))
	for _, f := range sess.Files {
		filenames = append(filenames, f.Filename)
	}
	return nodeLabels, filenames
}
