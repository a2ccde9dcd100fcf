// Package gemini implements the assistant provider on the Google Gemini API
// using structured output: the response schema is enforced server-side so the
// model returns a single JSON document with the full project state.
package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/entrhq/architect/pkg/assistant"
	"github.com/entrhq/architect/pkg/types"
)

// DefaultModel is used when a request does not select a model.
const DefaultModel = "gemini-2.5-flash"

// Provider implements assistant.Provider against the Gemini API.
type Provider struct {
	client *genai.Client
	model  string
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithModel sets the default model for requests that do not select one.
func WithModel(model string) ProviderOption {
	return func(p *Provider) {
		p.model = model
	}
}

// NewProvider creates a Gemini provider. An empty apiKey falls back to the
// GEMINI_API_KEY environment variable; if neither is set the provider cannot
// be constructed and assistant.ErrNoAPIKey is returned.
func NewProvider(apiKey string, opts ...ProviderOption) (*Provider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, assistant.ErrNoAPIKey
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	p := &Provider{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// GenerateProject sends the history and context summary to Gemini and decodes
// the structured project document it returns. No retries: a failed call is a
// failed turn, reconciled by the caller.
func (p *Provider) GenerateProject(ctx context.Context, req assistant.Request) (*assistant.Response, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	history := assistant.TrimHistory(req.History, assistant.DefaultHistoryBudget)
	contents := buildContents(history, assistant.ContextMessage(req.NodeLabels, req.Filenames))

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: assistant.SystemInstruction}},
		},
	}

	resp, err := p.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return assistant.DecodeResponse(text)
}

// buildContents maps the chat history to Gemini contents (assistant turns use
// the "model" role) and appends the project context as a final user message.
func buildContents(history []types.Message, contextMessage string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		role := genai.RoleUser
		if m.Role == types.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: contextMessage}},
	})
	return contents
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini response has no candidates")
	}
	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}
	return text, nil
}
