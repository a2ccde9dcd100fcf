// Package openai implements the assistant provider for OpenAI-compatible
// chat-completion APIs. It sends a single non-streaming request in JSON mode
// and decodes the structured project document from the first choice.
//
// The raw HTTP request path (rather than the SDK's client) keeps
// compatibility with the many OpenAI-compatible servers that deviate
// slightly from the official API; the SDK is still used for its typed
// message parameters.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/openai/openai-go"

	"github.com/entrhq/architect/pkg/assistant"
	"github.com/entrhq/architect/pkg/types"
)

// DefaultBaseURL is the default OpenAI API base URL.
const DefaultBaseURL = "https://api.openai.com/v1"

// DefaultModel is used when a request does not select a model.
const DefaultModel = "gpt-4o"

// Provider implements assistant.Provider for OpenAI-compatible APIs.
type Provider struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithModel sets the default model for requests that do not select one.
func WithModel(model string) ProviderOption {
	return func(p *Provider) {
		p.model = model
	}
}

// WithBaseURL points the provider at a custom OpenAI-compatible endpoint.
func WithBaseURL(baseURL string) ProviderOption {
	return func(p *Provider) {
		p.baseURL = baseURL
	}
}

// NewProvider creates a provider. An empty apiKey falls back to the
// OPENAI_API_KEY environment variable; if neither is set,
// assistant.ErrNoAPIKey is returned. OPENAI_BASE_URL overrides the default
// endpoint unless WithBaseURL was given.
func NewProvider(apiKey string, opts ...ProviderOption) (*Provider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, assistant.ErrNoAPIKey
	}

	p := &Provider{
		httpClient: &http.Client{},
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		model:      DefaultModel,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.baseURL == DefaultBaseURL {
		if envBaseURL := os.Getenv("OPENAI_BASE_URL"); envBaseURL != "" {
			p.baseURL = envBaseURL
		}
	}
	return p, nil
}

// GenerateProject sends the history and context summary as one JSON-mode chat
// completion and decodes the structured project document.
func (p *Provider) GenerateProject(ctx context.Context, req assistant.Request) (*assistant.Response, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	history := assistant.TrimHistory(req.History, assistant.DefaultHistoryBudget)
	messages := buildMessages(history, assistant.ContextMessage(req.NodeLabels, req.Filenames))

	reqBody := map[string]interface{}{
		"model":           model,
		"messages":        messages,
		"response_format": map[string]string{"type": "json_object"},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("completion has no choices")
	}

	return assistant.DecodeResponse(completion.Choices[0].Message.Content)
}

// buildMessages converts the chat history to OpenAI message params, with the
// system instruction first and the project context as a trailing user message.
func buildMessages(history []types.Message, contextMessage string) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(assistant.SystemInstruction))
	for _, m := range history {
		switch m.Role {
		case types.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(contextMessage))
	return messages
}
