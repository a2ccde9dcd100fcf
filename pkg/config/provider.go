package config

import (
	"fmt"

	"github.com/entrhq/architect/pkg/assistant"
	"github.com/entrhq/architect/pkg/assistant/gemini"
	"github.com/entrhq/architect/pkg/assistant/openai"
)

// BuildProvider creates the assistant provider for resolved LLM settings.
func BuildProvider(llm LLM) (assistant.Provider, error) {
	switch llm.Provider {
	case ProviderGemini, "":
		var opts []gemini.ProviderOption
		if llm.Model != "" {
			opts = append(opts, gemini.WithModel(llm.Model))
		}
		provider, err := gemini.NewProvider(llm.APIKey, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini provider: %w", err)
		}
		return provider, nil
	case ProviderOpenAI:
		var opts []openai.ProviderOption
		if llm.Model != "" {
			opts = append(opts, openai.WithModel(llm.Model))
		}
		if llm.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(llm.BaseURL))
		}
		provider, err := openai.NewProvider(llm.APIKey, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unknown provider %q (expected %q or %q)", llm.Provider, ProviderGemini, ProviderOpenAI)
	}
}
