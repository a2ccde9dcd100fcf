package config

import "os"

// SectionIDLLM is the identifier for the LLM settings section.
const SectionIDLLM = "llm"

// ProviderGemini and ProviderOpenAI name the supported assistant backends.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// LLM holds the assistant provider settings.
type LLM struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
}

// LoadLLM reads the llm section from the store.
func LoadLLM(store *FileStore) LLM {
	section := store.GetSection(SectionIDLLM)
	return LLM{
		Provider: stringValue(section, "provider"),
		Model:    stringValue(section, "model"),
		BaseURL:  stringValue(section, "base_url"),
		APIKey:   stringValue(section, "api_key"),
	}
}

// SaveLLM writes the llm section to the store and persists the file.
func SaveLLM(store *FileStore, llm LLM) error {
	store.SetSection(SectionIDLLM, map[string]interface{}{
		"provider": llm.Provider,
		"model":    llm.Model,
		"base_url": llm.BaseURL,
		"api_key":  llm.APIKey,
	})
	return store.Save()
}

// ResolveLLM merges settings by precedence: CLI flags > environment >
// config file > defaults. Empty CLI values mean "not provided". When no
// provider was named anywhere but a model was, the model decides the
// provider.
func ResolveLLM(fromFile LLM, cliProvider, cliModel, cliBaseURL, cliAPIKey string) LLM {
	resolved := LLM{
		Provider: firstNonEmpty(cliProvider, fromFile.Provider),
		Model:    firstNonEmpty(cliModel, fromFile.Model),
		BaseURL:  firstNonEmpty(cliBaseURL, os.Getenv("OPENAI_BASE_URL"), fromFile.BaseURL),
		APIKey:   cliAPIKey,
	}
	if resolved.Provider == "" {
		if resolved.Model != "" {
			resolved.Provider = ProviderForModel(resolved.Model)
		} else {
			resolved.Provider = ProviderGemini
		}
	}
	if resolved.APIKey == "" {
		switch resolved.Provider {
		case ProviderOpenAI:
			resolved.APIKey = os.Getenv("OPENAI_API_KEY")
		default:
			resolved.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if resolved.APIKey == "" {
		resolved.APIKey = fromFile.APIKey
	}
	if resolved.Model == "" {
		resolved.Model = DefaultModelFor(resolved.Provider)
	}
	return resolved
}

func stringValue(section map[string]interface{}, key string) string {
	if v, ok := section[key].(string); ok {
		return v
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
