package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/architect/pkg/assistant"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	store.SetSection("llm", map[string]interface{}{
		"provider": "openai",
		"model":    "gpt-4o-mini",
	})
	require.NoError(t, store.Save())

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)

	section := reloaded.GetSection("llm")
	assert.Equal(t, "openai", section["provider"])
	assert.Equal(t, "gpt-4o-mini", section["model"])
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Empty(t, store.GetSection(SectionIDLLM))
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestSetSectionCopiesData(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	data := map[string]interface{}{"model": "gpt-4o"}
	store.SetSection(SectionIDLLM, data)
	data["model"] = "mutated"

	assert.Equal(t, "gpt-4o", store.GetSection(SectionIDLLM)["model"])
}

func TestSaveAndLoadLLM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	saved := LLM{Provider: ProviderOpenAI, Model: "gpt-4o", BaseURL: "http://localhost:8080/v1", APIKey: "sk-test"}
	require.NoError(t, SaveLLM(store, saved))

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, saved, LoadLLM(reloaded))
}

func TestResolveLLMPrecedence(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")

	fromFile := LLM{Provider: ProviderOpenAI, Model: "gpt-4o-mini", BaseURL: "http://file/v1", APIKey: "file-key"}

	t.Run("cli wins", func(t *testing.T) {
		resolved := ResolveLLM(fromFile, ProviderGemini, "gemini-3-flash-preview", "http://cli/v1", "cli-key")
		assert.Equal(t, ProviderGemini, resolved.Provider)
		assert.Equal(t, "gemini-3-flash-preview", resolved.Model)
		assert.Equal(t, "http://cli/v1", resolved.BaseURL)
		assert.Equal(t, "cli-key", resolved.APIKey)
	})

	t.Run("env beats file", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "env-key")
		t.Setenv("OPENAI_BASE_URL", "http://env/v1")
		resolved := ResolveLLM(fromFile, "", "", "", "")
		assert.Equal(t, ProviderOpenAI, resolved.Provider)
		assert.Equal(t, "env-key", resolved.APIKey)
		assert.Equal(t, "http://env/v1", resolved.BaseURL)
	})

	t.Run("file fills gaps", func(t *testing.T) {
		resolved := ResolveLLM(fromFile, "", "", "", "")
		assert.Equal(t, "gpt-4o-mini", resolved.Model)
		assert.Equal(t, "http://file/v1", resolved.BaseURL)
		assert.Equal(t, "file-key", resolved.APIKey)
	})

	t.Run("model alone decides the provider", func(t *testing.T) {
		resolved := ResolveLLM(LLM{}, "", "gpt-4o-mini", "", "")
		assert.Equal(t, ProviderOpenAI, resolved.Provider)
		assert.Equal(t, "gpt-4o-mini", resolved.Model)

		resolved = ResolveLLM(LLM{Model: "gemini-3-flash-preview"}, "", "", "", "")
		assert.Equal(t, ProviderGemini, resolved.Provider)
	})

	t.Run("defaults when everything is empty", func(t *testing.T) {
		resolved := ResolveLLM(LLM{}, "", "", "", "")
		assert.Equal(t, ProviderGemini, resolved.Provider)
		assert.Equal(t, DefaultModelFor(ProviderGemini), resolved.Model)
		assert.Empty(t, resolved.APIKey)
	})
}

func TestModelCatalog(t *testing.T) {
	models := Models()
	require.NotEmpty(t, models)

	info, ok := ModelByID("gemini-2.5-flash")
	require.True(t, ok)
	assert.Equal(t, ProviderGemini, info.Provider)
	assert.True(t, info.Default)

	_, ok = ModelByID("not-a-model")
	assert.False(t, ok)

	assert.Equal(t, "gemini-2.5-flash", DefaultModelFor(ProviderGemini))
	assert.Equal(t, "gpt-4o", DefaultModelFor(ProviderOpenAI))
	assert.Empty(t, DefaultModelFor("unknown"))
}

func TestProviderForModel(t *testing.T) {
	assert.Equal(t, ProviderGemini, ProviderForModel("gemini-2.5-flash"))
	assert.Equal(t, ProviderOpenAI, ProviderForModel("gpt-4o-mini"))
	assert.Equal(t, ProviderGemini, ProviderForModel("gemini-9-ultra"))
	assert.Equal(t, ProviderOpenAI, ProviderForModel("llama-3-70b"))
}

func TestBuildProvider(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")

	t.Run("openai", func(t *testing.T) {
		provider, err := BuildProvider(LLM{Provider: ProviderOpenAI, Model: "gpt-4o", APIKey: "sk-test"})
		require.NoError(t, err)
		assert.NotNil(t, provider)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := BuildProvider(LLM{Provider: ProviderOpenAI})
		assert.ErrorIs(t, err, assistant.ErrNoAPIKey)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := BuildProvider(LLM{Provider: "anthropic", APIKey: "k"})
		assert.Error(t, err)
	})
}
