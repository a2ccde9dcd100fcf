package config

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed models.yaml
var modelCatalogYAML []byte

// ModelInfo describes one entry of the built-in model catalog.
type ModelInfo struct {
	ID          string `yaml:"id"`
	Provider    string `yaml:"provider"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Default     bool   `yaml:"default"`
}

var (
	catalogOnce sync.Once
	catalog     []ModelInfo
	catalogErr  error
)

func loadCatalog() ([]ModelInfo, error) {
	catalogOnce.Do(func() {
		var doc struct {
			Models []ModelInfo `yaml:"models"`
		}
		if err := yaml.Unmarshal(modelCatalogYAML, &doc); err != nil {
			catalogErr = fmt.Errorf("failed to parse model catalog: %w", err)
			return
		}
		catalog = doc.Models
	})
	return catalog, catalogErr
}

// Models returns the built-in model catalog.
func Models() []ModelInfo {
	models, _ := loadCatalog()
	return models
}

// ModelByID looks up a catalog entry by model identifier.
func ModelByID(id string) (ModelInfo, bool) {
	for _, m := range Models() {
		if m.ID == id {
			return m, true
		}
	}
	return ModelInfo{}, false
}

// ProviderForModel maps a model identifier to its provider. Unknown models
// are routed by prefix so user-supplied model IDs outside the catalog still
// reach a sensible backend.
func ProviderForModel(id string) string {
	if m, ok := ModelByID(id); ok {
		return m.Provider
	}
	if strings.HasPrefix(id, "gemini") || strings.HasPrefix(id, "gemma") {
		return ProviderGemini
	}
	return ProviderOpenAI
}

// DefaultModelFor returns the default catalog model of the given provider,
// falling back to the first entry when none is flagged.
func DefaultModelFor(provider string) string {
	first := ""
	for _, m := range Models() {
		if m.Provider != provider {
			continue
		}
		if m.Default {
			return m.ID
		}
		if first == "" {
			first = m.ID
		}
	}
	return first
}
