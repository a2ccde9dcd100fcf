// Package i18n provides the small user-facing message catalog for Architect.
// English and Portuguese are supported; the language is picked once from the
// process locale environment.
package i18n

import (
	"os"
	"strings"
)

// Lang is a supported interface language.
type Lang string

const (
	English    Lang = "en"
	Portuguese Lang = "pt"
)

var catalog = map[Lang]map[string]string{
	English: {
		"newProject":            "New Project",
		"newWorkflow":           "New Workflow",
		"assistantGreeting":     "Hello! I am your AI Architect. Tell me about your project idea, and I will help you brainstorm a workflow and structure it for Obsidian.",
		"exportVault":           "Export Obsidian Vault",
		"thinking":              "Architecting workflow...",
		"placeholder":           "Describe your project or attach a file...",
		"attachedFiles":         "Attached Files",
		"file":                  "File",
		"content":               "Content",
		"rename":                "New title:",
		"error":                 "Sorry, I encountered an error. Please try again.",
		"unsupportedAttachment": "[unsupported attachment omitted]",
	},
	Portuguese: {
		"newProject":            "Novo Projeto",
		"newWorkflow":           "Novo Workflow",
		"assistantGreeting":     "Olá! Sou seu Arquiteto de IA. Me conte sua ideia e eu ajudarei a criar um workflow para o Obsidian.",
		"exportVault":           "Exportar Vault Obsidian",
		"thinking":              "Arquitetando workflow...",
		"placeholder":           "Descreva seu projeto ou anexe um arquivo...",
		"attachedFiles":         "Arquivos Anexados",
		"file":                  "Arquivo",
		"content":               "Conteúdo",
		"rename":                "Novo título:",
		"error":                 "Desculpe, encontrei um erro. Tente novamente.",
		"unsupportedAttachment": "[anexo não suportado omitido]",
	},
}

// Language returns the interface language derived from the locale environment
// (LC_ALL, then LANG). Anything that is not Portuguese falls back to English.
func Language() Lang {
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	if strings.HasPrefix(strings.ToLower(locale), "pt") {
		return Portuguese
	}
	return English
}

// T looks up key in the active language catalog. Unknown keys are returned
// verbatim so a missing translation is visible rather than silent.
func T(key string) string {
	return For(Language(), key)
}

// For looks up key in the catalog for an explicit language.
func For(lang Lang, key string) string {
	msgs, ok := catalog[lang]
	if !ok {
		msgs = catalog[English]
	}
	if msg, ok := msgs[key]; ok {
		return msg
	}
	return key
}
