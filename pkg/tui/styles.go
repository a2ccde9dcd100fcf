package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// This is the single source of truth for all TUI colors.
// Use these constants throughout the TUI to ensure visual consistency.
var (
	salmonPink  = lipgloss.Color("#FFB3BA") // Soft pastel salmon pink - primary accent
	coralPink   = lipgloss.Color("#FFCCCB") // Lighter coral accent - secondary
	mintGreen   = lipgloss.Color("#A8E6CF") // Soft mint green - success states
	mutedGray   = lipgloss.Color("#6B7280") // Muted gray - secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // Bright white - primary text
)

// Common Styles
// Pre-configured styles for the main UI elements.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	userStyle = lipgloss.NewStyle().
			Foreground(coralPink).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(salmonPink)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedGray).
			Padding(0, 1)

	sidebarTitleStyle = lipgloss.NewStyle().
				Foreground(salmonPink).
				Bold(true)

	sessionStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	currentSessionStyle = lipgloss.NewStyle().
				Foreground(brightWhite).
				Bold(true)

	toastStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Padding(0, 2)

	toastErrorStyle = errorStyle.Padding(0, 2)

	loadingStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Padding(0, 2)

	promptLabelStyle = lipgloss.NewStyle().
				Foreground(mintGreen).
				Bold(true)
)
