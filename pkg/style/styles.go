// Package style centralizes the lipgloss styles used for terminal output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD75F"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#005FAF", Dark: "#5FAFFF"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)

// Base styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	HeadingStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Italic(true)
)
