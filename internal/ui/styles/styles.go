// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // Verbose output, hints

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#D4A017", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Diff colors
	DiffAddedColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	DiffRemovedColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
)

// Status markers printed before each console line.
const (
	IconSuccess = "✓"
	IconWarning = "!"
	IconError   = "✗"
)

var (
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusSuccessColor)
	WarningStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusWarningColor)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(StatusErrorColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(TextMutedColor)
	TextStyle    = lipgloss.NewStyle().Foreground(TextPrimaryColor)

	DiffAddedStyle   = lipgloss.NewStyle().Foreground(DiffAddedColor)
	DiffRemovedStyle = lipgloss.NewStyle().Foreground(DiffRemovedColor)
	DiffHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(TextMutedColor)
)

// DisableColor makes every style render plain text.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
