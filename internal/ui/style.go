package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Renderer is the lipgloss renderer used for prompts.
//
// Prompts are printed to stderr,
// so that's what we check for colorization.
var Renderer = lipgloss.NewRenderer(os.Stderr)

// NewStyle returns a new lipgloss style based on our default renderer.
func NewStyle() lipgloss.Style {
	return Renderer.NewStyle()
}

// Colors shared by the prompt fields.
var (
	Red     = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	Green   = lipgloss.AdaptiveColor{Light: "2", Dark: "10"}
	Magenta = lipgloss.AdaptiveColor{Light: "5", Dark: "13"}
	Gray    = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
)

var (
	_titleStyle       = NewStyle().Foreground(Green).Bold(true)
	_descriptionStyle = NewStyle().Foreground(Gray).Faint(true)
)
