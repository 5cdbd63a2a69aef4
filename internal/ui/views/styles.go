package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	DeckTitle      lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	Counter        lipgloss.Style
	Help           lipgloss.Style
	Control        lipgloss.Style
	ControlOff     lipgloss.Style
	MarkerWatched  lipgloss.Style
	MarkerPending  lipgloss.Style
	MarkerActive   lipgloss.Style
	PanelTitle     lipgloss.Style
	PanelMeta      lipgloss.Style
	PanelBody      lipgloss.Style
	PanelInactive  lipgloss.Style
	Playing        lipgloss.Style
	PausedPlayback lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		DeckTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:            lipgloss.NewStyle().Faint(true),
		Status:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Counter:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:           lipgloss.NewStyle().Faint(true),
		Control:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		ControlOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		MarkerWatched:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		MarkerPending:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		MarkerActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		PanelTitle:     lipgloss.NewStyle().Bold(true),
		PanelMeta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		PanelBody:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PanelInactive:  lipgloss.NewStyle().Faint(true),
		Playing:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		PausedPlayback: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// PanelColor returns the border color of a story, falling back to a
// palette entry picked by position.
func PanelColor(color string, index int) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	palette := []string{"99", "39", "78", "214", "203", "51"}
	return lipgloss.Color(palette[index%len(palette)])
}
