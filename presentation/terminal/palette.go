// ABOUTME: Light and dark colour palettes for the terminal reader
// ABOUTME: The stored theme preference selects which palette styles the cards

package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"newsfeed-api/core/settings"
)

// Palette is the set of colours one theme uses
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Badge   lipgloss.Color
	Error   lipgloss.Color
	Surface lipgloss.Color
}

var (
	// LightPalette mirrors a white page with blue accents
	LightPalette = Palette{
		Text:    lipgloss.Color("#1F2937"),
		Muted:   lipgloss.Color("#4B5563"),
		Accent:  lipgloss.Color("#2563EB"),
		Border:  lipgloss.Color("#E5E7EB"),
		Badge:   lipgloss.Color("#DBEAFE"),
		Error:   lipgloss.Color("#991B1B"),
		Surface: lipgloss.Color("#FFFFFF"),
	}

	// DarkPalette mirrors a gray-800 page
	DarkPalette = Palette{
		Text:    lipgloss.Color("#F3F4F6"),
		Muted:   lipgloss.Color("#D1D5DB"),
		Accent:  lipgloss.Color("#60A5FA"),
		Border:  lipgloss.Color("#374151"),
		Badge:   lipgloss.Color("#1E3A8A"),
		Error:   lipgloss.Color("#FCA5A5"),
		Surface: lipgloss.Color("#1F2937"),
	}
)

// PaletteFor returns the palette for a theme
func PaletteFor(theme settings.Theme) Palette {
	if theme.IsDark() {
		return DarkPalette
	}
	return LightPalette
}
