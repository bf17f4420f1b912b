package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/darktheme/internal/model"
)

// palette is the set of colors the page renders with for one theme.
type palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
}

var (
	darkPalette = palette{
		Background: lipgloss.Color("#1e1e2e"),
		Foreground: lipgloss.Color("#cdd6f4"),
		Accent:     lipgloss.Color("#cba6f7"),
		Muted:      lipgloss.Color("#6c7086"),
	}
	lightPalette = palette{
		Background: lipgloss.Color("#eff1f5"),
		Foreground: lipgloss.Color("#4c4f69"),
		Accent:     lipgloss.Color("#8839ef"),
		Muted:      lipgloss.Color("#9ca0b0"),
	}
)

// paletteFor returns the palette for the applied theme.
// With no theme applied the page keeps the terminal's default colors.
func paletteFor(theme model.Theme) (palette, bool) {
	switch theme {
	case model.ThemeDark:
		return darkPalette, true
	case model.ThemeLight:
		return lightPalette, true
	default:
		return palette{}, false
	}
}

// styles are derived from the applied theme on every render.
type styles struct {
	Page   lipgloss.Style
	Title  lipgloss.Style
	Button lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	s := styles{
		Page:   lipgloss.NewStyle().Padding(1, 2),
		Title:  lipgloss.NewStyle().Bold(true),
		Button: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2),
		Status: lipgloss.NewStyle().Faint(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	p, ok := paletteFor(theme)
	if !ok {
		return s
	}

	s.Page = s.Page.Background(p.Background).Foreground(p.Foreground)
	s.Title = s.Title.Foreground(p.Accent).Background(p.Background)
	s.Button = s.Button.BorderForeground(p.Accent).Foreground(p.Foreground).Background(p.Background)
	s.Status = s.Status.Foreground(p.Muted).Background(p.Background)
	return s
}
