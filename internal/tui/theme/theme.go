// Package theme defines color themes for the costbook TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/costbook/internal/model"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Selected row
	Border       lipgloss.Color
	BorderAccent lipgloss.Color // Focused card, overlays
	TextDim      lipgloss.Color // Hints, axis labels
	TextMuted    lipgloss.Color // Labels, metadata
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color
	AccentBright lipgloss.Color
	Green        lipgloss.Color
	Red          lipgloss.Color
	Orange       lipgloss.Color
	Blue         lipgloss.Color
	SurplusRow   lipgloss.Color // Row tint for a positive profit/loss
	DeficitRow   lipgloss.Color // Row tint for zero or negative profit/loss
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Background:   lipgloss.Color("#100F0F"),
	Surface:      lipgloss.Color("#1C1B1A"),
	SurfaceHover: lipgloss.Color("#343331"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#3AA99F"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentBright: lipgloss.Color("#5BC8BE"),
	Green:        lipgloss.Color("#879A39"),
	Red:          lipgloss.Color("#D14D41"),
	Orange:       lipgloss.Color("#DA702C"),
	Blue:         lipgloss.Color("#4385BE"),
	SurplusRow:   lipgloss.Color("#A3B859"),
	DeficitRow:   lipgloss.Color("#E8705F"),
}

// Paper is a light theme close to the classic green/red row shading of
// spreadsheet-style cost sheets.
var Paper = Theme{
	Name:         "paper",
	Background:   lipgloss.Color("#F0F0F0"),
	Surface:      lipgloss.Color("#FFFFFF"),
	SurfaceHover: lipgloss.Color("#5A9BD3"),
	Border:       lipgloss.Color("#C8C8C8"),
	BorderAccent: lipgloss.Color("#5A9BD3"),
	TextDim:      lipgloss.Color("#9A9A9A"),
	TextMuted:    lipgloss.Color("#5F5F5F"),
	TextPrimary:  lipgloss.Color("#1A1A1A"),
	Accent:       lipgloss.Color("#2F6EA5"),
	AccentBright: lipgloss.Color("#5A9BD3"),
	Green:        lipgloss.Color("#2E7D32"),
	Red:          lipgloss.Color("#C62828"),
	Orange:       lipgloss.Color("#EF6C00"),
	Blue:         lipgloss.Color("#1565C0"),
	SurplusRow:   lipgloss.Color("#2E7D32"),
	DeficitRow:   lipgloss.Color("#C62828"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("6"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentBright: lipgloss.Color("14"),
	Green:        lipgloss.Color("2"),
	Red:          lipgloss.Color("1"),
	Orange:       lipgloss.Color("3"),
	Blue:         lipgloss.Color("4"),
	SurplusRow:   lipgloss.Color("10"),
	DeficitRow:   lipgloss.Color("9"),
}

// All available themes.
var All = []Theme{FlexokiDark, Paper, Terminal}

// Names lists theme names in All order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// StandingColor returns the row tint for a summary standing.
func (t Theme) StandingColor(s model.Standing) lipgloss.Color {
	if s == model.StandingSurplus {
		return t.SurplusRow
	}
	return t.DeficitRow
}
