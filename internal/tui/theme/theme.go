// Package theme defines color themes for the cotiza TUI editor.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name        string
	Background  lipgloss.Color // main app background
	Surface     lipgloss.Color // panel backgrounds
	Border      lipgloss.Color // subtle borders
	TextDim     lipgloss.Color // lowest contrast text (hints, disabled)
	TextMuted   lipgloss.Color // secondary text (labels, metadata)
	TextPrimary lipgloss.Color // primary content text
	Accent      lipgloss.Color // active states, headings
	Green       lipgloss.Color // money totals
	Orange      lipgloss.Color // warnings
	Red         lipgloss.Color // destructive hints
	Yellow      lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme, warm and paper-inspired.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Background:  lipgloss.Color("#100F0F"),
	Surface:     lipgloss.Color("#1C1B1A"),
	Border:      lipgloss.Color("#403E3C"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Green:       lipgloss.Color("#879A39"),
	Orange:      lipgloss.Color("#DA702C"),
	Red:         lipgloss.Color("#D14D41"),
	Yellow:      lipgloss.Color("#D0A215"),
}

// FlexokiLight is the light counterpart for bright terminals.
var FlexokiLight = Theme{
	Name:        "flexoki-light",
	Background:  lipgloss.Color("#FFFCF0"),
	Surface:     lipgloss.Color("#F2F0E5"),
	Border:      lipgloss.Color("#CECDC3"),
	TextDim:     lipgloss.Color("#B7B5AC"),
	TextMuted:   lipgloss.Color("#6F6E69"),
	TextPrimary: lipgloss.Color("#100F0F"),
	Accent:      lipgloss.Color("#24837B"),
	Green:       lipgloss.Color("#66800B"),
	Orange:      lipgloss.Color("#BC5215"),
	Red:         lipgloss.Color("#AF3029"),
	Yellow:      lipgloss.Color("#AD8301"),
}

// Terminal uses ANSI 16 colors only for maximum compatibility.
var Terminal = Theme{
	Name:        "terminal",
	Background:  lipgloss.Color("0"),
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("8"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Green:       lipgloss.Color("2"),
	Orange:      lipgloss.Color("3"),
	Red:         lipgloss.Color("1"),
	Yellow:      lipgloss.Color("11"),
}

// All lists the selectable themes.
var All = []Theme{FlexokiDark, FlexokiLight, Terminal}

// SetActive selects a theme by name, falling back to the default.
func SetActive(name string) {
	for _, t := range All {
		if t.Name == name {
			Active = t
			return
		}
	}
	Active = FlexokiDark
}
