// Package theme defines color themes for the spendview TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // main app background
	Surface       lipgloss.Color // card/panel backgrounds
	SurfaceBright lipgloss.Color // highlighted surface (selected card)
	Border        lipgloss.Color // subtle borders
	BorderAccent  lipgloss.Color // accent-colored borders for focus states
	TextDim       lipgloss.Color // lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // primary content text
	Accent        lipgloss.Color // primary accent
	AccentBright  lipgloss.Color // brighter accent for emphasis
	Green         lipgloss.Color // spend tier: normal
	Orange        lipgloss.Color // spend tier: warning
	Red           lipgloss.Color // spend tier: danger
	Yellow        lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Green:         lipgloss.Color("#879A39"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Yellow:        lipgloss.Color("#D0A215"),
	Cyan:          lipgloss.Color("#24837B"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#313244"),
	SurfaceBright: lipgloss.Color("#585B70"),
	Border:        lipgloss.Color("#585B70"),
	BorderAccent:  lipgloss.Color("#89B4FA"),
	TextDim:       lipgloss.Color("#6C7086"),
	TextMuted:     lipgloss.Color("#A6ADC8"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	Accent:        lipgloss.Color("#89B4FA"),
	AccentBright:  lipgloss.Color("#B4D0FB"),
	Green:         lipgloss.Color("#A6E3A1"),
	Orange:        lipgloss.Color("#FAB387"),
	Red:           lipgloss.Color("#F38BA8"),
	Yellow:        lipgloss.Color("#F9E2AF"),
	Cyan:          lipgloss.Color("#94E2D5"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Green:         lipgloss.Color("2"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Yellow:        lipgloss.Color("3"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, Terminal}

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

// TierColor maps a spend percentage to its tier color: normal below 70,
// warning between 70 and 90, danger above 90.
func (t Theme) TierColor(pct int) lipgloss.Color {
	switch {
	case pct > 90:
		return t.Red
	case pct >= 70:
		return t.Orange
	default:
		return t.Green
	}
}
