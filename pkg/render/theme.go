package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Pass string
	Fail string
	Warn string
	Info string
}

var unicodeIcons = ThemeIcons{Pass: "✓", Fail: "✗", Warn: "⚠", Info: "●"}

// palette holds ANSI 256 color codes; empty means no color.
type palette struct {
	success, warning, errorC, muted string
}

func newTheme(name string, p palette, icons ThemeIcons) Theme {
	color := func(c string) lipgloss.Style {
		if c == "" {
			return lipgloss.NewStyle()
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Theme{
		Name:    name,
		Header:  lipgloss.NewStyle().Bold(true),
		Success: color(p.success),
		Warning: color(p.warning),
		Error:   color(p.errorC),
		Muted:   color(p.muted),
		Icons:   icons,
	}
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return newTheme("default", palette{success: "34", warning: "214", errorC: "196", muted: "242"}, unicodeIcons)
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	icons := unicodeIcons
	icons.Warn = "!"
	return newTheme("orca", palette{success: "108", warning: "179", errorC: "167", muted: "245"}, icons)
}

// MonoTheme returns a monochrome ASCII theme for dumb terminals and CI logs.
func MonoTheme() Theme {
	return newTheme("mono", palette{}, ThemeIcons{Pass: "+", Fail: "x", Warn: "!", Info: "*"})
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
