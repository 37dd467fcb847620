package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors used for rasterized frames, SVG export and the TUI.
type Theme struct {
	Name   string
	Alive  lipgloss.Color
	Dead   lipgloss.Color
	Grid   lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Alive:  lipgloss.Color("#ff00ff"),
		Dead:   lipgloss.Color("#0a0a0a"),
		Grid:   lipgloss.Color("#1f1f2e"),
		Accent: lipgloss.Color("#00ffff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Alive:  lipgloss.Color("#00ff00"), // Green phosphor
		Dead:   lipgloss.Color("#001100"),
		Grid:   lipgloss.Color("#002200"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Alive:  lipgloss.Color("#ffffff"),
		Dead:   lipgloss.Color("#000000"),
		Grid:   lipgloss.Color("#222222"),
		Accent: lipgloss.Color("#0088ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Alive:  lipgloss.Color("#00a8cc"),
		Dead:   lipgloss.Color("#001a33"),
		Grid:   lipgloss.Color("#0a2a44"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Alive:  lipgloss.Color("#feca57"),
		Dead:   lipgloss.Color("#2d1b2e"),
		Grid:   lipgloss.Color("#3d2b3e"),
		Accent: lipgloss.Color("#ff9ff3"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	// Default theme
	DefaultTheme = ThemeMinimal

	// All available themes
	Themes = []Theme{
		ThemeMinimal,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to DefaultTheme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return DefaultTheme
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name in Themes, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return DefaultTheme
}
