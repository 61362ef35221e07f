// Package ui renders the engagement dashboard and the creative studio with
// lipgloss. Dark mode follows the dashboard's navy palette; light mode keeps
// the same accents on a white card.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"engagedash/internal/dashboard"
)

// Palette
var (
	DarkBackground    = lipgloss.Color("#0b1220")
	DarkBackgroundAlt = lipgloss.Color("#11192d")
	DarkForeground    = lipgloss.Color("#e2e8f0")
	DarkMuted         = lipgloss.Color("#cbd5e1")

	LightBackground    = lipgloss.Color("#ffffff")
	LightBackgroundAlt = lipgloss.Color("#f1f5f9")
	LightForeground    = lipgloss.Color("#0f172a")
	LightMuted         = lipgloss.Color("#475569")

	Cyan   = lipgloss.Color("#38bdf8")
	Purple = lipgloss.Color("#a78bfa")
	Green  = lipgloss.Color("#22c55e")
	Amber  = lipgloss.Color("#f59e0b")

	Warning = lipgloss.Color("#eab308")
	Danger  = lipgloss.Color("#ef4444")
	Magenta = lipgloss.Color("#e879f9")
)

// Theme holds the current color scheme
type Theme struct {
	Background    lipgloss.Color
	BackgroundAlt lipgloss.Color
	Foreground    lipgloss.Color
	Muted         lipgloss.Color
	IsDark        bool
}

// DarkTheme returns the navy dashboard theme
func DarkTheme() Theme {
	return Theme{
		Background:    DarkBackground,
		BackgroundAlt: DarkBackgroundAlt,
		Foreground:    DarkForeground,
		Muted:         DarkMuted,
		IsDark:        true,
	}
}

// LightTheme returns the light theme
func LightTheme() Theme {
	return Theme{
		Background:    LightBackground,
		BackgroundAlt: LightBackgroundAlt,
		Foreground:    LightForeground,
		Muted:         LightMuted,
		IsDark:        false,
	}
}

// ThemeFor resolves a configured theme name. "auto" (or anything else)
// falls through to DetectTheme.
func ThemeFor(name string) Theme {
	switch strings.ToLower(name) {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme inspects COLORFGBG and ENGAGE_DARK_MODE. The dashboard was
// designed dark, so dark is the fallback.
func DetectTheme() Theme {
	if v := os.Getenv("ENGAGE_DARK_MODE"); v != "" {
		if v == "0" || strings.EqualFold(v, "false") {
			return LightTheme()
		}
		return DarkTheme()
	}

	// Format is usually "foreground;background"
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if bgIdx, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
			return LightTheme()
		}
	}

	return DarkTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Header    lipgloss.Style
	Subheader lipgloss.Style
	Panel     lipgloss.Style

	Title     lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	TableHead lipgloss.Style
	RowEven   lipgloss.Style
	RowOdd    lipgloss.Style
	Prompt    lipgloss.Style
	Success   lipgloss.Style
	Divider   lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Subheader: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		TableHead: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		RowEven: lipgloss.NewStyle().
			Foreground(theme.Muted),

		RowOdd: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.BackgroundAlt),

		Prompt: lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Green),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// StatusColor maps a status class to its color.
func StatusColor(class dashboard.StatusClass) lipgloss.Color {
	switch class {
	case dashboard.Positive:
		return Green
	case dashboard.Caution:
		return Warning
	case dashboard.Negative:
		return Danger
	case dashboard.Informational:
		return Magenta
	default:
		return DarkForeground
	}
}

// Status renders a status word title-cased in its class color.
func (s Styles) Status(status string) string {
	color := StatusColor(dashboard.ClassOf(status))
	if color == DarkForeground {
		color = s.Theme.Foreground
	}
	return lipgloss.NewStyle().Foreground(color).Render(dashboard.Title(status))
}

// PanelWith returns the panel style with a custom border color.
func (s Styles) PanelWith(border lipgloss.Color) lipgloss.Style {
	return s.Panel.BorderForeground(border)
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
