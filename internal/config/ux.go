package config

import "fmt"

// Themes accepted by ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	// Theme is auto, dark or light. Auto inspects COLORFGBG.
	Theme string `json:"theme" yaml:"theme"`

	// Width is the dashboard width in cells (0 = detect, fallback 140)
	Width int `json:"width,omitempty" yaml:"width,omitempty"`

	// SplitRatio is the creative studio's left pane share (0.0-1.0).
	// Default is 0.70 (studio 70%, auto-magic status 30%)
	SplitRatio float64 `json:"split_ratio" yaml:"split_ratio"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:      ThemeAuto,
		Width:      0,
		SplitRatio: 0.70,
	}
}

// Validate checks the theme name and ratio bounds.
func (c *UIConfig) Validate() error {
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid ui theme: %s (valid: auto, dark, light)", c.Theme)
	}
	if c.Width < 0 {
		return fmt.Errorf("invalid ui width: %d", c.Width)
	}
	if c.SplitRatio <= 0 || c.SplitRatio >= 1 {
		return fmt.Errorf("invalid ui split_ratio: %v (must be between 0 and 1)", c.SplitRatio)
	}
	return nil
}
