package types

import "strings"

// Theme is the app colour scheme preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// ParseTheme validates s as a Theme.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeSystem, ThemeLight, ThemeDark:
		return t, nil
	}
	return "", ErrInvalidTheme
}

// Settings holds persisted app preferences.
type Settings struct {
	Theme        Theme `json:"theme" yaml:"theme"`
	DynamicColor bool  `json:"dynamic_color" yaml:"dynamic_color"`
}

// DefaultSettings is used until the user changes anything.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeSystem, DynamicColor: true}
}
