package config

import (
	"fyne.io/fyne/v2"
)

// ThemeVariant selects the colour scheme of the app
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyThemeVariant = "theme_variant"
	KeyGridColumns  = "grid_columns"
)

// Grid column limits
const (
	MinGridColumns = 1
	MaxGridColumns = 6
)

// Default values
const (
	DefaultThemeVariant = ThemeSystem
	DefaultGridColumns  = 3
)

// Settings manages user preferences persisted by Fyne
type Settings struct {
	app            fyne.App
	defaultColumns int
}

// NewSettings creates a new settings manager. defaultColumns is returned by
// GetGridColumns until the user stores a value.
func NewSettings(app fyne.App, defaultColumns int) *Settings {
	if defaultColumns < MinGridColumns || defaultColumns > MaxGridColumns {
		defaultColumns = DefaultGridColumns
	}
	return &Settings{app: app, defaultColumns: defaultColumns}
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	variant := ThemeVariant(s.app.Preferences().String(KeyThemeVariant))
	switch variant {
	case ThemeSystem, ThemeLight, ThemeDark:
		return variant
	}
	return DefaultThemeVariant
}

// SetThemeVariant stores the theme variant; unknown values reset to the default
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	switch variant {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		variant = DefaultThemeVariant
	}
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns available theme variants
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}
}

// GetGridColumns returns the number of ingredient grid columns
func (s *Settings) GetGridColumns() int {
	return s.app.Preferences().IntWithFallback(KeyGridColumns, s.defaultColumns)
}

// SetGridColumns sets the number of ingredient grid columns
func (s *Settings) SetGridColumns(columns int) {
	if columns < MinGridColumns {
		columns = MinGridColumns
	}
	if columns > MaxGridColumns {
		columns = MaxGridColumns
	}
	s.app.Preferences().SetInt(KeyGridColumns, columns)
}
