package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/cookbook/internal/config"
)

// Palette of the recipe screen
var (
	ColorPink      = color.NRGBA{R: 0xF6, G: 0x4C, B: 0x6C, A: 0xFF}
	ColorLightGray = color.NRGBA{R: 0xF1, G: 0xF1, B: 0xF1, A: 0xFF}
	ColorGray      = color.NRGBA{R: 0x9C, G: 0x9C, B: 0x9C, A: 0xFF}
	ColorDarkGray  = color.NRGBA{R: 0x6A, G: 0x6A, B: 0x6A, A: 0xFF}
	ColorWhite     = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	colorNearBlack = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF}
	colorCharcoal  = color.NRGBA{R: 0x2C, G: 0x2C, B: 0x2C, A: 0xFF}
	colorDarkBg    = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF}
)

// Custom colour names looked up by the recipe widgets
const (
	// ColorNameSurface fills chips, cards, the serving row and the tab strip
	ColorNameSurface fyne.ThemeColorName = "cookbookSurface"
	// ColorNameSubtle is used for secondary text such as ingredient amounts
	ColorNameSubtle fyne.ThemeColorName = "cookbookSubtle"
)

// CookbookTheme is the app theme. Variant can pin the light or dark palette
// regardless of the OS preference.
type CookbookTheme struct {
	variant config.ThemeVariant
}

// NewCookbookTheme creates the theme for the given variant preference
func NewCookbookTheme(variant config.ThemeVariant) fyne.Theme {
	return &CookbookTheme{variant: variant}
}

// Color returns theme colors
func (t *CookbookTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.resolveVariant(variant)
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorPink
	case theme.ColorNameForegroundOnPrimary:
		return ColorWhite
	case theme.ColorNameBackground, theme.ColorNameButton:
		if dark {
			return colorDarkBg
		}
		return ColorWhite
	case theme.ColorNameForeground:
		if dark {
			return ColorWhite
		}
		return colorNearBlack
	case ColorNameSurface:
		if dark {
			return colorCharcoal
		}
		return ColorLightGray
	case ColorNameSubtle:
		if dark {
			return ColorGray
		}
		return ColorDarkGray
	case theme.ColorNamePlaceHolder:
		return ColorGray
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CookbookTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CookbookTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *CookbookTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInputRadius:
		return 10 // rounded buttons
	case theme.SizeNameSelectionRadius:
		return 6
	case theme.SizeNameHeadingText:
		return TitleTextSize
	}

	return theme.DefaultTheme().Size(name)
}

func (t *CookbookTheme) resolveVariant(requested fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.variant {
	case config.ThemeLight:
		return theme.VariantLight
	case config.ThemeDark:
		return theme.VariantDark
	}
	return requested
}
