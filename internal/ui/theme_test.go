package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/cookbook/internal/config"
)

func TestCookbookTheme_Palette(t *testing.T) {
	th := NewCookbookTheme(config.ThemeSystem)

	assert.Equal(t, ColorPink, th.Color(theme.ColorNamePrimary, theme.VariantLight))
	assert.Equal(t, ColorLightGray, th.Color(ColorNameSurface, theme.VariantLight))
	assert.Equal(t, ColorDarkGray, th.Color(ColorNameSubtle, theme.VariantLight))
	assert.Equal(t, ColorWhite, th.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, colorDarkBg, th.Color(theme.ColorNameBackground, theme.VariantDark))
}

func TestCookbookTheme_ForcedVariant(t *testing.T) {
	light := NewCookbookTheme(config.ThemeLight)
	dark := NewCookbookTheme(config.ThemeDark)

	assert.Equal(t, ColorWhite, light.Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, colorDarkBg, dark.Color(theme.ColorNameBackground, theme.VariantLight))
}

func TestCookbookTheme_Fallbacks(t *testing.T) {
	th := NewCookbookTheme(config.ThemeSystem)

	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameError, theme.VariantLight),
		th.Color(theme.ColorNameError, theme.VariantLight))
	assert.Equal(t, TitleTextSize, th.Size(theme.SizeNameHeadingText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameText), th.Size(theme.SizeNameText))
}
