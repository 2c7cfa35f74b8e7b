package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/cookbook/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := newTestApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app, config.DefaultGridColumns)
	saved := 0
	sd := ShowSettingsDialog(w, settings, func() { saved++ })

	assert.Equal(t, "system", sd.themeSelect.Selected)
	assert.Equal(t, "3", sd.columnsSelect.Selected)

	sd.themeSelect.SetSelected("dark")
	sd.columnsSelect.SetSelected("5")
	sd.onSave(true)

	assert.Equal(t, 1, saved)
	assert.Equal(t, config.ThemeDark, settings.GetThemeVariant())
	assert.Equal(t, 5, settings.GetGridColumns())
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := newTestApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app, config.DefaultGridColumns)
	saved := 0
	sd := NewSettingsDialog(settings, w, func() { saved++ })
	sd.loadCurrentSettings()

	sd.columnsSelect.SetSelected("1")
	sd.onSave(false)

	assert.Zero(t, saved)
	assert.Equal(t, config.DefaultGridColumns, settings.GetGridColumns())
}
