package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/cookbook/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 320
	SettingsDialogHeight = 260
)

// SettingsDialog edits the user preferences of the recipe screen
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	themeSelect   *widget.Select
	columnsSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	themeOptions := []string{}
	for _, variant := range sd.settings.GetThemeVariantOptions() {
		themeOptions = append(themeOptions, string(variant))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	columnOptions := []string{}
	for columns := config.MinGridColumns; columns <= config.MaxGridColumns; columns++ {
		columnOptions = append(columnOptions, strconv.Itoa(columns))
	}
	sd.columnsSelect = widget.NewSelect(columnOptions, nil)

	form := container.NewVBox(
		widget.NewLabel("Theme:"),
		sd.themeSelect,

		widget.NewLabel("Ingredient columns:"),
		sd.columnsSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		TextSettings,
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.themeSelect.SetSelected(string(sd.settings.GetThemeVariant()))
	sd.columnsSelect.SetSelected(strconv.Itoa(sd.settings.GetGridColumns()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.themeSelect.Selected != "" {
		sd.settings.SetThemeVariant(config.ThemeVariant(sd.themeSelect.Selected))
	}

	if columns, err := strconv.Atoi(sd.columnsSelect.Selected); err == nil {
		sd.settings.SetGridColumns(columns)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
