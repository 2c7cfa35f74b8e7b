package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific UI adjustments
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.app.Driver().Device().IsMobile()
}

// GetPadding returns the horizontal padding of the toolbar
func (m *MobileUI) GetPadding() float32 {
	if m.IsMobileDevice() {
		return SectionPadding
	}
	return SectionPadding / 2
}

// ShouldResizeWindow reports whether the window size from config applies.
// Mobile windows always fill the screen.
func (m *MobileUI) ShouldResizeWindow() bool {
	return !m.IsMobileDevice()
}
