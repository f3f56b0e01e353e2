package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	mobile bool
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{mobile: fyne.CurrentDevice().IsMobile()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.mobile
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	// For mobile devices, set minimum size for touch targets
	if m.mobile {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileButtonHeight))
	}

	return btn
}

// CreateMobileEntry creates an entry field optimized for mobile
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)

	// Submit on the virtual keyboard's return key instead of inserting newlines
	entry.MultiLine = false
	return entry
}

// GetRowMinHeight returns the list row height for the device
func (m *MobileUI) GetRowMinHeight() float32 {
	if m.mobile {
		return MobileRowMinHeight
	}
	return RowMinHeight
}
