package ui

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/todo/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.FormDialog
	onSaved      func()

	// UI components
	endpointEntry  *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
	languageCodes  map[string]string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog builds and shows the dialog; onSaved runs after a successful save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.SetOnSaved(onSaved)
	sd.Show()
}

// SetOnSaved sets the callback invoked after settings are saved
func (sd *SettingsDialog) SetOnSaved(onSaved func()) {
	sd.onSaved = onSaved
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(config.DefaultEndpointURL)
	sd.endpointEntry.Validator = validateEndpoint

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinSendTimeout) + "-" + strconv.Itoa(config.MaxSendTimeout))
	sd.timeoutEntry.Validator = validateTimeout

	// Language selection shows labels, stores codes
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	items := []*widget.FormItem{
		widget.NewFormItem(sd.localization.GetText(KeyEndpointURL), sd.endpointEntry),
		widget.NewFormItem(sd.localization.GetText(KeySendTimeout), sd.timeoutEntry),
		widget.NewFormItem(sd.localization.GetText(KeyLanguage), sd.languageSelect),
	}

	// Save stays disabled while an entry fails validation
	sd.dialog = dialog.NewForm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		items,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 320))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.endpointEntry.SetText(sd.settings.GetEndpointURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetSendTimeoutSeconds()))

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Out of range values are clamped by the settings layer
	if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetSendTimeoutSeconds(seconds)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	// A bad endpoint keeps the stored one; the other fields are already saved
	endpoint := sd.endpointEntry.Text
	if endpoint != "" {
		if err := validateEndpoint(endpoint); err != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", sd.localization.GetText(KeyInvalidURL), err), sd.window)
		} else {
			sd.settings.SetEndpointURL(endpoint)
		}
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

var errInvalidTimeout = errors.New("timeout must be a whole number of seconds")

// validateTimeout accepts whole seconds; range is clamped on save
func validateTimeout(raw string) error {
	if _, err := strconv.Atoi(raw); err != nil {
		return errInvalidTimeout
	}
	return nil
}

var errInvalidEndpoint = errors.New("endpoint must be an absolute http(s) URL")

// validateEndpoint accepts absolute http and https URLs only
func validateEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errInvalidEndpoint
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errInvalidEndpoint
	}
	return nil
}
