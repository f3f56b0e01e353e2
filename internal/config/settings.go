package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/todo/internal/submit"
)

// Settings keys for Fyne preferences
const (
	KeyEndpointURL = "endpoint_url"
	KeySendTimeout = "send_timeout_seconds"
	KeyLanguage    = "app_language"
)

// Default values
const (
	DefaultEndpointURL = submit.DefaultEndpoint
	DefaultSendTimeout = 30
	DefaultLanguage    = "system"
)

// Send timeout bounds in seconds
const (
	MinSendTimeout = 1
	MaxSendTimeout = 300
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetEndpointURL returns the URL the task list is sent to
func (s *Settings) GetEndpointURL() string {
	endpoint := s.app.Preferences().String(KeyEndpointURL)
	if endpoint == "" {
		s.SetEndpointURL(DefaultEndpointURL)
		return DefaultEndpointURL
	}
	return endpoint
}

// SetEndpointURL sets the submission URL. Empty resets to the default.
func (s *Settings) SetEndpointURL(endpoint string) {
	if endpoint == "" {
		endpoint = DefaultEndpointURL
	}
	s.app.Preferences().SetString(KeyEndpointURL, endpoint)
}

// GetSendTimeoutSeconds returns the send timeout in seconds
func (s *Settings) GetSendTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeySendTimeout)
	if value <= 0 {
		s.SetSendTimeoutSeconds(DefaultSendTimeout)
		return DefaultSendTimeout
	}
	return value
}

// SetSendTimeoutSeconds sets the send timeout, clamped to the allowed range
func (s *Settings) SetSendTimeoutSeconds(seconds int) {
	if seconds < MinSendTimeout {
		seconds = MinSendTimeout
	}
	if seconds > MaxSendTimeout {
		seconds = MaxSendTimeout
	}
	s.app.Preferences().SetInt(KeySendTimeout, seconds)
}

// GetSendTimeout returns the send timeout as a duration
func (s *Settings) GetSendTimeout() time.Duration {
	return time.Duration(s.GetSendTimeoutSeconds()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
