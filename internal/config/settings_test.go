package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestEndpointURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if endpoint := settings.GetEndpointURL(); endpoint != DefaultEndpointURL {
		t.Errorf("Expected default endpoint %s, got %s", DefaultEndpointURL, endpoint)
	}

	// Test setting custom value
	custom := "https://example.com/tasks"
	settings.SetEndpointURL(custom)

	if endpoint := settings.GetEndpointURL(); endpoint != custom {
		t.Errorf("Expected endpoint %s, got %s", custom, endpoint)
	}

	// Test empty value resets
	settings.SetEndpointURL("")
	if endpoint := settings.GetEndpointURL(); endpoint != DefaultEndpointURL {
		t.Errorf("Empty endpoint should default to %s, got %s", DefaultEndpointURL, endpoint)
	}
}

func TestSendTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if timeout := settings.GetSendTimeoutSeconds(); timeout != DefaultSendTimeout {
		t.Errorf("Expected default timeout %d, got %d", DefaultSendTimeout, timeout)
	}
	if settings.GetSendTimeout() != DefaultSendTimeout*time.Second {
		t.Errorf("Expected duration %v, got %v", DefaultSendTimeout*time.Second, settings.GetSendTimeout())
	}

	// Test setting custom value
	settings.SetSendTimeoutSeconds(10)
	if timeout := settings.GetSendTimeoutSeconds(); timeout != 10 {
		t.Errorf("Expected timeout 10, got %d", timeout)
	}

	// Test boundary values
	settings.SetSendTimeoutSeconds(0) // Should be clamped to 1
	if settings.GetSendTimeoutSeconds() != MinSendTimeout {
		t.Errorf("Timeout should be clamped to minimum %d", MinSendTimeout)
	}

	settings.SetSendTimeoutSeconds(1000) // Should be clamped to 300
	if settings.GetSendTimeoutSeconds() != MaxSendTimeout {
		t.Errorf("Timeout should be clamped to maximum %d", MaxSendTimeout)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language 'pt', got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
