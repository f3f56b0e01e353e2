package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconError    = "❌"
	IconDone     = "✓"
)

// Window sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640
)

// Layout sizing (TaskRow / lists)
const (
	RowMinWidth  float32 = 240
	RowMinHeight float32 = 44

	// Mobile-specific sizing
	MobileRowMinHeight float32 = 56

	// Touch target sizes (iOS/Android guidelines)
	MobileButtonHeight float32 = 48
	MobileButtonWidth  float32 = 72
)

// Notification behavior
const (
	NotificationAutoHide = 5 * time.Second
)
