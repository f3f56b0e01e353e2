package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns the gesture name for logging
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	default:
		return "none"
	}
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 40.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// DetectGesture classifies a finished pointer movement. Movement of at least
// swipeThreshold is a swipe in its dominant direction; a shorter movement is
// a long press when held for longPress, otherwise a tap.
func DetectGesture(dx, dy float32, held time.Duration, swipeThreshold float32, longPress time.Duration) GestureType {
	if dx*dx+dy*dy >= swipeThreshold*swipeThreshold {
		return swipeDirection(dx, dy)
	}
	if held >= longPress {
		return GestureLongPress
	}
	return GestureTap
}

// swipeDirection determines the direction of a swipe gesture
func swipeDirection(dx, dy float32) GestureType {
	if abs32(dx) > abs32(dy) {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// GestureHandler turns touch and mouse drag events into gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
	touching       bool

	// Drag tracking (desktop pointer)
	dragDX, dragDY float32

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration

	now func() time.Time
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
		now:               time.Now,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
	gh.touching = true
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if !gh.touching {
		return
	}
	gh.touching = false

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	held := gh.now().Sub(gh.touchStartTime)

	gh.triggerGesture(DetectGesture(dx, dy, held, gh.swipeThreshold, gh.longPressDuration))
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	// Reset tracking
	gh.touching = false
	gh.touchStartTime = time.Time{}
}

// Dragged accumulates pointer drag movement
func (gh *GestureHandler) Dragged(dx, dy float32) {
	gh.dragDX += dx
	gh.dragDY += dy
}

// DragEnd reports a swipe when the accumulated drag passed the threshold.
// Short drags are ignored rather than treated as taps.
func (gh *GestureHandler) DragEnd() {
	dx, dy := gh.dragDX, gh.dragDY
	gh.dragDX, gh.dragDY = 0, 0

	if dx*dx+dy*dy < gh.swipeThreshold*gh.swipeThreshold {
		return
	}
	gh.triggerGesture(swipeDirection(dx, dy))
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}
