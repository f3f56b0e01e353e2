package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

func TestDetectGesture(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float32
		held     time.Duration
		expected GestureType
	}{
		{"tap", 2, 1, 50 * time.Millisecond, GestureTap},
		{"long press", 0, 0, time.Second, GestureLongPress},
		{"swipe left", -60, 5, 100 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", 60, -5, 100 * time.Millisecond, GestureSwipeRight},
		{"swipe up", 3, -60, 100 * time.Millisecond, GestureSwipeUp},
		{"swipe down", 3, 60, 100 * time.Millisecond, GestureSwipeDown},
		{"diagonal below threshold", 25, 25, 100 * time.Millisecond, GestureTap},
		{"diagonal above threshold", -35, 30, 100 * time.Millisecond, GestureSwipeLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectGesture(tt.dx, tt.dy, tt.held, DefaultSwipeThreshold, DefaultLongPressDuration)
			if got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestGestureHandler_Touch(t *testing.T) {
	var gestures []GestureType
	handler := NewGestureHandler(func(g GestureType) {
		gestures = append(gestures, g)
	})

	clock := time.Unix(0, 0)
	handler.now = func() time.Time { return clock }

	touch := func(from, to fyne.Position, held time.Duration) {
		handler.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: from}})
		clock = clock.Add(held)
		handler.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: to}})
	}

	touch(fyne.NewPos(100, 10), fyne.NewPos(20, 12), 100*time.Millisecond)
	touch(fyne.NewPos(10, 10), fyne.NewPos(11, 10), 100*time.Millisecond)
	touch(fyne.NewPos(10, 10), fyne.NewPos(10, 10), time.Second)

	expected := []GestureType{GestureSwipeLeft, GestureTap, GestureLongPress}
	if len(gestures) != len(expected) {
		t.Fatalf("Expected %d gestures, got %v", len(expected), gestures)
	}
	for i := range expected {
		if gestures[i] != expected[i] {
			t.Errorf("Gesture %d: expected %s, got %s", i, expected[i], gestures[i])
		}
	}
}

func TestGestureHandler_TouchCancel(t *testing.T) {
	called := false
	handler := NewGestureHandler(func(GestureType) {
		called = true
	})

	handler.TouchDown(&mobile.TouchEvent{})
	handler.TouchCancel(&mobile.TouchEvent{})
	handler.TouchUp(&mobile.TouchEvent{})

	if called {
		t.Error("Expected no gesture after a cancelled touch")
	}
}

func TestGestureHandler_DragAccumulates(t *testing.T) {
	var got GestureType
	handler := NewGestureHandler(func(g GestureType) {
		got = g
	})

	for i := 0; i < 5; i++ {
		handler.Dragged(-10, 1)
	}
	handler.DragEnd()

	if got != GestureSwipeLeft {
		t.Errorf("Expected swipe-left, got %s", got)
	}

	// Accumulator is reset after DragEnd
	got = GestureNone
	handler.Dragged(-10, 0)
	handler.DragEnd()
	if got != GestureNone {
		t.Errorf("Expected no gesture for a short drag, got %s", got)
	}
}
