package viewstate_test

import (
	"math"
	"testing"

	"cutline/internal/viewstate"
)

func TestCurrentTimeClamping(t *testing.T) {
	view := viewstate.New()

	view.SetCurrentTime(12.5)
	if got := view.CurrentTime(); got != 12.5 {
		t.Fatalf("currentTime = %v, want 12.5", got)
	}

	view.SetCurrentTime(-3)
	if got := view.CurrentTime(); got != 0 {
		t.Fatalf("currentTime = %v, want 0", got)
	}

	view.SetCurrentTime(math.Inf(1))
	if got := view.CurrentTime(); !math.IsInf(got, 1) {
		t.Fatalf("currentTime = %v, want +Inf to pass through", got)
	}

	view.SetCurrentTime(math.NaN())
	if got := view.CurrentTime(); !math.IsNaN(got) {
		t.Fatalf("currentTime = %v, want NaN to pass through", got)
	}

	view.SetCurrentTime(math.Inf(-1))
	if got := view.CurrentTime(); got != 0 {
		t.Fatalf("currentTime = %v, want -Inf clamped to 0", got)
	}
}

func TestZoomClamping(t *testing.T) {
	view := viewstate.New()

	if got := view.Zoom(); got != viewstate.DefaultZoom {
		t.Fatalf("initial zoom = %v, want %v", got, viewstate.DefaultZoom)
	}

	view.SetZoom(5)
	if got := view.Zoom(); got != viewstate.MinZoom {
		t.Fatalf("zoom = %v, want %v", got, viewstate.MinZoom)
	}

	view.SetZoom(300)
	if got := view.Zoom(); got != viewstate.MaxZoom {
		t.Fatalf("zoom = %v, want %v", got, viewstate.MaxZoom)
	}

	view.SetZoom(150)
	if got := view.Zoom(); got != 150 {
		t.Fatalf("zoom = %v, want 150", got)
	}
}

func TestPlayPauseToggle(t *testing.T) {
	view := viewstate.New()

	if view.IsPlaying() {
		t.Fatal("fresh view is playing")
	}

	view.Play()
	view.Play() // idempotent
	if !view.IsPlaying() {
		t.Fatal("expected playing")
	}

	view.TogglePlayPause()
	if view.IsPlaying() {
		t.Fatal("expected paused after toggle")
	}

	view.TogglePlayPause()
	if !view.IsPlaying() {
		t.Fatal("expected playing after second toggle")
	}

	view.Pause()
	view.Pause()
	if view.IsPlaying() {
		t.Fatal("expected paused")
	}
}
