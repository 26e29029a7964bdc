// Package viewstate tracks playback position, zoom, and play state for the
// editing view. It is independent of the timeline document; nothing here
// changes what gets rendered or exported.
package viewstate

import "sync"

const (
	// MinZoom and MaxZoom bound the timeline zoom percentage.
	MinZoom = 10.0
	MaxZoom = 200.0

	// DefaultZoom is the zoom applied to a fresh view.
	DefaultZoom = 100.0
)

// State holds the current playback/view values behind a mutex.
type State struct {
	mu          sync.Mutex
	currentTime float64
	zoom        float64
	playing     bool
}

// New returns a view at time zero and default zoom, paused.
func New() *State {
	return &State{zoom: DefaultZoom}
}

// SetCurrentTime moves the playhead. Negative values clamp to zero; NaN and
// positive infinity pass through untouched (NaN never compares less than
// zero, so the clamp simply does not see it).
func (s *State) SetCurrentTime(t float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t < 0 {
		t = 0
	}
	s.currentTime = t
}

// CurrentTime returns the playhead position in seconds.
func (s *State) CurrentTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentTime
}

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom].
func (s *State) SetZoom(zoom float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	s.zoom = zoom
}

// Zoom returns the current zoom level.
func (s *State) Zoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

// Play starts playback. Calling it while already playing changes nothing.
func (s *State) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = true
}

// Pause stops playback.
func (s *State) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}

// TogglePlayPause flips the play state.
func (s *State) TogglePlayPause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = !s.playing
}

// IsPlaying reports whether playback is running.
func (s *State) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}
