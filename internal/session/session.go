// Package session wires the editor, the history log, and the view state into
// one editing session. Every mutation applies to the editor and then pushes
// the resulting timeline into history: structural edits snapshot immediately,
// while high-frequency edits (trim drags, marker nudges, overlay typing)
// coalesce under a shared debounce key so one drag produces one undo step.
package session

import (
	"io"
	"log/slog"
	"time"

	"cutline/internal/editor"
	"cutline/internal/history"
	"cutline/internal/ids"
	"cutline/internal/timeline"
	"cutline/internal/viewstate"
)

// Debounce keys for edits that arrive in rapid bursts. One key per edit
// family: a clip drag must not flush a pending marker edit and vice versa.
const (
	keyUpdateClip    = "update-clip"
	keyUpdateMarker  = "update-marker"
	keyUpdateOverlay = "update-overlay"
	keyUpdateTrack   = "update-track"
)

// Options configures a session. Zero values select production defaults.
type Options struct {
	Generator    ids.Generator
	Clock        func() time.Time
	Scheduler    history.Scheduler
	HistoryLimit int
	Debounce     time.Duration
	Logger       *slog.Logger
}

// Session owns one project's editing state.
type Session struct {
	editor *editor.Editor
	log    *history.Log
	view   *viewstate.State
	logger *slog.Logger
}

// New constructs an editing session with no timeline loaded.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		editor: editor.New(opts.Generator, opts.Clock, logger),
		log:    history.New(opts.HistoryLimit, opts.Debounce, opts.Scheduler),
		view:   viewstate.New(),
		logger: logger.With("component", "session"),
	}
}

// Load replaces the session's timeline and restarts history from it. A nil
// timeline closes the current project.
func (s *Session) Load(tl *timeline.Timeline) {
	s.editor.SetTimeline(tl)
	s.log.Initialize(s.editor.Snapshot())
	if tl != nil {
		s.logger.Debug("timeline loaded", "project", tl.ProjectID, "clips", len(tl.Clips))
	}
}

// Timeline returns a deep copy of the current timeline, or nil.
func (s *Session) Timeline() *timeline.Timeline {
	return s.editor.Snapshot()
}

// Editor exposes the underlying editor for read-only queries.
func (s *Session) Editor() *editor.Editor {
	return s.editor
}

// View exposes the playback/view state.
func (s *Session) View() *viewstate.State {
	return s.view
}

// Close drops the timeline and the whole undo history.
func (s *Session) Close() {
	s.editor.SetTimeline(nil)
	s.log.Clear()
}

func (s *Session) snapshot(key ...string) {
	s.log.Save(s.editor.Snapshot(), key...)
}

// AddClip appends a clip and records an undo step.
func (s *Session) AddClip(clip timeline.Clip) {
	s.editor.AddClip(clip)
	s.snapshot()
}

// UpdateClip merges clip fields; bursts coalesce into one undo step.
func (s *Session) UpdateClip(id string, upd editor.ClipUpdate) {
	s.editor.UpdateClip(id, upd)
	s.snapshot(keyUpdateClip)
}

// RemoveClip deletes a clip and records an undo step.
func (s *Session) RemoveClip(id string) {
	s.editor.RemoveClip(id)
	s.snapshot()
}

// ReorderClips rebuilds the clip order and records an undo step.
func (s *Session) ReorderClips(order []string) {
	s.editor.ReorderClips(order)
	s.snapshot()
}

// SplitClipAtTime splits a clip and records an undo step.
func (s *Session) SplitClipAtTime(id string, at float64) {
	s.editor.SplitClipAtTime(id, at)
	s.snapshot()
}

// AddTransitionToClips sets transitions and records an undo step.
func (s *Session) AddTransitionToClips(clipIDs []string, kind timeline.TransitionType, duration float64) {
	s.editor.AddTransitionToClips(clipIDs, kind, duration)
	s.snapshot()
}

// AddMarker appends a marker and records an undo step.
func (s *Session) AddMarker(marker timeline.Marker) {
	s.editor.AddMarker(marker)
	s.snapshot()
}

// UpdateMarker merges marker fields; bursts coalesce into one undo step.
func (s *Session) UpdateMarker(id string, upd editor.MarkerUpdate) {
	s.editor.UpdateMarker(id, upd)
	s.snapshot(keyUpdateMarker)
}

// RemoveMarker deletes a marker and records an undo step.
func (s *Session) RemoveMarker(id string) {
	s.editor.RemoveMarker(id)
	s.snapshot()
}

// UpdateTrack upserts a track; bursts coalesce into one undo step.
func (s *Session) UpdateTrack(index int, upd editor.TrackUpdate) {
	s.editor.UpdateTrack(index, upd)
	s.snapshot(keyUpdateTrack)
}

// AddTextOverlay appends an overlay and records an undo step.
func (s *Session) AddTextOverlay(overlay timeline.TextOverlay) {
	s.editor.AddTextOverlay(overlay)
	s.snapshot()
}

// UpdateTextOverlay merges overlay fields; bursts coalesce into one undo step.
func (s *Session) UpdateTextOverlay(id string, upd editor.OverlayUpdate) {
	s.editor.UpdateTextOverlay(id, upd)
	s.snapshot(keyUpdateOverlay)
}

// RemoveTextOverlay deletes an overlay and records an undo step.
func (s *Session) RemoveTextOverlay(id string) {
	s.editor.RemoveTextOverlay(id)
	s.snapshot()
}

// LockClip locks one clip and records an undo step.
func (s *Session) LockClip(id string) {
	s.editor.LockClip(id)
	s.snapshot()
}

// UnlockClip unlocks one clip and records an undo step.
func (s *Session) UnlockClip(id string) {
	s.editor.UnlockClip(id)
	s.snapshot()
}

// ToggleClipLock flips one clip's lock and records an undo step.
func (s *Session) ToggleClipLock(id string) {
	s.editor.ToggleClipLock(id)
	s.snapshot()
}

// LockSelected locks every clip in the selection. An empty selection changes
// nothing and records nothing.
func (s *Session) LockSelected(selection []string) {
	if len(selection) == 0 {
		return
	}
	s.editor.LockClips(selection)
	s.snapshot()
}

// UnlockSelected unlocks every clip in the selection.
func (s *Session) UnlockSelected(selection []string) {
	if len(selection) == 0 {
		return
	}
	s.editor.UnlockClips(selection)
	s.snapshot()
}

// GroupSelected groups the selected clips as one atomic undo step and returns
// the new group's id, or the empty string when grouping declined.
func (s *Session) GroupSelected(selection []string, name string) string {
	groupID := s.editor.GroupClips(selection, name)
	if groupID == "" {
		return ""
	}
	s.snapshot()
	return groupID
}

// Ungroup dissolves a group as one atomic undo step.
func (s *Session) Ungroup(groupID string) {
	s.editor.UngroupClips(groupID)
	s.snapshot()
}

// Undo steps back one history entry and reports whether anything changed.
func (s *Session) Undo() bool {
	tl := s.log.Undo()
	if tl == nil {
		return false
	}
	s.editor.SetTimeline(tl)
	return true
}

// Redo steps forward one history entry and reports whether anything changed.
func (s *Session) Redo() bool {
	tl := s.log.Redo()
	if tl == nil {
		return false
	}
	s.editor.SetTimeline(tl)
	return true
}

// CanUndo reports whether an earlier state exists.
func (s *Session) CanUndo() bool { return s.log.CanUndo() }

// CanRedo reports whether a later state exists.
func (s *Session) CanRedo() bool { return s.log.CanRedo() }
