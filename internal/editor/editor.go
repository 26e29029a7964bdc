package editor

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"cutline/internal/ids"
	"cutline/internal/timeline"
)

// Editor holds the current timeline and applies all editing mutations. A nil
// timeline means no project is loaded; every mutation is then a no-op.
type Editor struct {
	mu     sync.Mutex
	tl     *timeline.Timeline
	gen    ids.Generator
	now    func() time.Time
	logger *slog.Logger
}

// New constructs an editor. The generator supplies ids for groups and split
// clips; now supplies group creation timestamps. Nil arguments fall back to
// production defaults so call sites only inject what they need to control.
func New(gen ids.Generator, now func() time.Time, logger *slog.Logger) *Editor {
	if gen == nil {
		gen = ids.UUIDGenerator{}
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Editor{gen: gen, now: now, logger: logger.With("component", "editor")}
}

// SetTimeline replaces the current timeline. Passing nil clears the editor.
// The editor stores its own deep copy, deduplicated by clip id, so later
// mutation of the caller's value is never observable here.
func (e *Editor) SetTimeline(tl *timeline.Timeline) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tl == nil {
		e.tl = nil
		return
	}
	clone := tl.Clone()
	clone.Clips = dedupeClips(clone.Clips)
	e.tl = clone
}

// Snapshot returns a deep copy of the current timeline, or nil when no
// project is loaded. Callers own the returned value outright.
func (e *Editor) Snapshot() *timeline.Timeline {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tl.Clone()
}

// HasTimeline reports whether a project is loaded.
func (e *Editor) HasTimeline() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tl != nil
}

// Clip returns a copy of the clip with the given id.
func (e *Editor) Clip(id string) (timeline.Clip, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return timeline.Clip{}, false
	}
	clip := e.tl.ClipByID(id)
	if clip == nil {
		return timeline.Clip{}, false
	}
	return clip.Clone(), true
}

// dedupeClips drops every clip shadowed by a later entry with the same id,
// preserving the relative order of the survivors.
func dedupeClips(clips []timeline.Clip) []timeline.Clip {
	if len(clips) < 2 {
		return clips
	}
	last := make(map[string]int, len(clips))
	for i := range clips {
		last[clips[i].ID] = i
	}
	if len(last) == len(clips) {
		return clips
	}
	out := clips[:0]
	for i := range clips {
		if last[clips[i].ID] == i {
			out = append(out, clips[i])
		}
	}
	return out
}
