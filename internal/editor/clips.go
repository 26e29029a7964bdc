package editor

import (
	"math"

	"cutline/internal/timeline"
)

// ClipUpdate carries the fields UpdateClip may change. Nil means "leave the
// stored value alone". Locked and GroupID are owned by the lock and group
// operations and cannot be set through an update.
type ClipUpdate struct {
	AssetID          *string
	FilePath         *string
	Mime             *string
	Start            *float64
	End              *float64
	SourceDuration   *float64
	TimelinePosition *float64
	TrackIndex       *int
	TransitionToNext *timeline.Transition
	Crop             *timeline.Crop
	Volume           *float64
	Opacity          *float64
	Speed            *float64
}

// AddClip appends a clip to the timeline. If a clip with the same id already
// exists, the new clip wins and takes the end position.
func (e *Editor) AddClip(clip timeline.Clip) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	e.tl.Clips = append(e.tl.Clips, clip.Clone())
	e.tl.Clips = dedupeClips(e.tl.Clips)
}

// UpdateClip merges the supplied fields into the matching clip and
// re-establishes the trim invariants. Missing id is a no-op.
func (e *Editor) UpdateClip(id string, upd ClipUpdate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	clip := e.tl.ClipByID(id)
	if clip == nil {
		return
	}

	if upd.AssetID != nil {
		clip.AssetID = *upd.AssetID
	}
	if upd.FilePath != nil {
		clip.FilePath = *upd.FilePath
	}
	if upd.Mime != nil {
		clip.Mime = *upd.Mime
	}
	if upd.Start != nil {
		clip.Start = *upd.Start
	}
	if upd.End != nil {
		clip.End = *upd.End
	}
	if upd.TimelinePosition != nil {
		clip.TimelinePosition = *upd.TimelinePosition
	}
	if upd.TrackIndex != nil {
		clip.TrackIndex = *upd.TrackIndex
	}
	if upd.TransitionToNext != nil {
		transition := *upd.TransitionToNext
		clip.TransitionToNext = &transition
	}
	if upd.Crop != nil {
		crop := *upd.Crop
		clip.Crop = &crop
	}
	if upd.Volume != nil {
		volume := *upd.Volume
		clip.Volume = &volume
	}
	if upd.Opacity != nil {
		opacity := *upd.Opacity
		clip.Opacity = &opacity
	}
	if upd.Speed != nil {
		speed := *upd.Speed
		clip.Speed = &speed
	}

	normalizeClip(clip, upd)
	e.tl.Clips = dedupeClips(e.tl.Clips)
}

// normalizeClip applies the update normalization sequence, in order:
// clamp placement and start to zero, sanitize sourceDuration, bound the trim
// points by the source, then restore the minimum clip duration by pulling
// start down (end moves up only when start already sits at zero, and never
// past the source bound).
func normalizeClip(clip *timeline.Clip, upd ClipUpdate) {
	if upd.TimelinePosition != nil && clip.TimelinePosition < 0 {
		clip.TimelinePosition = 0
	}
	if upd.Start != nil && clip.Start < 0 {
		clip.Start = 0
	}
	if upd.SourceDuration != nil {
		duration := *upd.SourceDuration
		switch {
		case math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0:
			clip.SourceDuration = nil
		case duration < timeline.MinClipDuration:
			raised := timeline.MinClipDuration
			clip.SourceDuration = &raised
		default:
			clip.SourceDuration = &duration
		}
	}
	if clip.SourceDuration != nil {
		if clip.Start > *clip.SourceDuration {
			clip.Start = *clip.SourceDuration
		}
		if clip.End > *clip.SourceDuration {
			clip.End = *clip.SourceDuration
		}
	}
	if clip.End-clip.Start < timeline.MinClipDuration {
		start := clip.End - timeline.MinClipDuration
		if start < 0 {
			start = 0
			end := timeline.MinClipDuration
			if clip.SourceDuration != nil && end > *clip.SourceDuration {
				end = *clip.SourceDuration
			}
			clip.End = end
		}
		clip.Start = start
	}
}

// RemoveClip deletes the clip with the given id. Missing id is a no-op.
func (e *Editor) RemoveClip(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	kept := e.tl.Clips[:0]
	for i := range e.tl.Clips {
		if e.tl.Clips[i].ID != id {
			kept = append(kept, e.tl.Clips[i])
		}
	}
	e.tl.Clips = dedupeClips(kept)
}

// ReorderClips rebuilds the clip sequence in the given order. Ids that do not
// exist are ignored; clips omitted from the order are dropped.
func (e *Editor) ReorderClips(order []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	byID := make(map[string]timeline.Clip, len(e.tl.Clips))
	for i := range e.tl.Clips {
		byID[e.tl.Clips[i].ID] = e.tl.Clips[i]
	}
	reordered := make([]timeline.Clip, 0, len(order))
	for _, id := range order {
		if clip, ok := byID[id]; ok {
			reordered = append(reordered, clip)
		}
	}
	e.tl.Clips = dedupeClips(reordered)
}

// SplitClipAtTime splits a clip in two at an absolute timeline time. The
// split point must fall strictly inside the clip and leave both halves at
// least the minimum clip duration long; otherwise nothing changes.
func (e *Editor) SplitClipAtTime(id string, at float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	clip := e.tl.ClipByID(id)
	if clip == nil {
		return
	}

	begin := clip.TimelinePosition
	finish := clip.TimelineEnd()
	if !(at > begin && at < finish) {
		e.logger.Debug("split point outside clip", "clip", id, "at", at)
		return
	}
	offset := at - begin
	if offset < timeline.MinClipDuration || (clip.End-clip.Start)-offset < timeline.MinClipDuration {
		e.logger.Debug("split would leave a segment too short", "clip", id, "at", at)
		return
	}

	second := clip.Clone()
	second.ID = clip.ID + "-split-" + e.gen.NewSuffix()
	second.Start = clip.Start + offset
	second.TimelinePosition = begin + offset

	clip.End = clip.Start + offset
	// The first half no longer runs into its old neighbor.
	clip.TransitionToNext = &timeline.Transition{Type: timeline.TransitionNone, Duration: 0}

	e.tl.Clips = append(e.tl.Clips, second)
	e.tl.Clips = dedupeClips(e.tl.Clips)
}

// AddTransitionToClips sets the outgoing transition on every listed clip that
// exists. Unknown ids are skipped.
func (e *Editor) AddTransitionToClips(clipIDs []string, kind timeline.TransitionType, duration float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	for _, id := range clipIDs {
		if clip := e.tl.ClipByID(id); clip != nil {
			clip.TransitionToNext = &timeline.Transition{Type: kind, Duration: duration}
		}
	}
}
