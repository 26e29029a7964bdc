package editor

import (
	"strconv"

	"cutline/internal/timeline"
)

// MarkerUpdate carries the fields UpdateMarker may change.
type MarkerUpdate struct {
	Time  *float64
	Label *string
	Color *string
}

// TrackUpdate carries the fields UpdateTrack may change.
type TrackUpdate struct {
	Name *string
	Type *string
}

// OverlayUpdate carries the fields UpdateTextOverlay may change.
type OverlayUpdate struct {
	Text       *string
	StartTime  *float64
	EndTime    *float64
	X          *float64
	Y          *float64
	FontSize   *float64
	FontFamily *string
	Color      *string
}

// AddMarker appends a marker to the timeline.
func (e *Editor) AddMarker(marker timeline.Marker) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	e.tl.Markers = append(e.tl.Markers, marker)
}

// UpdateMarker merges fields into the matching marker. Missing id is a no-op.
func (e *Editor) UpdateMarker(id string, upd MarkerUpdate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	for i := range e.tl.Markers {
		if e.tl.Markers[i].ID != id {
			continue
		}
		if upd.Time != nil {
			e.tl.Markers[i].Time = *upd.Time
		}
		if upd.Label != nil {
			e.tl.Markers[i].Label = *upd.Label
		}
		if upd.Color != nil {
			e.tl.Markers[i].Color = *upd.Color
		}
		return
	}
}

// RemoveMarker deletes the marker with the given id.
func (e *Editor) RemoveMarker(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	kept := e.tl.Markers[:0]
	for i := range e.tl.Markers {
		if e.tl.Markers[i].ID != id {
			kept = append(kept, e.tl.Markers[i])
		}
	}
	e.tl.Markers = kept
}

// UpdateTrack upserts the track with the given index: an existing track is
// merged in place, otherwise one is created with default id, name, and type
// before the update is applied.
func (e *Editor) UpdateTrack(index int, upd TrackUpdate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	track := trackByIndex(e.tl, index)
	if track == nil {
		e.tl.Tracks = append(e.tl.Tracks, timeline.Track{
			ID:    "track-" + strconv.Itoa(index),
			Index: index,
			Name:  "Track " + strconv.Itoa(index+1),
			Type:  "video",
		})
		track = &e.tl.Tracks[len(e.tl.Tracks)-1]
	}
	if upd.Name != nil {
		track.Name = *upd.Name
	}
	if upd.Type != nil {
		track.Type = *upd.Type
	}
}

func trackByIndex(tl *timeline.Timeline, index int) *timeline.Track {
	for i := range tl.Tracks {
		if tl.Tracks[i].Index == index {
			return &tl.Tracks[i]
		}
	}
	return nil
}

// AddTextOverlay appends a text overlay to the timeline.
func (e *Editor) AddTextOverlay(overlay timeline.TextOverlay) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	e.tl.TextOverlays = append(e.tl.TextOverlays, overlay)
}

// UpdateTextOverlay merges fields into the matching overlay. Missing id is a
// no-op.
func (e *Editor) UpdateTextOverlay(id string, upd OverlayUpdate) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	for i := range e.tl.TextOverlays {
		if e.tl.TextOverlays[i].ID != id {
			continue
		}
		overlay := &e.tl.TextOverlays[i]
		if upd.Text != nil {
			overlay.Text = *upd.Text
		}
		if upd.StartTime != nil {
			overlay.StartTime = *upd.StartTime
		}
		if upd.EndTime != nil {
			overlay.EndTime = *upd.EndTime
		}
		if upd.X != nil {
			overlay.X = *upd.X
		}
		if upd.Y != nil {
			overlay.Y = *upd.Y
		}
		if upd.FontSize != nil {
			overlay.FontSize = *upd.FontSize
		}
		if upd.FontFamily != nil {
			overlay.FontFamily = *upd.FontFamily
		}
		if upd.Color != nil {
			overlay.Color = *upd.Color
		}
		return
	}
}

// RemoveTextOverlay deletes the overlay with the given id.
func (e *Editor) RemoveTextOverlay(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.tl == nil {
		return
	}
	kept := e.tl.TextOverlays[:0]
	for i := range e.tl.TextOverlays {
		if e.tl.TextOverlays[i].ID != id {
			kept = append(kept, e.tl.TextOverlays[i])
		}
	}
	e.tl.TextOverlays = kept
}
