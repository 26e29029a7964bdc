package timeline_test

import (
	"testing"

	"cutline/internal/timeline"
)

func sampleTimeline() *timeline.Timeline {
	duration := 12.5
	locked := true
	volume := 0.8
	return &timeline.Timeline{
		ProjectID: "proj-1",
		Clips: []timeline.Clip{
			{
				ID:               "c1",
				AssetID:          "asset-1",
				FilePath:         "/media/a.mp4",
				Start:            0,
				End:              10,
				SourceDuration:   &duration,
				TimelinePosition: 0,
				TrackIndex:       0,
				Locked:           &locked,
				Volume:           &volume,
				TransitionToNext: &timeline.Transition{Type: timeline.TransitionFade, Duration: 0.5},
				Crop:             &timeline.Crop{X: 0.1, Y: 0.1, Width: 0.8, Height: 0.8},
			},
			{ID: "c2", Start: 2, End: 6, TimelinePosition: 10, TrackIndex: 1, GroupID: "g1"},
		},
		Tracks:  []timeline.Track{{ID: "track-0", Index: 0, Name: "Track 1", Type: "video"}},
		Markers: []timeline.Marker{{ID: "m1", Time: 3.5, Label: "intro", Color: "#ff0000"}},
		TextOverlays: []timeline.TextOverlay{
			{ID: "t1", Text: "Hello", StartTime: 1, EndTime: 4, X: 0.5, Y: 0.5},
		},
		Groups: []timeline.Group{{ID: "g1", Name: "Group 1", ClipIDs: []string{"c2"}, CreatedAt: 1700000000000}},
		Output: &timeline.Output{Width: 1920, Height: 1080, FPS: 30},
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := sampleTimeline()
	clone := original.Clone()

	clone.Clips[0].ID = "mutated"
	*clone.Clips[0].SourceDuration = 99
	*clone.Clips[0].Locked = false
	clone.Clips[0].TransitionToNext.Type = timeline.TransitionNone
	clone.Clips[0].Crop.X = 0.9
	clone.Groups[0].ClipIDs[0] = "other"
	clone.Markers[0].Label = "changed"
	clone.Output.Width = 1

	if original.Clips[0].ID != "c1" {
		t.Errorf("clip id leaked through clone: %q", original.Clips[0].ID)
	}
	if *original.Clips[0].SourceDuration != 12.5 {
		t.Errorf("sourceDuration leaked through clone: %v", *original.Clips[0].SourceDuration)
	}
	if !original.Clips[0].IsLocked() {
		t.Error("locked flag leaked through clone")
	}
	if original.Clips[0].TransitionToNext.Type != timeline.TransitionFade {
		t.Error("transition leaked through clone")
	}
	if original.Clips[0].Crop.X != 0.1 {
		t.Error("crop leaked through clone")
	}
	if original.Groups[0].ClipIDs[0] != "c2" {
		t.Error("group clip ids leaked through clone")
	}
	if original.Markers[0].Label != "intro" {
		t.Error("marker leaked through clone")
	}
	if original.Output.Width != 1920 {
		t.Error("output leaked through clone")
	}
}

func TestCloneNil(t *testing.T) {
	var tl *timeline.Timeline
	if tl.Clone() != nil {
		t.Error("expected nil clone of nil timeline")
	}
}

func TestClonePreservesAbsentOptionals(t *testing.T) {
	original := &timeline.Timeline{ProjectID: "p", Clips: []timeline.Clip{{ID: "c1", Start: 0, End: 1}}}
	clone := original.Clone()

	clip := clone.Clips[0]
	if clip.Locked != nil || clip.SourceDuration != nil || clip.TransitionToNext != nil {
		t.Errorf("absent optional fields materialized: %#v", clip)
	}
	if clone.Tracks != nil || clone.Markers != nil || clone.Groups != nil || clone.Output != nil {
		t.Error("absent collections materialized")
	}
}

func TestTimelineEnd(t *testing.T) {
	clip := timeline.Clip{Start: 2, End: 8, TimelinePosition: 5}
	if got := clip.TimelineEnd(); got != 11 {
		t.Errorf("TimelineEnd = %v, want 11", got)
	}
}

func TestDuration(t *testing.T) {
	tl := sampleTimeline()
	if got := tl.Duration(); got != 14 {
		t.Errorf("Duration = %v, want 14", got)
	}

	empty := &timeline.Timeline{ProjectID: "p"}
	if got := empty.Duration(); got != 0 {
		t.Errorf("Duration of empty timeline = %v, want 0", got)
	}
}
