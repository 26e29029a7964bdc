package timeline

// MinClipDuration is the shortest clip the editor will produce, in seconds.
// Every mutation that touches trim points re-establishes this bound.
const MinClipDuration = 0.1

// TransitionType identifies how one clip blends into the next.
type TransitionType string

const (
	TransitionNone     TransitionType = "none"
	TransitionFade     TransitionType = "fade"
	TransitionDissolve TransitionType = "dissolve"
	TransitionWipe     TransitionType = "wipe"
	TransitionSlide    TransitionType = "slide"
)

// Transition describes the blend from a clip into the clip that follows it.
type Transition struct {
	Type     TransitionType `json:"type"`
	Duration float64        `json:"duration"`
}

// Crop is a normalized crop rectangle applied at render time. The editor
// passes it through untouched; validation happens at the API boundary.
type Crop struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Clip is one media segment placed on the timeline. Start and End trim the
// source media in seconds; TimelinePosition and TrackIndex place the trimmed
// segment on the timeline.
type Clip struct {
	ID               string      `json:"id"`
	AssetID          string      `json:"assetId,omitempty"`
	FilePath         string      `json:"filePath,omitempty"`
	Mime             string      `json:"mime,omitempty"`
	Start            float64     `json:"start"`
	End              float64     `json:"end"`
	SourceDuration   *float64    `json:"sourceDuration,omitempty"`
	TimelinePosition float64     `json:"timelinePosition"`
	TrackIndex       int         `json:"trackIndex"`
	Locked           *bool       `json:"locked,omitempty"`
	GroupID          string      `json:"groupId,omitempty"`
	TransitionToNext *Transition `json:"transitionToNext,omitempty"`
	Crop             *Crop       `json:"crop,omitempty"`
	Volume           *float64    `json:"volume,omitempty"`
	Opacity          *float64    `json:"opacity,omitempty"`
	Speed            *float64    `json:"speed,omitempty"`
}

// IsLocked reports whether the clip is locked. An absent Locked field means
// unlocked; only explicit lock/unlock calls ever materialize the field.
func (c *Clip) IsLocked() bool {
	return c.Locked != nil && *c.Locked
}

// TimelineEnd returns the clip's end position on the timeline in seconds.
func (c *Clip) TimelineEnd() float64 {
	return c.TimelinePosition + (c.End - c.Start)
}

// Track is one horizontal row of the timeline. Tracks are created lazily when
// first referenced by index, so the sequence may be sparse.
type Track struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// Marker is a named point of interest on the timeline ruler.
type Marker struct {
	ID    string  `json:"id"`
	Time  float64 `json:"time"`
	Label string  `json:"label"`
	Color string  `json:"color,omitempty"`
}

// TextOverlay is a styled text element shown between StartTime and EndTime.
type TextOverlay struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	StartTime  float64 `json:"startTime"`
	EndTime    float64 `json:"endTime"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	FontSize   float64 `json:"fontSize,omitempty"`
	FontFamily string  `json:"fontFamily,omitempty"`
	Color      string  `json:"color,omitempty"`
}

// Group is a persisted association of clip ids that are selected, locked, and
// moved together. CreatedAt is milliseconds since the Unix epoch.
type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ClipIDs   []string `json:"clipIds"`
	CreatedAt int64    `json:"created_at"`
}

// Output holds the render target configuration. The editor passes it through
// unchanged; the export pipeline consumes it.
type Output struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	FPS          float64 `json:"fps"`
	VideoBitrate int     `json:"videoBitrate,omitempty"`
	AudioBitrate int     `json:"audioBitrate,omitempty"`
	Format       string  `json:"format,omitempty"`
}

// Timeline is the root editable document for one project.
//
// Clips are kept in track/paint order, not time order, and never contain two
// entries with the same id. Tracks, markers, overlays, and groups are created
// lazily by the first mutation that needs them.
type Timeline struct {
	ProjectID    string        `json:"projectId"`
	Clips        []Clip        `json:"clips"`
	Tracks       []Track       `json:"tracks,omitempty"`
	Markers      []Marker      `json:"markers,omitempty"`
	TextOverlays []TextOverlay `json:"textOverlays,omitempty"`
	Groups       []Group       `json:"groups,omitempty"`
	Output       *Output       `json:"output,omitempty"`
}

// ClipByID returns a pointer into the timeline's clip slice, or nil when no
// clip carries the id.
func (t *Timeline) ClipByID(id string) *Clip {
	for i := range t.Clips {
		if t.Clips[i].ID == id {
			return &t.Clips[i]
		}
	}
	return nil
}

// Duration returns the timeline end of the clip that finishes last, or zero
// for an empty timeline.
func (t *Timeline) Duration() float64 {
	var end float64
	for i := range t.Clips {
		if clipEnd := t.Clips[i].TimelineEnd(); clipEnd > end {
			end = clipEnd
		}
	}
	return end
}

// GroupByID returns a pointer into the timeline's group slice, or nil when no
// group carries the id.
func (t *Timeline) GroupByID(id string) *Group {
	for i := range t.Groups {
		if t.Groups[i].ID == id {
			return &t.Groups[i]
		}
	}
	return nil
}
