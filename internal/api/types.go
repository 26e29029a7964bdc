package api

import (
	"time"

	"cutline/internal/editor"
	"cutline/internal/projectstore"
	"cutline/internal/timeline"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	UptimeS int64  `json:"uptimeS"`
}

type projectResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	Timeline  *timeline.Timeline `json:"timeline,omitempty"`
}

func projectToResponse(p *projectstore.Project) projectResponse {
	return projectResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Timeline:  p.Timeline,
	}
}

func summaryToResponse(s projectstore.Summary) projectResponse {
	return projectResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

type createProjectRequest struct {
	Name string `json:"name"`
}

type timelineResponse struct {
	Timeline *timeline.Timeline `json:"timeline"`
	CanUndo  bool               `json:"canUndo"`
	CanRedo  bool               `json:"canRedo"`
}

type clipUpdateRequest struct {
	AssetID          *string              `json:"assetId"`
	FilePath         *string              `json:"filePath"`
	Mime             *string              `json:"mime"`
	Start            *float64             `json:"start"`
	End              *float64             `json:"end"`
	SourceDuration   *float64             `json:"sourceDuration"`
	TimelinePosition *float64             `json:"timelinePosition"`
	TrackIndex       *int                 `json:"trackIndex"`
	TransitionToNext *timeline.Transition `json:"transitionToNext"`
	Crop             *timeline.Crop       `json:"crop"`
	Volume           *float64             `json:"volume"`
	Opacity          *float64             `json:"opacity"`
	Speed            *float64             `json:"speed"`
}

func (r clipUpdateRequest) toUpdate() editor.ClipUpdate {
	return editor.ClipUpdate{
		AssetID:          r.AssetID,
		FilePath:         r.FilePath,
		Mime:             r.Mime,
		Start:            r.Start,
		End:              r.End,
		SourceDuration:   r.SourceDuration,
		TimelinePosition: r.TimelinePosition,
		TrackIndex:       r.TrackIndex,
		TransitionToNext: r.TransitionToNext,
		Crop:             r.Crop,
		Volume:           r.Volume,
		Opacity:          r.Opacity,
		Speed:            r.Speed,
	}
}

type splitClipRequest struct {
	Time float64 `json:"time"`
}

type createGroupRequest struct {
	ClipIDs []string `json:"clipIds"`
	Name    string   `json:"name"`
}

type createGroupResponse struct {
	GroupID  string             `json:"groupId"`
	Timeline *timeline.Timeline `json:"timeline"`
}
