package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cutline/internal/session"
	"cutline/internal/timeline"
)

var startTime = time.Now()

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		UptimeS: int64(time.Since(startTime).Seconds()),
	})
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("list projects", "error", err)
		writeError(w, http.StatusInternalServerError, "list projects failed")
		return
	}
	out := make([]projectResponse, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, summaryToResponse(summary))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	tl := &timeline.Timeline{
		Clips: []timeline.Clip{},
		Output: &timeline.Output{
			Width:        s.cfg.Output.Width,
			Height:       s.cfg.Output.Height,
			FPS:          s.cfg.Output.FPS,
			VideoBitrate: s.cfg.Output.VideoBitrate,
			AudioBitrate: s.cfg.Output.AudioBitrate,
			Format:       s.cfg.Output.Format,
		},
	}
	project, err := s.store.Create(r.Context(), req.Name, tl)
	if err != nil {
		s.logger.Error("create project", "error", err)
		writeError(w, http.StatusInternalServerError, "create project failed")
		return
	}
	writeJSON(w, http.StatusCreated, projectToResponse(project))
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	project, err := s.store.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		s.logger.Error("get project", "error", err)
		writeError(w, http.StatusInternalServerError, "get project failed")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, projectToResponse(project))
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")
	if err := s.store.Delete(r.Context(), projectID); err != nil {
		s.logger.Error("delete project", "error", err)
		writeError(w, http.StatusInternalServerError, "delete project failed")
		return
	}
	s.dropSession(projectID)
	w.WriteHeader(http.StatusNoContent)
}

// withSession resolves the project's session and hands it to fn. fn returns
// true when the session mutated and the timeline should be persisted.
func (s *Server) withSession(w http.ResponseWriter, r *http.Request, fn func(sess *session.Session) bool) {
	projectID := chi.URLParam(r, "projectID")
	sess, err := s.sessionFor(r.Context(), projectID)
	if err != nil {
		s.logger.Error("load session", "project", projectID, "error", err)
		writeError(w, http.StatusInternalServerError, "load project failed")
		return
	}
	if sess == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	if fn(sess) {
		if err := s.persist(r.Context(), projectID, sess); err != nil {
			s.logger.Error("persist timeline", "project", projectID, "error", err)
			writeError(w, http.StatusInternalServerError, "persist failed")
			return
		}
	}
	writeJSON(w, http.StatusOK, timelineResponse{
		Timeline: sess.Timeline(),
		CanUndo:  sess.CanUndo(),
		CanRedo:  sess.CanRedo(),
	})
}

func (s *Server) handleGetTimeline(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) bool { return false })
}

func (s *Server) handlePutTimeline(w http.ResponseWriter, r *http.Request) {
	var doc timeline.Timeline
	if !decodeBody(w, r, &doc) {
		return
	}
	s.withSession(w, r, func(sess *session.Session) bool {
		sess.Load(&doc)
		return true
	})
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) bool {
		return sess.Undo()
	})
}

func (s *Server) handleRedo(w http.ResponseWriter, r *http.Request) {
	s.withSession(w, r, func(sess *session.Session) bool {
		return sess.Redo()
	})
}

func (s *Server) handleAddClip(w http.ResponseWriter, r *http.Request) {
	var clip timeline.Clip
	if !decodeBody(w, r, &clip) {
		return
	}
	if clip.ID == "" {
		writeError(w, http.StatusBadRequest, "clip id is required")
		return
	}
	s.withSession(w, r, func(sess *session.Session) bool {
		sess.AddClip(clip)
		return true
	})
}

func (s *Server) handleUpdateClip(w http.ResponseWriter, r *http.Request) {
	var req clipUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	clipID := chi.URLParam(r, "clipID")
	s.withSession(w, r, func(sess *session.Session) bool {
		sess.UpdateClip(clipID, req.toUpdate())
		return true
	})
}

func (s *Server) handleRemoveClip(w http.ResponseWriter, r *http.Request) {
	clipID := chi.URLParam(r, "clipID")
	s.withSession(w, r, func(sess *session.Session) bool {
		sess.RemoveClip(clipID)
		return true
	})
}

func (s *Server) handleSplitClip(w http.ResponseWriter, r *http.Request) {
	var req splitClipRequest
	if !decodeBody(w, r, &req) {
		return
	}
	clipID := chi.URLParam(r, "clipID")
	s.withSession(w, r, func(sess *session.Session) bool {
		sess.SplitClipAtTime(clipID, req.Time)
		return true
	})
}

func (s *Server) handleLockClip(w http.ResponseWriter, r *http.Request) {
	clipID := chi.URLParam(r, "clipID")
	s.withSession(w, r, func(sess *session.Session) bool {
		sess.LockClip(clipID)
		return true
	})
}

func (s *Server) handleUnlockClip(w http.ResponseWriter, r *http.Request) {
	clipID := chi.URLParam(r, "clipID")
	s.withSession(w, r, func(sess *session.Session) bool {
		sess.UnlockClip(clipID)
		return true
	})
}

func (s *Server) handleAddMarker(w http.ResponseWriter, r *http.Request) {
	var marker timeline.Marker
	if !decodeBody(w, r, &marker) {
		return
	}
	if marker.ID == "" {
		writeError(w, http.StatusBadRequest, "marker id is required")
		return
	}
	s.withSession(w, r, func(sess *session.Session) bool {
		sess.AddMarker(marker)
		return true
	})
}

func (s *Server) handleRemoveMarker(w http.ResponseWriter, r *http.Request) {
	markerID := chi.URLParam(r, "markerID")
	s.withSession(w, r, func(sess *session.Session) bool {
		sess.RemoveMarker(markerID)
		return true
	})
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	projectID := chi.URLParam(r, "projectID")
	sess, err := s.sessionFor(r.Context(), projectID)
	if err != nil {
		s.logger.Error("load session", "project", projectID, "error", err)
		writeError(w, http.StatusInternalServerError, "load project failed")
		return
	}
	if sess == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	groupID := sess.GroupSelected(req.ClipIDs, req.Name)
	if groupID == "" {
		writeError(w, http.StatusBadRequest, "grouping requires at least two clips")
		return
	}
	if err := s.persist(r.Context(), projectID, sess); err != nil {
		s.logger.Error("persist timeline", "project", projectID, "error", err)
		writeError(w, http.StatusInternalServerError, "persist failed")
		return
	}
	writeJSON(w, http.StatusCreated, createGroupResponse{GroupID: groupID, Timeline: sess.Timeline()})
}

func (s *Server) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	s.withSession(w, r, func(sess *session.Session) bool {
		sess.Ungroup(groupID)
		return true
	})
}
