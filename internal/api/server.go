package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"cutline/internal/config"
	"cutline/internal/projectstore"
	"cutline/internal/session"
)

// Server routes editing requests onto per-project sessions.
type Server struct {
	store  *projectstore.Store
	cfg    *config.Config
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*session.Session
}

// NewServer constructs a server over the given store.
func NewServer(store *projectstore.Store, cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		store:    store,
		cfg:      cfg,
		logger:   logger.With("component", "api"),
		sessions: make(map[string]*session.Session),
	}
}

// Router builds the chi router with all editing routes mounted.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(recoveryMiddleware(s.logger))
	r.Use(loggingMiddleware(s.logger))

	r.Get("/health", s.handleHealth)

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", s.handleListProjects)
		r.Post("/", s.handleCreateProject)

		r.Route("/{projectID}", func(r chi.Router) {
			r.Get("/", s.handleGetProject)
			r.Delete("/", s.handleDeleteProject)

			r.Get("/timeline", s.handleGetTimeline)
			r.Put("/timeline", s.handlePutTimeline)

			r.Post("/undo", s.handleUndo)
			r.Post("/redo", s.handleRedo)

			r.Post("/clips", s.handleAddClip)
			r.Patch("/clips/{clipID}", s.handleUpdateClip)
			r.Delete("/clips/{clipID}", s.handleRemoveClip)
			r.Post("/clips/{clipID}/split", s.handleSplitClip)
			r.Post("/clips/{clipID}/lock", s.handleLockClip)
			r.Delete("/clips/{clipID}/lock", s.handleUnlockClip)

			r.Post("/markers", s.handleAddMarker)
			r.Delete("/markers/{markerID}", s.handleRemoveMarker)

			r.Post("/groups", s.handleCreateGroup)
			r.Delete("/groups/{groupID}", s.handleDeleteGroup)
		})
	})

	return r
}

// sessionFor returns the project's editing session, creating and loading it
// on first use.
func (s *Server) sessionFor(ctx context.Context, projectID string) (*session.Session, error) {
	s.mu.Lock()
	if sess, ok := s.sessions[projectID]; ok {
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	project, err := s.store.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, nil
	}

	sess := session.New(session.Options{
		HistoryLimit: s.cfg.History.MaxDepth,
		Debounce:     time.Duration(s.cfg.History.DebounceMS) * time.Millisecond,
		Logger:       s.logger,
	})
	sess.Load(project.Timeline)

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.sessions[projectID]; ok {
		return existing, nil
	}
	s.sessions[projectID] = sess
	return sess, nil
}

// dropSession forgets a project's in-memory session, e.g. after deletion.
func (s *Server) dropSession(projectID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[projectID]; ok {
		sess.Close()
		delete(s.sessions, projectID)
	}
}

// persist writes the session's current timeline back to the store.
func (s *Server) persist(ctx context.Context, projectID string, sess *session.Session) error {
	tl := sess.Timeline()
	if tl == nil {
		return nil
	}
	if err := s.store.SaveTimeline(ctx, projectID, tl); err != nil {
		return fmt.Errorf("persist project %s: %w", projectID, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, into any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(into); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
