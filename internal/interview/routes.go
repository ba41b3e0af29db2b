package interview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adsun-ai/adsun/internal/analyzer"
	"github.com/adsun-ai/adsun/internal/process"
)

// Registry tracks interview sessions by ID. Each session itself is
// single-threaded; the registry mutex only guards the map.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	analyzer *analyzer.Analyzer
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: map[string]*Session{},
		analyzer: analyzer.New(),
	}
}

// StartSession creates a session, returning its ID and welcome text.
func (r *Registry) StartSession(documenterName string) (string, string) {
	session := NewSession(r.analyzer)
	welcome := session.Start(documenterName)

	id := uuid.New().String()
	r.mu.Lock()
	r.sessions[id] = session
	r.mu.Unlock()

	return id, welcome
}

// Get returns the session with the given ID, or nil.
func (r *Registry) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id]
}

// Remove drops a session from the registry.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

type startRequest struct {
	Name string `json:"name"`
}

type startResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type respondRequest struct {
	Text string `json:"text"`
}

type respondResponse struct {
	Message string `json:"message"`
	Turn    int    `json:"turn"`
	Done    bool   `json:"done"`
}

type finalizeResponse struct {
	Process *process.Record `json:"process"`
}

// RegisterRoutes mounts the interview API: session start, turn
// processing and finalizing the documented process into the store.
func RegisterRoutes(r chi.Router, registry *Registry, store *process.Store) {
	r.Route("/api/interview", func(r chi.Router) {
		r.Post("/start", func(w http.ResponseWriter, req *http.Request) {
			var body startRequest
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Name == "" {
				http.Error(w, `{"error":"name is required"}`, http.StatusBadRequest)
				return
			}

			id, welcome := registry.StartSession(body.Name)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(startResponse{SessionID: id, Message: welcome})
		})

		r.Post("/{id}/respond", func(w http.ResponseWriter, req *http.Request) {
			session := registry.Get(chi.URLParam(req, "id"))
			if session == nil {
				http.Error(w, `{"error":"session not found"}`, http.StatusNotFound)
				return
			}

			var body respondRequest
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}

			message := session.ProcessResponse(body.Text)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(respondResponse{
				Message: message,
				Turn:    session.Turn(),
				Done:    session.Done(),
			})
		})

		r.Post("/{id}/finalize", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			session := registry.Get(id)
			if session == nil {
				http.Error(w, `{"error":"session not found"}`, http.StatusNotFound)
				return
			}

			record := session.Finalize()
			if record.Name == "" {
				http.Error(w, `{"error":"nothing documented yet"}`, http.StatusBadRequest)
				return
			}

			saved, err := store.Create(req.Context(), record)
			if err != nil {
				http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
				return
			}
			registry.Remove(id)

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(finalizeResponse{Process: saved})
		})
	})
}
