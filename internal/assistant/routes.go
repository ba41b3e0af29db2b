package assistant

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type askRequest struct {
	Query string `json:"query"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// RegisterRoutes mounts the assistant API routes.
func RegisterRoutes(r chi.Router, engine *Engine) {
	r.Post("/api/assistant/ask", func(w http.ResponseWriter, req *http.Request) {
		var body askRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Query == "" {
			http.Error(w, `{"error":"query is required"}`, http.StatusBadRequest)
			return
		}

		answer := engine.Answer(req.Context(), body.Query)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(askResponse{Answer: answer})
	})
}
