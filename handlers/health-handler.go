package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"profile-service/middleware"
)

type JSONResponse map[string]interface{}

// HealthHandler reports liveness and how many seeded profiles are loaded.
func (h *ProfileHandler) HealthHandler(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json")

	ids, err := h.profiles.IDs(r.Context())
	if err != nil {
		log.Printf("profile store error: %v", err)
		return middleware.NewAppError(http.StatusInternalServerError, "Internal server error", err)
	}

	json.NewEncoder(w).Encode(JSONResponse{"status": "ok", "profiles": len(ids)})
	return nil
}
