package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"profile-service/config"
	"profile-service/middleware"
	"profile-service/models"
	"profile-service/store"

	"github.com/gorilla/mux"
)

var sleep = time.Sleep

// emailPattern accepts local-part@domain.tld; anything stricter is out of
// scope for a mock backend.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ProfileHandler struct {
	cfg      config.Config
	profiles store.ProfileStore
}

func NewProfileHandler(cfg config.Config, profiles store.ProfileStore) *ProfileHandler {
	return &ProfileHandler{cfg: cfg, profiles: profiles}
}

// GetProfileHandler serves GET /api/users/{userId}. The configured fetch
// delay runs after the lookup so unknown ids fail fast.
func (h *ProfileHandler) GetProfileHandler(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	userID := mux.Vars(r)["userId"]

	profile, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		return profileLookupError(userID, err)
	}

	sleep(h.cfg.Latency.FetchDelay)

	json.NewEncoder(w).Encode(profile)
	return nil
}

// UpdateProfileHandler serves PUT /api/users/{userId}. Validation failures
// never touch the store; a successful update replaces the stored record
// whole, with omitted optional fields normalized to absent.
func (h *ProfileHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	userID := mux.Vars(r)["userId"]

	if _, err := h.profiles.Get(r.Context(), userID); err != nil {
		return profileLookupError(userID, err)
	}

	var payload models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Invalid request payload", err)
	}

	email := strings.TrimSpace(payload.Email)
	firstName := strings.TrimSpace(payload.FirstName)
	lastName := strings.TrimSpace(payload.LastName)

	if email == "" || firstName == "" || lastName == "" {
		return middleware.NewAppError(http.StatusBadRequest, "Email, first name and last name are required", nil)
	}
	if !emailPattern.MatchString(email) {
		return middleware.NewAppError(http.StatusBadRequest, fmt.Sprintf("Invalid email address: %s", email), nil)
	}

	sleep(h.cfg.Latency.UpdateDelay)

	updated := models.UserProfile{
		ID:          userID,
		Email:       email,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: normalizeOptional(payload.PhoneNumber),
		Bio:         normalizeOptional(payload.Bio),
	}

	if err := h.profiles.Put(r.Context(), updated); err != nil {
		return profileLookupError(userID, err)
	}

	json.NewEncoder(w).Encode(updated)
	return nil
}

func profileLookupError(userID string, err error) error {
	if errors.Is(err, store.ErrProfileNotFound) {
		return middleware.NewAppError(http.StatusNotFound, fmt.Sprintf("User with id %s not found", userID), err)
	}
	log.Printf("profile store error: %v", err)
	return middleware.NewAppError(http.StatusInternalServerError, "Internal server error", err)
}

// normalizeOptional maps nil and whitespace-only values to absent.
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
