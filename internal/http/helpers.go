package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/scheduler"
	"github.com/everolfe/matchday/internal/syncer"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// respondError maps an error to a status code from its type: validation and
// empty-query errors are the caller's fault, unknown references are 404, a
// partially applied sync plan is a conflict the caller must re-read, and a
// rejection from the backend is a bad gateway.
func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusForError(err), errorResponse{Error: err.Error()})
}

func statusForError(err error) int {
	var partial *syncer.PartialSyncFailure
	var remote *domain.RemoteOpError
	switch {
	case domain.IsValidationError(err),
		errors.Is(err, domain.ErrEmptyQuery),
		errors.Is(err, domain.ErrEmptyRange):
		return http.StatusBadRequest
	case errors.Is(err, scheduler.ErrUnknownArena),
		errors.Is(err, scheduler.ErrUnknownTeam),
		errors.Is(err, scheduler.ErrUnknownPlayer),
		errors.Is(err, scheduler.ErrUnknownMatch):
		return http.StatusNotFound
	case errors.As(err, &partial):
		return http.StatusConflict
	case errors.As(err, &remote):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// intQueryParam parses an optional integer query parameter. A missing or
// blank parameter yields nil.
func intQueryParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &domain.InvalidValueError{Field: name, Reason: "must be an integer"}
	}
	return &v, nil
}

// dateQueryParam parses an optional date query parameter, accepting either a
// bare date or a full local timestamp. A missing parameter yields nil.
func dateQueryParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := domain.ParseLocalTime(raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, &domain.InvalidValueError{Field: name, Reason: "must be YYYY-MM-DD or a local timestamp"}
	}
	return &t, nil
}
