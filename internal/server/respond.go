package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/service"
	"github.com/boramrl-25/limon-backend/internal/storage"
)

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the {"detail": ...} failure envelope.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// respondError translates a service error into the failure envelope.
// notFound names the missing entity for 404 responses.
func respondError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, storage.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, service.ErrNoFields):
		writeError(w, http.StatusBadRequest, "No data to update")
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// settingsOrEmpty substitutes an empty object for absent settings so
// clients always receive a JSON object under the settings key.
func settingsOrEmpty(settings *models.Settings) any {
	if settings == nil {
		return struct{}{}
	}
	return settings
}
