package server

import (
	"encoding/json"
	"net/http"

	"github.com/boramrl-25/limon-backend/internal/models"
)

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.GetSettings(r.Context())
	if err != nil {
		respondError(w, err, "Settings not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"settings": settingsOrEmpty(settings)})
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	settings, err := s.settings.UpdateSettings(r.Context(), &patch)
	if err != nil {
		respondError(w, err, "Settings not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"settings": settingsOrEmpty(settings)})
}
