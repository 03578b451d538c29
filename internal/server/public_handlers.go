package server

import (
	"net/http"
	"time"
)

// handlePublicData serves the full menu snapshot the public site renders
// from. dataVersion lets clients detect stale cached copies without
// diffing the payload.
func (s *Server) handlePublicData(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.public.Snapshot(r.Context())
	if err != nil {
		respondError(w, err, "Snapshot not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"settings":    settingsOrEmpty(snapshot.Settings),
		"categories":  snapshot.Categories,
		"items":       snapshot.Items,
		"dataVersion": snapshot.DataVersion,
		"lastUpdated": snapshot.LastUpdated.Format(time.RFC3339),
	})
}

// handlePublicVersion is the cheap polling probe: clients compare
// dataVersion with their cached snapshot and refetch on mismatch.
func (s *Server) handlePublicVersion(w http.ResponseWriter, r *http.Request) {
	dataVersion, err := s.public.Version(r.Context())
	if err != nil {
		respondError(w, err, "Version not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"dataVersion": dataVersion,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
