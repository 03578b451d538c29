package server

import (
	"net/http"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	filename, err := s.uploads.Save(header.Filename, file)
	if err != nil {
		s.logger.Error("Failed to store upload", "filename", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	s.logger.Info("File uploaded", "filename", filename)
	writeJSON(w, http.StatusOK, map[string]any{
		"url":      "uploads/" + filename,
		"filename": filename,
	})
}
