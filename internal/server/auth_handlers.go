package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boramrl-25/limon-backend/internal/auth"
	"github.com/boramrl-25/limon-backend/internal/middleware"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": result.Token,
		"user": map[string]any{
			"id":       result.Admin.ID.Hex(),
			"username": result.Admin.Username,
			"role":     result.Admin.Role,
		},
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": claims})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	oldPassword := r.PostFormValue("old_password")
	newPassword := r.PostFormValue("new_password")

	if err := s.auth.ChangePassword(r.Context(), claims.UserID, oldPassword, newPassword); err != nil {
		if errors.Is(err, auth.ErrInvalidOldPassword) {
			writeError(w, http.StatusBadRequest, "Invalid old password")
			return
		}
		respondError(w, err, "Admin not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Password changed successfully"})
}
