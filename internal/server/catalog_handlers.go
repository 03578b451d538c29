package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.catalog.ListCategories(r.Context())
	if err != nil {
		respondError(w, err, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var create models.CategoryCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	category, err := s.catalog.CreateCategory(r.Context(), &create)
	if err != nil {
		respondError(w, err, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"category": category})
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var patch models.CategoryPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	category, err := s.catalog.UpdateCategory(r.Context(), r.PathValue("id"), &patch)
	if err != nil {
		respondError(w, err, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"category": category})
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, err, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Category deleted"})
}

func (s *Server) handleReorderCategories(w http.ResponseWriter, r *http.Request) {
	var entries []models.ReorderEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := s.catalog.ReorderCategories(r.Context(), entries); err != nil {
		respondError(w, err, "Category not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Categories reordered"})
}

func (s *Server) handleListMenuItems(w http.ResponseWriter, r *http.Request) {
	filter := storage.MenuItemFilter{CategoryID: r.URL.Query().Get("category_id")}
	if v := r.URL.Query().Get("published_only"); v != "" {
		publishedOnly, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid published_only value")
			return
		}
		filter.PublishedOnly = publishedOnly
	}

	items, err := s.catalog.ListMenuItems(r.Context(), filter)
	if err != nil {
		respondError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleGetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.catalog.GetMenuItem(r.Context(), r.PathValue("id"))
	if err != nil {
		respondError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": item})
}

func (s *Server) handleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var create models.MenuItemCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := s.catalog.CreateMenuItem(r.Context(), &create)
	if err != nil {
		respondError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": item})
}

func (s *Server) handleUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var patch models.MenuItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := s.catalog.UpdateMenuItem(r.Context(), r.PathValue("id"), &patch)
	if err != nil {
		respondError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": item})
}

func (s *Server) handleDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.DeleteMenuItem(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Item deleted"})
}

func (s *Server) handleTogglePublish(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	published, err := s.catalog.TogglePublish(r.Context(), id)
	if err != nil {
		respondError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item_id": id, "is_published": published})
}

func (s *Server) handleReorderMenuItems(w http.ResponseWriter, r *http.Request) {
	var entries []models.ReorderEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := s.catalog.ReorderMenuItems(r.Context(), entries); err != nil {
		respondError(w, err, "Item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Menu items reordered"})
}
