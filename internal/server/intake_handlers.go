package server

import (
	"encoding/json"
	"net/http"

	"github.com/boramrl-25/limon-backend/internal/models"
)

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var create models.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	order, err := s.intake.PlaceOrder(r.Context(), &create)
	if err != nil {
		respondError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"order_id": order.ID.Hex(),
		"message":  "Order placed successfully",
	})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.intake.ListOrders(r.Context())
	if err != nil {
		respondError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if err := s.intake.UpdateOrderStatus(r.Context(), r.PathValue("id"), status); err != nil {
		respondError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Order status updated to " + status})
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.intake.DeleteOrder(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, err, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Order deleted"})
}

func (s *Server) handleSubmitContact(w http.ResponseWriter, r *http.Request) {
	var create models.ContactMessageCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	message, err := s.intake.SubmitContactMessage(r.Context(), &create)
	if err != nil {
		respondError(w, err, "Message not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Message sent successfully",
		"id":      message.ID.Hex(),
	})
}

func (s *Server) handleListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := s.intake.ListContactMessages(r.Context())
	if err != nil {
		respondError(w, err, "Message not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

func (s *Server) handleMarkContactRead(w http.ResponseWriter, r *http.Request) {
	if err := s.intake.MarkContactMessageRead(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, err, "Message not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Message marked as read"})
}

func (s *Server) handleDeleteContactMessage(w http.ResponseWriter, r *http.Request) {
	if err := s.intake.DeleteContactMessage(r.Context(), r.PathValue("id")); err != nil {
		respondError(w, err, "Message not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Message deleted"})
}
