package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

type ConnectionsHandler struct {
	connectionRepo repository.ConnectionRepo
}

func NewConnectionsHandler(cr repository.ConnectionRepo) *ConnectionsHandler {
	return &ConnectionsHandler{connectionRepo: cr}
}

// List backs the partnerships view: every connection the caller requested
// or received, newest first.
func (h *ConnectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	conns, err := h.connectionRepo.ListConnectionsForUser(r.Context(), profileIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "failed to list connections", http.StatusInternalServerError)
		return
	}
	if conns == nil {
		conns = []models.Connection{}
	}

	writeJSON(w, conns, http.StatusOK)
}

type createConnectionRequest struct {
	RecipientID string `json:"recipient_id"`
}

type createConnectionResponse struct {
	ID string `json:"id"`
}

func (h *ConnectionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	requesterID := profileIDFromContext(r.Context())
	if req.RecipientID == "" || req.RecipientID == requesterID {
		http.Error(w, "invalid recipient", http.StatusBadRequest)
		return
	}

	c := &models.Connection{
		RequesterID: requesterID,
		RecipientID: req.RecipientID,
		Status:      models.ConnectionPending,
	}

	id, err := h.connectionRepo.CreateConnection(r.Context(), c)
	if err != nil {
		http.Error(w, "failed to store connection", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createConnectionResponse{ID: id}, http.StatusCreated)
}

type updateConnectionRequest struct {
	Status string `json:"status"`
}

// UpdateStatus lets the recipient accept or reject a pending request.
func (h *ConnectionsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Status != models.ConnectionAccepted && req.Status != models.ConnectionRejected {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	conn, err := h.connectionRepo.GetConnectionByID(ctx, id)
	if err != nil {
		http.Error(w, "failed to load connection", http.StatusInternalServerError)
		return
	}
	if conn == nil {
		http.Error(w, "connection not found", http.StatusNotFound)
		return
	}
	if conn.RecipientID != profileIDFromContext(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.connectionRepo.UpdateConnectionStatus(ctx, id, req.Status); err != nil {
		http.Error(w, "failed to update connection", http.StatusInternalServerError)
		return
	}

	conn.Status = req.Status
	writeJSON(w, conn, http.StatusOK)
}
