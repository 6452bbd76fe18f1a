package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/projexi/projexi/internal/inbox"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

type MessagesHandler struct {
	messageRepo repository.MessageRepo
	profileRepo repository.ProfileRepo
}

func NewMessagesHandler(mr repository.MessageRepo, pr repository.ProfileRepo) *MessagesHandler {
	return &MessagesHandler{messageRepo: mr, profileRepo: pr}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
}

type sendMessageResponse struct {
	ID string `json:"id"`
}

func (h *MessagesHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.RecipientID == "" || req.Content == "" {
		http.Error(w, "missing fields", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	recipient, err := h.profileRepo.GetProfileByID(ctx, req.RecipientID)
	if err != nil {
		http.Error(w, "failed to load recipient", http.StatusInternalServerError)
		return
	}
	if recipient == nil {
		http.Error(w, "recipient not found", http.StatusNotFound)
		return
	}

	m := &models.Message{
		SenderID:    profileIDFromContext(ctx),
		RecipientID: req.RecipientID,
		Content:     req.Content,
	}

	id, err := h.messageRepo.CreateMessage(ctx, m)
	if err != nil {
		http.Error(w, "failed to store message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, sendMessageResponse{ID: id}, http.StatusCreated)
}

// Conversations folds the caller's full message history into one summary
// per counterpart, most recently active first, and decorates each with the
// counterpart's name and avatar.
func (h *MessagesHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := profileIDFromContext(ctx)

	msgs, err := h.messageRepo.ListMessagesForUser(ctx, userID)
	if err != nil {
		http.Error(w, "failed to list messages", http.StatusInternalServerError)
		return
	}

	convs := inbox.Aggregate(userID, msgs)

	ids := make([]string, 0, len(convs))
	for _, c := range convs {
		ids = append(ids, c.UserID)
	}
	profiles, err := h.profileRepo.ListProfilesByIDs(ctx, ids)
	if err != nil {
		logger.Error("failed to load counterpart profiles", slog.Any("err", err))
	}
	byID := make(map[string]models.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	for i := range convs {
		if p, ok := byID[convs[i].UserID]; ok {
			convs[i].UserName = p.FullName
			convs[i].UserAvatar = p.AvatarURL
		}
	}

	writeJSON(w, convs, http.StatusOK)
}

// Thread returns the full exchange with one user, oldest first, and marks
// their messages to the caller as read.
func (h *MessagesHandler) Thread(w http.ResponseWriter, r *http.Request) {
	otherID := mux.Vars(r)["userID"]
	ctx := r.Context()
	userID := profileIDFromContext(ctx)

	msgs, err := h.messageRepo.ListThread(ctx, userID, otherID)
	if err != nil {
		http.Error(w, "failed to list messages", http.StatusInternalServerError)
		return
	}
	if msgs == nil {
		msgs = []models.Message{}
	}

	if err := h.messageRepo.MarkThreadRead(ctx, userID, otherID); err != nil {
		logger.Error("failed to mark thread read", slog.String("sender", otherID), slog.Any("err", err))
	}

	writeJSON(w, msgs, http.StatusOK)
}
