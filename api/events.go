package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

type EventsHandler struct {
	eventRepo repository.EventRepo
}

func NewEventsHandler(er repository.EventRepo) *EventsHandler {
	return &EventsHandler{eventRepo: er}
}

func validEventType(t string) bool {
	switch t {
	case "webinar", "networking", "conference":
		return true
	}
	return false
}

// ListUpcoming returns future events in date order, optionally filtered by
// type (webinar, networking, conference).
func (h *EventsHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	eventType := r.URL.Query().Get("type")
	if eventType != "" && !validEventType(eventType) {
		http.Error(w, "invalid event_type", http.StatusBadRequest)
		return
	}

	events, err := h.eventRepo.ListUpcomingEvents(r.Context(), eventType, time.Now().UTC().UnixMilli())
	if err != nil {
		http.Error(w, "failed to list events", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []models.EventWithOrganizer{}
	}

	writeJSON(w, events, http.StatusOK)
}

type createEventRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EventType       string `json:"event_type"`
	EventDate       int64  `json:"event_date"`
	DurationMinutes int64  `json:"duration_minutes"`
	MaxParticipants int64  `json:"max_participants"`
	RegistrationURL string `json:"registration_url"`
}

type createEventResponse struct {
	ID string `json:"id"`
}

func (h *EventsHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}
	if req.EventDate <= 0 {
		http.Error(w, "event_date is required", http.StatusBadRequest)
		return
	}
	if !validEventType(req.EventType) {
		http.Error(w, "invalid event_type", http.StatusBadRequest)
		return
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = 60
	}

	e := &models.Event{
		OrganizerID:     profileIDFromContext(r.Context()),
		Title:           req.Title,
		Description:     req.Description,
		EventType:       req.EventType,
		EventDate:       req.EventDate,
		DurationMinutes: req.DurationMinutes,
		MaxParticipants: req.MaxParticipants,
		RegistrationURL: req.RegistrationURL,
	}

	id, err := h.eventRepo.CreateEvent(r.Context(), e)
	if err != nil {
		http.Error(w, "failed to store event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createEventResponse{ID: id}, http.StatusCreated)
}

type registerResponse struct {
	ID string `json:"id"`
}

func (h *EventsHandler) Register(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	reg := &models.EventRegistration{
		EventID: eventID,
		UserID:  profileIDFromContext(r.Context()),
	}

	id, err := h.eventRepo.CreateRegistration(r.Context(), reg)
	if err != nil {
		if err == repository.ErrDuplicate {
			http.Error(w, "You are already registered for this event", http.StatusConflict)
			return
		}
		http.Error(w, "failed to register for event", http.StatusInternalServerError)
		return
	}

	writeJSON(w, registerResponse{ID: id}, http.StatusCreated)
}
