package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/gorilla/mux"
	"github.com/projexi/projexi/internal/ranking"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

type IdeasHandler struct {
	ideaRepo repository.IdeaRepo
}

func NewIdeasHandler(ir repository.IdeaRepo) *IdeasHandler {
	return &IdeasHandler{ideaRepo: ir}
}

type postIdeaRequest struct {
	Title       string  `json:"title"`
	Industry    string  `json:"industry"`
	Description string  `json:"description"`
	FundingGoal float64 `json:"funding_goal"`
}

type postIdeaResponse struct {
	ID string `json:"id"`
}

func (h *IdeasHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var req postIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Industry = strings.TrimSpace(req.Industry)
	if req.Title == "" || req.Industry == "" {
		http.Error(w, "missing fields", http.StatusBadRequest)
		return
	}
	if req.FundingGoal <= 0 {
		http.Error(w, "funding_goal must be positive", http.StatusBadRequest)
		return
	}

	idea := &models.Idea{
		EntrepreneurID:  profileIDFromContext(r.Context()),
		Title:           req.Title,
		Description:     req.Description,
		Industry:        req.Industry,
		FundingGoal:     req.FundingGoal,
		FundingReceived: 0,
		Status:          "active",
	}

	id, err := h.ideaRepo.CreateIdea(r.Context(), idea)
	if err != nil {
		http.Error(w, "failed to store idea", http.StatusInternalServerError)
		return
	}

	writeJSON(w, postIdeaResponse{ID: id}, http.StatusCreated)
}

// ListActive backs the opportunities view: active ideas, newest first.
func (h *IdeasHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}

	ideas, err := h.ideaRepo.ListActiveIdeas(r.Context(), limit)
	if err != nil {
		http.Error(w, "failed to list ideas", http.StatusInternalServerError)
		return
	}
	if ideas == nil {
		ideas = []models.Idea{}
	}

	writeJSON(w, ideas, http.StatusOK)
}

func (h *IdeasHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.ideaRepo.ListIdeasByEntrepreneur(r.Context(), profileIDFromContext(r.Context()), 100)
	if err != nil {
		http.Error(w, "failed to list ideas", http.StatusInternalServerError)
		return
	}
	if ideas == nil {
		ideas = []models.Idea{}
	}

	writeJSON(w, ideas, http.StatusOK)
}

type ideaDetailResponse struct {
	models.Idea
	Progress float64 `json:"progress"`
}

// GetIdea returns one idea with its funded percentage and counts the view.
func (h *IdeasHandler) GetIdea(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	idea, err := h.ideaRepo.GetIdeaByID(r.Context(), id)
	if err != nil {
		http.Error(w, "failed to load idea", http.StatusInternalServerError)
		return
	}
	if idea == nil {
		http.Error(w, "idea not found", http.StatusNotFound)
		return
	}

	if err := h.ideaRepo.IncrementIdeaViews(r.Context(), id); err != nil {
		logger.Error("failed to increment idea views", slog.String("idea", id), slog.Any("err", err))
	} else {
		idea.Views++
	}

	writeJSON(w, ideaDetailResponse{
		Idea:     *idea,
		Progress: ranking.Progress(idea.FundingReceived, idea.FundingGoal),
	}, http.StatusOK)
}

// Recommendations ranks active ideas by remaining funding gap, descending;
// ties keep the fetch order (newest first).
func (h *IdeasHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.ideaRepo.ListActiveIdeas(r.Context(), 100)
	if err != nil {
		http.Error(w, "failed to list ideas", http.StatusInternalServerError)
		return
	}

	ranked := ranking.Rank(ideas)
	if ranked == nil {
		ranked = []ranking.ScoredIdea{}
	}

	writeJSON(w, ranked, http.StatusOK)
}
