package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

type InvestmentsHandler struct {
	investmentRepo repository.InvestmentRepo
	ideaRepo       repository.IdeaRepo
}

func NewInvestmentsHandler(inr repository.InvestmentRepo, ir repository.IdeaRepo) *InvestmentsHandler {
	return &InvestmentsHandler{investmentRepo: inr, ideaRepo: ir}
}

type investRequest struct {
	Amount float64 `json:"amount"`
}

type investResponse struct {
	ID              string  `json:"id"`
	FundingReceived float64 `json:"funding_received"`
}

// Invest commits a funding amount against an idea. The investment row and
// the idea's funding_received move together in one transaction, and the
// echoed total is the committed value rather than a client-side sum.
func (h *InvestmentsHandler) Invest(w http.ResponseWriter, r *http.Request) {
	ideaID := mux.Vars(r)["id"]

	var req investRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Amount <= 0 {
		http.Error(w, "enter a valid amount", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	idea, err := h.ideaRepo.GetIdeaByID(ctx, ideaID)
	if err != nil {
		http.Error(w, "failed to load idea", http.StatusInternalServerError)
		return
	}
	if idea == nil {
		http.Error(w, "idea not found", http.StatusNotFound)
		return
	}

	inv := &models.Investment{
		IdeaID:     ideaID,
		InvestorID: profileIDFromContext(ctx),
		Amount:     req.Amount,
		Status:     "completed",
	}

	id, total, err := h.investmentRepo.CommitInvestment(ctx, inv)
	if err != nil {
		http.Error(w, "failed to commit investment", http.StatusInternalServerError)
		return
	}

	writeJSON(w, investResponse{ID: id, FundingReceived: total}, http.StatusCreated)
}

type portfolioResponse struct {
	Investments       []models.Investment `json:"investments"`
	TotalInvested     float64             `json:"total_invested"`
	ActiveInvestments int                 `json:"active_investments"`
}

// Portfolio lists the caller's investments with derived totals.
func (h *InvestmentsHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	invs, err := h.investmentRepo.ListInvestmentsByInvestor(r.Context(), profileIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "failed to list investments", http.StatusInternalServerError)
		return
	}
	if invs == nil {
		invs = []models.Investment{}
	}

	resp := portfolioResponse{Investments: invs}
	for _, inv := range invs {
		resp.TotalInvested += inv.Amount
		if inv.Status == "completed" {
			resp.ActiveInvestments++
		}
	}

	writeJSON(w, resp, http.StatusOK)
}
