package api

import (
	"net/http"

	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

type DashboardHandler struct {
	ideaRepo       repository.IdeaRepo
	investmentRepo repository.InvestmentRepo
	productRepo    repository.ProductRepo
	connectionRepo repository.ConnectionRepo
	admin          *AdminHandler
}

func NewDashboardHandler(
	ir repository.IdeaRepo,
	inr repository.InvestmentRepo,
	pr repository.ProductRepo,
	cr repository.ConnectionRepo,
	admin *AdminHandler,
) *DashboardHandler {
	return &DashboardHandler{
		ideaRepo:       ir,
		investmentRepo: inr,
		productRepo:    pr,
		connectionRepo: cr,
		admin:          admin,
	}
}

// Get dispatches on the caller's role. The switch is exhaustive over the
// closed role set; signup rejects anything else.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	switch roleFromContext(r.Context()) {
	case models.RoleEntrepreneur:
		h.entrepreneur(w, r)
	case models.RoleInvestor:
		h.investor(w, r)
	case models.RoleDealer:
		h.dealer(w, r)
	case models.RoleAdmin:
		h.adminDashboard(w, r)
	default:
		http.Error(w, "unknown role", http.StatusBadRequest)
	}
}

type entrepreneurDashboard struct {
	Ideas             []models.Idea `json:"ideas"`
	TotalIdeas        int           `json:"total_ideas"`
	TotalViews        int64         `json:"total_views"`
	TotalFunding      float64       `json:"total_funding"`
	ActiveConnections int64         `json:"active_connections"`
}

func (h *DashboardHandler) entrepreneur(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := profileIDFromContext(ctx)

	ideas, err := h.ideaRepo.ListIdeasByEntrepreneur(ctx, userID, 5)
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}
	if ideas == nil {
		ideas = []models.Idea{}
	}

	d := entrepreneurDashboard{Ideas: ideas, TotalIdeas: len(ideas)}
	for _, i := range ideas {
		d.TotalViews += i.Views
		d.TotalFunding += i.FundingReceived
	}

	if d.ActiveConnections, err = h.connectionRepo.CountAcceptedConnections(ctx, userID); err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}

	writeJSON(w, d, http.StatusOK)
}

type investorDashboard struct {
	ActiveInvestments int           `json:"active_investments"`
	TotalInvested     float64       `json:"total_invested"`
	Opportunities     int           `json:"opportunities"`
	RecentIdeas       []models.Idea `json:"recent_ideas"`
}

func (h *DashboardHandler) investor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invs, err := h.investmentRepo.ListInvestmentsByInvestor(ctx, profileIDFromContext(ctx))
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}

	var d investorDashboard
	for _, inv := range invs {
		d.TotalInvested += inv.Amount
		if inv.Status == "completed" {
			d.ActiveInvestments++
		}
	}

	ideas, err := h.ideaRepo.ListActiveIdeas(ctx, 6)
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}
	if ideas == nil {
		ideas = []models.Idea{}
	}
	d.RecentIdeas = ideas
	d.Opportunities = len(ideas)

	writeJSON(w, d, http.StatusOK)
}

type dealerDashboard struct {
	Products      []models.Product `json:"products"`
	TotalProducts int              `json:"total_products"`
	Connections   int64            `json:"connections"`
}

func (h *DashboardHandler) dealer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := profileIDFromContext(ctx)

	products, err := h.productRepo.ListProductsByDealer(ctx, userID, 6)
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	d := dealerDashboard{Products: products, TotalProducts: len(products)}
	if d.Connections, err = h.connectionRepo.CountAcceptedConnections(ctx, userID); err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}

	writeJSON(w, d, http.StatusOK)
}

func (h *DashboardHandler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.collectStats(r)
	if err != nil {
		http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}
