package api

import (
	"net/http"

	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

type AdminHandler struct {
	statsRepo   repository.StatsRepo
	profileRepo repository.ProfileRepo
}

func NewAdminHandler(sr repository.StatsRepo, pr repository.ProfileRepo) *AdminHandler {
	return &AdminHandler{statsRepo: sr, profileRepo: pr}
}

// Stats returns the exact-count block for the admin dashboard.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.collectStats(r)
	if err != nil {
		http.Error(w, "failed to collect stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

func (h *AdminHandler) collectStats(r *http.Request) (*models.PlatformStats, error) {
	ctx := r.Context()
	var stats models.PlatformStats
	var err error

	if stats.TotalUsers, err = h.statsRepo.CountProfiles(ctx, ""); err != nil {
		return nil, err
	}
	if stats.Entrepreneurs, err = h.statsRepo.CountProfiles(ctx, models.RoleEntrepreneur); err != nil {
		return nil, err
	}
	if stats.Investors, err = h.statsRepo.CountProfiles(ctx, models.RoleInvestor); err != nil {
		return nil, err
	}
	if stats.Dealers, err = h.statsRepo.CountProfiles(ctx, models.RoleDealer); err != nil {
		return nil, err
	}
	if stats.TotalIdeas, err = h.statsRepo.CountIdeas(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = h.statsRepo.CountProducts(ctx); err != nil {
		return nil, err
	}
	if stats.TotalInvestments, err = h.statsRepo.CountInvestments(ctx); err != nil {
		return nil, err
	}
	if stats.TotalMessages, err = h.statsRepo.CountMessages(ctx); err != nil {
		return nil, err
	}
	if stats.TotalEvents, err = h.statsRepo.CountEvents(ctx); err != nil {
		return nil, err
	}
	if stats.CommunityPosts, err = h.statsRepo.CountPosts(ctx); err != nil {
		return nil, err
	}

	return &stats, nil
}

// RecentUsers lists the 10 most recently created profiles.
func (h *AdminHandler) RecentUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileRepo.ListRecentProfiles(r.Context(), 10)
	if err != nil {
		http.Error(w, "failed to list users", http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	writeJSON(w, profiles, http.StatusOK)
}
