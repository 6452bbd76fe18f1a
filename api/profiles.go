package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

type ProfilesHandler struct {
	profileRepo repository.ProfileRepo
}

func NewProfilesHandler(pr repository.ProfileRepo) *ProfilesHandler {
	return &ProfilesHandler{profileRepo: pr}
}

func (h *ProfilesHandler) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileRepo.GetProfileByID(r.Context(), profileIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "failed to load profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	writeJSON(w, profile, http.StatusOK)
}

type updateProfileRequest struct {
	FullName  string `json:"full_name"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatar_url"`
}

// UpdateMe edits the caller's display fields. Email and role are immutable.
func (h *ProfilesHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	profile, err := h.profileRepo.GetProfileByID(ctx, profileIDFromContext(ctx))
	if err != nil {
		http.Error(w, "failed to load profile", http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	profile.FullName = strings.TrimSpace(req.FullName)
	profile.Bio = req.Bio
	profile.Location = req.Location
	profile.Phone = req.Phone
	profile.AvatarURL = req.AvatarURL

	if err := h.profileRepo.UpdateProfile(ctx, profile); err != nil {
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	writeJSON(w, profile, http.StatusOK)
}

// List is the member directory behind the find-investors and find-clients
// views; role filters to one of the four roles.
func (h *ProfilesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	role := models.Role(q.Get("role"))
	if !role.Valid() {
		http.Error(w, "role is required", http.StatusBadRequest)
		return
	}

	limit := 50
	if l := q.Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 200 {
			limit = v
		}
	}

	profiles, err := h.profileRepo.ListProfilesByRole(r.Context(), role, limit)
	if err != nil {
		http.Error(w, "failed to list profiles", http.StatusInternalServerError)
		return
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}

	writeJSON(w, profiles, http.StatusOK)
}
