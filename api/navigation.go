package api

import (
	"net/http"

	"github.com/projexi/projexi/internal/nav"
)

// Navigation returns the sidebar entries for the caller's role.
func Navigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, nav.ForRole(roleFromContext(r.Context())), http.StatusOK)
}
