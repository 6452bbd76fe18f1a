package nav

import "github.com/projexi/projexi/pkg/models"

// Entry is one sidebar navigation item.
type Entry struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// ForRole returns the ordered navigation entries for a role. Every role
// shares the same five base entries in the same relative order; role
// entries are spliced in at fixed positions. An unknown or empty role
// yields the unmodified base list.
func ForRole(role models.Role) []Entry {
	entries := []Entry{
		{Icon: "home", Label: "Dashboard", Path: "/dashboard"},
		{Icon: "message-square", Label: "Messages", Path: "/messages"},
		{Icon: "users", Label: "Community", Path: "/community"},
		{Icon: "calendar", Label: "Events", Path: "/events"},
		{Icon: "settings", Label: "Settings", Path: "/settings"},
	}

	switch role {
	case models.RoleEntrepreneur:
		entries = insert(entries, 1, Entry{Icon: "briefcase", Label: "My Ideas", Path: "/my-ideas"})
		entries = insert(entries, 2, Entry{Icon: "trending-up", Label: "Find Investors", Path: "/find-investors"})
	case models.RoleInvestor:
		entries = insert(entries, 1, Entry{Icon: "briefcase", Label: "Opportunities", Path: "/opportunities"})
		entries = insert(entries, 2, Entry{Icon: "trending-up", Label: "Portfolio", Path: "/portfolio"})
	case models.RoleDealer:
		entries = insert(entries, 1, Entry{Icon: "briefcase", Label: "My Products", Path: "/my-products"})
		entries = insert(entries, 2, Entry{Icon: "trending-up", Label: "Opportunities", Path: "/opportunities"})
		entries = insert(entries, 3, Entry{Icon: "users", Label: "Find Clients", Path: "/find-clients"})
	case models.RoleAdmin:
		entries = insert(entries, 0, Entry{Icon: "shield", Label: "Admin Panel", Path: "/admin"})
	}

	return entries
}

func insert(entries []Entry, pos int, e Entry) []Entry {
	entries = append(entries, Entry{})
	copy(entries[pos+1:], entries[pos:])
	entries[pos] = e
	return entries
}
