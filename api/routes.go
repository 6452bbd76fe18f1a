package api

import (
	"github.com/gorilla/mux"
	"github.com/projexi/projexi/internal/config"
	"github.com/projexi/projexi/internal/db"
	"github.com/projexi/projexi/internal/repository/sqlite"
	"github.com/projexi/projexi/pkg/models"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration)
	profilesHandler := NewProfilesHandler(repo)
	ideasHandler := NewIdeasHandler(repo)
	investmentsHandler := NewInvestmentsHandler(repo, repo)
	productsHandler := NewProductsHandler(repo)
	messagesHandler := NewMessagesHandler(repo, repo)
	communityHandler := NewCommunityHandler(repo)
	eventsHandler := NewEventsHandler(repo)
	connectionsHandler := NewConnectionsHandler(repo)
	adminHandler := NewAdminHandler(repo, repo)
	dashboardHandler := NewDashboardHandler(repo, repo, repo, repo, adminHandler)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// API v1 Protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Auth endpoints
	apiV1.HandleFunc("/auth/signout", authHandler.Signout).Methods("POST")

	// Navigation and dashboard
	apiV1.HandleFunc("/navigation", Navigation).Methods("GET")
	apiV1.HandleFunc("/dashboard", dashboardHandler.Get).Methods("GET")

	// Profiles
	apiV1.HandleFunc("/profiles/me", profilesHandler.Me).Methods("GET")
	apiV1.HandleFunc("/profiles/me", profilesHandler.UpdateMe).Methods("PUT")
	apiV1.HandleFunc("/profiles", profilesHandler.List).Methods("GET")

	// Ideas and recommendations
	apiV1.HandleFunc("/ideas", RequireRoles(ideasHandler.CreateIdea, models.RoleEntrepreneur)).Methods("POST")
	apiV1.HandleFunc("/ideas", ideasHandler.ListActive).Methods("GET")
	apiV1.HandleFunc("/ideas/mine", RequireRoles(ideasHandler.ListMine, models.RoleEntrepreneur)).Methods("GET")
	apiV1.HandleFunc("/ideas/{id}", ideasHandler.GetIdea).Methods("GET")
	apiV1.HandleFunc("/recommendations", ideasHandler.Recommendations).Methods("GET")

	// Investments
	apiV1.HandleFunc("/ideas/{id}/investments", RequireRoles(investmentsHandler.Invest, models.RoleInvestor, models.RoleDealer)).Methods("POST")
	apiV1.HandleFunc("/investments/mine", RequireRoles(investmentsHandler.Portfolio, models.RoleInvestor)).Methods("GET")

	// Products
	apiV1.HandleFunc("/products", RequireRoles(productsHandler.CreateProduct, models.RoleDealer)).Methods("POST")
	apiV1.HandleFunc("/products/mine", RequireRoles(productsHandler.ListMine, models.RoleDealer)).Methods("GET")

	// Messages
	apiV1.HandleFunc("/messages", messagesHandler.Send).Methods("POST")
	apiV1.HandleFunc("/messages/conversations", messagesHandler.Conversations).Methods("GET")
	apiV1.HandleFunc("/messages/{userID}", messagesHandler.Thread).Methods("GET")

	// Community
	apiV1.HandleFunc("/community/posts", communityHandler.ListPosts).Methods("GET")
	apiV1.HandleFunc("/community/posts", communityHandler.CreatePost).Methods("POST")
	apiV1.HandleFunc("/community/posts/{id}/like", communityHandler.ToggleLike).Methods("POST")

	// Events
	apiV1.HandleFunc("/events", eventsHandler.ListUpcoming).Methods("GET")
	apiV1.HandleFunc("/events", eventsHandler.CreateEvent).Methods("POST")
	apiV1.HandleFunc("/events/{id}/register", eventsHandler.Register).Methods("POST")

	// Connections
	apiV1.HandleFunc("/connections", connectionsHandler.List).Methods("GET")
	apiV1.HandleFunc("/connections", connectionsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/connections/{id}", connectionsHandler.UpdateStatus).Methods("PATCH")

	// Admin
	apiV1.HandleFunc("/admin/stats", RequireRoles(adminHandler.Stats, models.RoleAdmin)).Methods("GET")
	apiV1.HandleFunc("/admin/users", RequireRoles(adminHandler.RecentUsers, models.RoleAdmin)).Methods("GET")

	return r
}
