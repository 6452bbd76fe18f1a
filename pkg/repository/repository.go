package repository

import (
	"context"
	"errors"

	"github.com/projexi/projexi/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

// ErrDuplicate is returned when an insert violates a uniqueness constraint
// (duplicate email, double event registration, double like).
var ErrDuplicate = errors.New("duplicate row")

type ProfileRepo interface {
	CreateProfile(ctx context.Context, p *models.Profile) (string, error)
	GetProfileByID(ctx context.Context, id string) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p *models.Profile) error
	ListProfilesByRole(ctx context.Context, role models.Role, limit int) ([]models.Profile, error)
	ListRecentProfiles(ctx context.Context, limit int) ([]models.Profile, error)
	ListProfilesByIDs(ctx context.Context, ids []string) ([]models.Profile, error)
}

type IdeaRepo interface {
	CreateIdea(ctx context.Context, i *models.Idea) (string, error)
	GetIdeaByID(ctx context.Context, id string) (*models.Idea, error)
	ListActiveIdeas(ctx context.Context, limit int) ([]models.Idea, error)
	ListIdeasByEntrepreneur(ctx context.Context, entrepreneurID string, limit int) ([]models.Idea, error)
	IncrementIdeaViews(ctx context.Context, id string) error
}

type InvestmentRepo interface {
	// CommitInvestment inserts the investment row and bumps the idea's
	// funding_received in a single transaction. It returns the new row id
	// and the idea's funding_received as committed.
	CommitInvestment(ctx context.Context, inv *models.Investment) (string, float64, error)
	ListInvestmentsByInvestor(ctx context.Context, investorID string) ([]models.Investment, error)
}

type ProductRepo interface {
	CreateProduct(ctx context.Context, p *models.Product) (string, error)
	ListProductsByDealer(ctx context.Context, dealerID string, limit int) ([]models.Product, error)
}

type MessageRepo interface {
	CreateMessage(ctx context.Context, m *models.Message) (string, error)
	// ListMessagesForUser returns every message where the user is sender or
	// recipient, newest first.
	ListMessagesForUser(ctx context.Context, userID string) ([]models.Message, error)
	// ListThread returns the conversation between two users, oldest first.
	ListThread(ctx context.Context, userID, otherID string) ([]models.Message, error)
	// MarkThreadRead flips the read flag on messages sent by senderID to
	// recipientID.
	MarkThreadRead(ctx context.Context, recipientID, senderID string) error
}

type ConnectionRepo interface {
	CreateConnection(ctx context.Context, c *models.Connection) (string, error)
	GetConnectionByID(ctx context.Context, id string) (*models.Connection, error)
	ListConnectionsForUser(ctx context.Context, userID string) ([]models.Connection, error)
	UpdateConnectionStatus(ctx context.Context, id, status string) error
	CountAcceptedConnections(ctx context.Context, userID string) (int64, error)
}

type CommunityRepo interface {
	CreatePost(ctx context.Context, p *models.CommunityPost) (string, error)
	ListPosts(ctx context.Context, limit int) ([]models.PostWithAuthor, error)
	GetLike(ctx context.Context, postID, userID string) (*models.PostLike, error)
	CreateLike(ctx context.Context, l *models.PostLike) (string, error)
	DeleteLike(ctx context.Context, id string) error
	CountLikes(ctx context.Context, postID string) (int64, error)
}

type EventRepo interface {
	CreateEvent(ctx context.Context, e *models.Event) (string, error)
	// ListUpcomingEvents returns events with event_date >= since, date
	// ascending. eventType filters when non-empty.
	ListUpcomingEvents(ctx context.Context, eventType string, since int64) ([]models.EventWithOrganizer, error)
	// CreateRegistration returns ErrDuplicate when the user is already
	// registered for the event.
	CreateRegistration(ctx context.Context, r *models.EventRegistration) (string, error)
}

type StatsRepo interface {
	// CountProfiles counts all profiles, or only those with the given role
	// when role is non-empty.
	CountProfiles(ctx context.Context, role models.Role) (int64, error)
	CountIdeas(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountInvestments(ctx context.Context) (int64, error)
	CountMessages(ctx context.Context) (int64, error)
	CountEvents(ctx context.Context) (int64, error)
	CountPosts(ctx context.Context) (int64, error)
}
