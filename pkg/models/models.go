package models

// Domain models matching the database schema in db/migrations/0001_init.sql

// Role is the account type chosen at signup. It never changes afterwards
// and drives navigation and route guards.
type Role string

const (
	RoleEntrepreneur Role = "entrepreneur"
	RoleInvestor     Role = "investor"
	RoleDealer       Role = "dealer"
	RoleAdmin        Role = "admin"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleEntrepreneur, RoleInvestor, RoleDealer, RoleAdmin:
		return true
	}
	return false
}

type Profile struct {
	ID           string  `json:"id" db:"id"`
	Email        string  `json:"email" db:"email" validate:"required,email"`
	FullName     string  `json:"full_name" db:"full_name"`
	Role         Role    `json:"role" db:"role"`
	AvatarURL    string  `json:"avatar_url,omitempty" db:"avatar_url"`
	Bio          string  `json:"bio,omitempty" db:"bio"`
	Location     string  `json:"location,omitempty" db:"location"`
	Phone        string  `json:"phone,omitempty" db:"phone"`
	Verified     bool    `json:"verified" db:"verified"`
	Rating       float64 `json:"rating" db:"rating"`
	PasswordHash string  `json:"-" db:"password_hash"`
	Created      int64   `json:"created" db:"created"`
	Updated      int64   `json:"updated" db:"updated"`
}

type Idea struct {
	ID              string  `json:"id" db:"id"`
	EntrepreneurID  string  `json:"entrepreneur_id" db:"entrepreneur_id"`
	Title           string  `json:"title" db:"title" validate:"required"`
	Description     string  `json:"description,omitempty" db:"description"`
	Industry        string  `json:"industry" db:"industry"`
	FundingGoal     float64 `json:"funding_goal" db:"funding_goal"`
	FundingReceived float64 `json:"funding_received" db:"funding_received"`
	Status          string  `json:"status" db:"status"`
	Views           int64   `json:"views" db:"views"`
	Created         int64   `json:"created" db:"created"`
}

type Investment struct {
	ID         string  `json:"id" db:"id"`
	IdeaID     string  `json:"idea_id" db:"idea_id"`
	InvestorID string  `json:"investor_id" db:"investor_id"`
	Amount     float64 `json:"amount" db:"amount"`
	Status     string  `json:"status" db:"status"`
	Created    int64   `json:"created" db:"created"`
}

type Product struct {
	ID          string   `json:"id" db:"id"`
	DealerID    string   `json:"dealer_id" db:"dealer_id"`
	Name        string   `json:"name" db:"name" validate:"required"`
	Description string   `json:"description,omitempty" db:"description"`
	Price       float64  `json:"price" db:"price"`
	MOQ         int64    `json:"moq" db:"moq"`
	ImageURLs   []string `json:"image_urls" db:"image_urls"`
	Created     int64    `json:"created" db:"created"`
}

type Message struct {
	ID          string `json:"id" db:"id"`
	SenderID    string `json:"sender_id" db:"sender_id"`
	RecipientID string `json:"recipient_id" db:"recipient_id"`
	Content     string `json:"content" db:"content"`
	Read        bool   `json:"read" db:"read"`
	Created     int64  `json:"created" db:"created"`
}

type Connection struct {
	ID          string `json:"id" db:"id"`
	RequesterID string `json:"requester_id" db:"requester_id"`
	RecipientID string `json:"recipient_id" db:"recipient_id"`
	Status      string `json:"status" db:"status"`
	Created     int64  `json:"created" db:"created"`
}

const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
	ConnectionRejected = "rejected"
)

type CommunityPost struct {
	ID       string `json:"id" db:"id"`
	AuthorID string `json:"author_id" db:"author_id"`
	Content  string `json:"content" db:"content"`
	Created  int64  `json:"created" db:"created"`
}

// PostWithAuthor is a community post joined with its author's public
// profile fields and the current like count.
type PostWithAuthor struct {
	CommunityPost
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar,omitempty"`
	AuthorRole   Role   `json:"author_role"`
	LikesCount   int64  `json:"likes_count"`
}

type PostLike struct {
	ID      string `json:"id" db:"id"`
	PostID  string `json:"post_id" db:"post_id"`
	UserID  string `json:"user_id" db:"user_id"`
	Created int64  `json:"created" db:"created"`
}

type Event struct {
	ID              string `json:"id" db:"id"`
	OrganizerID     string `json:"organizer_id" db:"organizer_id"`
	Title           string `json:"title" db:"title" validate:"required"`
	Description     string `json:"description,omitempty" db:"description"`
	EventType       string `json:"event_type" db:"event_type"`
	EventDate       int64  `json:"event_date" db:"event_date"`
	DurationMinutes int64  `json:"duration_minutes" db:"duration_minutes"`
	MaxParticipants int64  `json:"max_participants" db:"max_participants"`
	RegistrationURL string `json:"registration_url,omitempty" db:"registration_url"`
	Created         int64  `json:"created" db:"created"`
}

// EventWithOrganizer is an event joined with its organizer's name and avatar.
type EventWithOrganizer struct {
	Event
	OrganizerName   string `json:"organizer_name"`
	OrganizerAvatar string `json:"organizer_avatar,omitempty"`
}

type EventRegistration struct {
	ID      string `json:"id" db:"id"`
	EventID string `json:"event_id" db:"event_id"`
	UserID  string `json:"user_id" db:"user_id"`
	Created int64  `json:"created" db:"created"`
}

// PlatformStats is the admin dashboard counter block.
type PlatformStats struct {
	TotalUsers       int64 `json:"total_users"`
	Entrepreneurs    int64 `json:"entrepreneurs"`
	Investors        int64 `json:"investors"`
	Dealers          int64 `json:"dealers"`
	TotalIdeas       int64 `json:"total_ideas"`
	TotalProducts    int64 `json:"total_products"`
	TotalInvestments int64 `json:"total_investments"`
	TotalMessages    int64 `json:"total_messages"`
	TotalEvents      int64 `json:"total_events"`
	CommunityPosts   int64 `json:"community_posts"`
}
