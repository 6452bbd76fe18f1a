package mock

import (
	"context"
	"fmt"

	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

// In-memory test doubles for the repository interfaces. Each mock keeps
// stored rows in exported fields so tests can seed and inspect state, and
// exposes error fields for failure injection.

type ProfileRepo struct {
	Profiles  []models.Profile
	CreateErr error
	GetErr    error
	UpdateErr error
	ListErr   error
	nextID    int
}

func (m *ProfileRepo) CreateProfile(ctx context.Context, p *models.Profile) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	for _, e := range m.Profiles {
		if e.Email == p.Email {
			return "", repository.ErrDuplicate
		}
	}
	m.nextID++
	p.ID = fmt.Sprintf("profile-%d", m.nextID)
	m.Profiles = append(m.Profiles, *p)
	return p.ID, nil
}

func (m *ProfileRepo) GetProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Profiles {
		if m.Profiles[i].ID == id {
			p := m.Profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *ProfileRepo) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Profiles {
		if m.Profiles[i].Email == email {
			p := m.Profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *ProfileRepo) UpdateProfile(ctx context.Context, p *models.Profile) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Profiles {
		if m.Profiles[i].ID == p.ID {
			m.Profiles[i] = *p
			return nil
		}
	}
	return fmt.Errorf("profile %s not found", p.ID)
}

func (m *ProfileRepo) ListProfilesByRole(ctx context.Context, role models.Role, limit int) ([]models.Profile, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Profile
	for _, p := range m.Profiles {
		if p.Role == role {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *ProfileRepo) ListRecentProfiles(ctx context.Context, limit int) ([]models.Profile, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := m.Profiles
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (m *ProfileRepo) ListProfilesByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Profile
	for _, p := range m.Profiles {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

type IdeaRepo struct {
	Ideas        []models.Idea
	CreateErr    error
	GetErr       error
	ListErr      error
	IncrementErr error
	Incremented  []string
	nextID       int
}

func (m *IdeaRepo) CreateIdea(ctx context.Context, i *models.Idea) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.nextID++
	i.ID = fmt.Sprintf("idea-%d", m.nextID)
	m.Ideas = append(m.Ideas, *i)
	return i.ID, nil
}

func (m *IdeaRepo) GetIdeaByID(ctx context.Context, id string) (*models.Idea, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Ideas {
		if m.Ideas[i].ID == id {
			idea := m.Ideas[i]
			return &idea, nil
		}
	}
	return nil, nil
}

func (m *IdeaRepo) ListActiveIdeas(ctx context.Context, limit int) ([]models.Idea, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Idea
	for _, i := range m.Ideas {
		if i.Status == "active" {
			out = append(out, i)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *IdeaRepo) ListIdeasByEntrepreneur(ctx context.Context, entrepreneurID string, limit int) ([]models.Idea, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Idea
	for _, i := range m.Ideas {
		if i.EntrepreneurID == entrepreneurID {
			out = append(out, i)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *IdeaRepo) IncrementIdeaViews(ctx context.Context, id string) error {
	if m.IncrementErr != nil {
		return m.IncrementErr
	}
	m.Incremented = append(m.Incremented, id)
	for i := range m.Ideas {
		if m.Ideas[i].ID == id {
			m.Ideas[i].Views++
		}
	}
	return nil
}

type InvestmentRepo struct {
	Investments []models.Investment
	// Funding holds per-idea funding_received totals; seed it to model
	// prior investments against an idea.
	Funding   map[string]float64
	CommitErr error
	ListErr   error
	nextID    int
}

func (m *InvestmentRepo) CommitInvestment(ctx context.Context, inv *models.Investment) (string, float64, error) {
	if m.CommitErr != nil {
		return "", 0, m.CommitErr
	}
	m.nextID++
	inv.ID = fmt.Sprintf("investment-%d", m.nextID)
	m.Investments = append(m.Investments, *inv)
	if m.Funding == nil {
		m.Funding = make(map[string]float64)
	}
	m.Funding[inv.IdeaID] += inv.Amount
	return inv.ID, m.Funding[inv.IdeaID], nil
}

func (m *InvestmentRepo) ListInvestmentsByInvestor(ctx context.Context, investorID string) ([]models.Investment, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Investment
	for _, inv := range m.Investments {
		if inv.InvestorID == investorID {
			out = append(out, inv)
		}
	}
	return out, nil
}

type ProductRepo struct {
	Products  []models.Product
	CreateErr error
	ListErr   error
	nextID    int
}

func (m *ProductRepo) CreateProduct(ctx context.Context, p *models.Product) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.nextID++
	p.ID = fmt.Sprintf("product-%d", m.nextID)
	m.Products = append(m.Products, *p)
	return p.ID, nil
}

func (m *ProductRepo) ListProductsByDealer(ctx context.Context, dealerID string, limit int) ([]models.Product, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Product
	for _, p := range m.Products {
		if p.DealerID == dealerID {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type MessageRepo struct {
	Messages  []models.Message
	CreateErr error
	ListErr   error
	MarkErr   error
	nextID    int
}

func (m *MessageRepo) CreateMessage(ctx context.Context, msg *models.Message) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.nextID++
	msg.ID = fmt.Sprintf("message-%d", m.nextID)
	m.Messages = append(m.Messages, *msg)
	return msg.ID, nil
}

func (m *MessageRepo) ListMessagesForUser(ctx context.Context, userID string) ([]models.Message, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	// stored order is insertion order; return newest first
	var out []models.Message
	for i := len(m.Messages) - 1; i >= 0; i-- {
		msg := m.Messages[i]
		if msg.SenderID == userID || msg.RecipientID == userID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *MessageRepo) ListThread(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Message
	for _, msg := range m.Messages {
		if (msg.SenderID == userID && msg.RecipientID == otherID) ||
			(msg.SenderID == otherID && msg.RecipientID == userID) {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *MessageRepo) MarkThreadRead(ctx context.Context, recipientID, senderID string) error {
	if m.MarkErr != nil {
		return m.MarkErr
	}
	for i := range m.Messages {
		if m.Messages[i].SenderID == senderID && m.Messages[i].RecipientID == recipientID {
			m.Messages[i].Read = true
		}
	}
	return nil
}

type ConnectionRepo struct {
	Connections []models.Connection
	CreateErr   error
	GetErr      error
	ListErr     error
	UpdateErr   error
	CountErr    error
	nextID      int
}

func (m *ConnectionRepo) CreateConnection(ctx context.Context, c *models.Connection) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.nextID++
	c.ID = fmt.Sprintf("connection-%d", m.nextID)
	m.Connections = append(m.Connections, *c)
	return c.ID, nil
}

func (m *ConnectionRepo) GetConnectionByID(ctx context.Context, id string) (*models.Connection, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for i := range m.Connections {
		if m.Connections[i].ID == id {
			c := m.Connections[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *ConnectionRepo) ListConnectionsForUser(ctx context.Context, userID string) ([]models.Connection, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.Connection
	for _, c := range m.Connections {
		if c.RequesterID == userID || c.RecipientID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *ConnectionRepo) UpdateConnectionStatus(ctx context.Context, id, status string) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Connections {
		if m.Connections[i].ID == id {
			m.Connections[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("connection %s not found", id)
}

func (m *ConnectionRepo) CountAcceptedConnections(ctx context.Context, userID string) (int64, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	var n int64
	for _, c := range m.Connections {
		if c.Status == models.ConnectionAccepted && (c.RequesterID == userID || c.RecipientID == userID) {
			n++
		}
	}
	return n, nil
}

type CommunityRepo struct {
	Posts     []models.PostWithAuthor
	Likes     []models.PostLike
	CreateErr error
	ListErr   error
	LikeErr   error
	nextID    int
}

func (m *CommunityRepo) CreatePost(ctx context.Context, p *models.CommunityPost) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.nextID++
	p.ID = fmt.Sprintf("post-%d", m.nextID)
	m.Posts = append(m.Posts, models.PostWithAuthor{CommunityPost: *p})
	return p.ID, nil
}

func (m *CommunityRepo) ListPosts(ctx context.Context, limit int) ([]models.PostWithAuthor, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := m.Posts
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *CommunityRepo) GetLike(ctx context.Context, postID, userID string) (*models.PostLike, error) {
	if m.LikeErr != nil {
		return nil, m.LikeErr
	}
	for i := range m.Likes {
		if m.Likes[i].PostID == postID && m.Likes[i].UserID == userID {
			l := m.Likes[i]
			return &l, nil
		}
	}
	return nil, nil
}

func (m *CommunityRepo) CreateLike(ctx context.Context, l *models.PostLike) (string, error) {
	if m.LikeErr != nil {
		return "", m.LikeErr
	}
	for _, e := range m.Likes {
		if e.PostID == l.PostID && e.UserID == l.UserID {
			return "", repository.ErrDuplicate
		}
	}
	m.nextID++
	l.ID = fmt.Sprintf("like-%d", m.nextID)
	m.Likes = append(m.Likes, *l)
	return l.ID, nil
}

func (m *CommunityRepo) DeleteLike(ctx context.Context, id string) error {
	if m.LikeErr != nil {
		return m.LikeErr
	}
	for i := range m.Likes {
		if m.Likes[i].ID == id {
			m.Likes = append(m.Likes[:i], m.Likes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *CommunityRepo) CountLikes(ctx context.Context, postID string) (int64, error) {
	if m.LikeErr != nil {
		return 0, m.LikeErr
	}
	var n int64
	for _, l := range m.Likes {
		if l.PostID == postID {
			n++
		}
	}
	return n, nil
}

type EventRepo struct {
	Events        []models.EventWithOrganizer
	Registrations []models.EventRegistration
	CreateErr     error
	ListErr       error
	RegisterErr   error
	nextID        int
}

func (m *EventRepo) CreateEvent(ctx context.Context, e *models.Event) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.nextID++
	e.ID = fmt.Sprintf("event-%d", m.nextID)
	m.Events = append(m.Events, models.EventWithOrganizer{Event: *e})
	return e.ID, nil
}

func (m *EventRepo) ListUpcomingEvents(ctx context.Context, eventType string, since int64) ([]models.EventWithOrganizer, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.EventWithOrganizer
	for _, e := range m.Events {
		if e.EventDate < since {
			continue
		}
		if eventType != "" && e.EventType != eventType {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *EventRepo) CreateRegistration(ctx context.Context, r *models.EventRegistration) (string, error) {
	if m.RegisterErr != nil {
		return "", m.RegisterErr
	}
	for _, e := range m.Registrations {
		if e.EventID == r.EventID && e.UserID == r.UserID {
			return "", repository.ErrDuplicate
		}
	}
	m.nextID++
	r.ID = fmt.Sprintf("registration-%d", m.nextID)
	m.Registrations = append(m.Registrations, *r)
	return r.ID, nil
}

// StatsRepo returns fixed counts; set the fields to the values a test needs.
type StatsRepo struct {
	Stats models.PlatformStats
	Err   error
}

func (m *StatsRepo) CountProfiles(ctx context.Context, role models.Role) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	switch role {
	case models.RoleEntrepreneur:
		return m.Stats.Entrepreneurs, nil
	case models.RoleInvestor:
		return m.Stats.Investors, nil
	case models.RoleDealer:
		return m.Stats.Dealers, nil
	case models.RoleAdmin:
		return 0, nil
	default:
		return m.Stats.TotalUsers, nil
	}
}

func (m *StatsRepo) CountIdeas(ctx context.Context) (int64, error) {
	return m.Stats.TotalIdeas, m.Err
}

func (m *StatsRepo) CountProducts(ctx context.Context) (int64, error) {
	return m.Stats.TotalProducts, m.Err
}

func (m *StatsRepo) CountInvestments(ctx context.Context) (int64, error) {
	return m.Stats.TotalInvestments, m.Err
}

func (m *StatsRepo) CountMessages(ctx context.Context) (int64, error) {
	return m.Stats.TotalMessages, m.Err
}

func (m *StatsRepo) CountEvents(ctx context.Context) (int64, error) {
	return m.Stats.TotalEvents, m.Err
}

func (m *StatsRepo) CountPosts(ctx context.Context) (int64, error) {
	return m.Stats.CommunityPosts, m.Err
}
