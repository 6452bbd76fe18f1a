package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	dbfs "github.com/projexi/projexi/db"
	dbpkg "github.com/projexi/projexi/internal/db"
	sqlite "github.com/projexi/projexi/internal/repository/sqlite"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

// setupRepo opens a throwaway database under t.TempDir and runs the real
// migrations against it, so tests exercise the shipped schema.
func setupRepo(t *testing.T) (*sqlite.SQLiteRepo, *dbpkg.DB) {
	t.Helper()
	ctx := context.Background()

	d, err := dbpkg.New(ctx, filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return sqlite.New(d, nil), d
}

func createProfile(t *testing.T, repo *sqlite.SQLiteRepo, email string, role models.Role) string {
	t.Helper()
	id, err := repo.CreateProfile(context.Background(), &models.Profile{
		Email:        email,
		FullName:     "User " + email,
		Role:         role,
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("CreateProfile(%s): %v", email, err)
	}
	return id
}

func TestProfileCRUD(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	if _, err := repo.CreateProfile(ctx, nil); err == nil {
		t.Fatalf("expected error when creating nil profile")
	}

	got, err := repo.GetProfileByID(ctx, "missing")
	if err != nil || got != nil {
		t.Fatalf("missing id: want nil, nil got %v, %v", got, err)
	}

	id := createProfile(t, repo, "alice@example.com", models.RoleEntrepreneur)

	got, err = repo.GetProfileByID(ctx, id)
	if err != nil {
		t.Fatalf("GetProfileByID: %v", err)
	}
	if got == nil || got.Email != "alice@example.com" || got.Role != models.RoleEntrepreneur {
		t.Fatalf("unexpected profile: %+v", got)
	}
	if got.Created == 0 || got.Updated == 0 {
		t.Fatalf("timestamps not set: %+v", got)
	}

	got.Bio = "builder"
	got.Location = "Lagos"
	if err := repo.UpdateProfile(ctx, got); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	got2, err := repo.GetProfileByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetProfileByEmail: %v", err)
	}
	if got2.Bio != "builder" || got2.Location != "Lagos" {
		t.Fatalf("update not persisted: %+v", got2)
	}
}

func TestCreateProfileDuplicateEmail(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	createProfile(t, repo, "dup@example.com", models.RoleInvestor)

	_, err := repo.CreateProfile(ctx, &models.Profile{
		Email:        "dup@example.com",
		Role:         models.RoleDealer,
		PasswordHash: "hash",
	})
	if err != repository.ErrDuplicate {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}
}

func TestListProfilesByRoleAndIDs(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	a := createProfile(t, repo, "a@example.com", models.RoleInvestor)
	b := createProfile(t, repo, "b@example.com", models.RoleInvestor)
	createProfile(t, repo, "c@example.com", models.RoleDealer)

	investors, err := repo.ListProfilesByRole(ctx, models.RoleInvestor, 10)
	if err != nil {
		t.Fatalf("ListProfilesByRole: %v", err)
	}
	if len(investors) != 2 {
		t.Fatalf("expected 2 investors, got %d", len(investors))
	}

	byIDs, err := repo.ListProfilesByIDs(ctx, []string{a, b})
	if err != nil {
		t.Fatalf("ListProfilesByIDs: %v", err)
	}
	if len(byIDs) != 2 {
		t.Fatalf("expected 2 profiles by id, got %d", len(byIDs))
	}

	empty, err := repo.ListProfilesByIDs(ctx, nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty ids: want no rows, got %v, %v", empty, err)
	}
}

func TestCommitInvestmentBumpsFunding(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	ent := createProfile(t, repo, "ent@example.com", models.RoleEntrepreneur)
	inv := createProfile(t, repo, "inv@example.com", models.RoleInvestor)

	ideaID, err := repo.CreateIdea(ctx, &models.Idea{
		EntrepreneurID: ent,
		Title:          "Cold chain",
		Industry:       "logistics",
		FundingGoal:    10000,
		Status:         "active",
	})
	if err != nil {
		t.Fatalf("CreateIdea: %v", err)
	}

	id, total, err := repo.CommitInvestment(ctx, &models.Investment{
		IdeaID:     ideaID,
		InvestorID: inv,
		Amount:     2500,
		Status:     "completed",
	})
	if err != nil {
		t.Fatalf("CommitInvestment: %v", err)
	}
	if id == "" {
		t.Fatalf("expected non-empty investment id")
	}
	if total != 2500 {
		t.Fatalf("expected committed total 2500, got %v", total)
	}

	// a second commit returns the running total, not just its own amount
	_, total, err = repo.CommitInvestment(ctx, &models.Investment{
		IdeaID:     ideaID,
		InvestorID: inv,
		Amount:     1500,
		Status:     "completed",
	})
	if err != nil {
		t.Fatalf("CommitInvestment: %v", err)
	}
	if total != 4000 {
		t.Fatalf("expected committed total 4000, got %v", total)
	}

	idea, err := repo.GetIdeaByID(ctx, ideaID)
	if err != nil {
		t.Fatalf("GetIdeaByID: %v", err)
	}
	if idea.FundingReceived != 4000 {
		t.Fatalf("funding_received not bumped: %v", idea.FundingReceived)
	}

	list, err := repo.ListInvestmentsByInvestor(ctx, inv)
	if err != nil {
		t.Fatalf("ListInvestmentsByInvestor: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("unexpected investments: %+v", list)
	}
}

func TestCommitInvestmentMissingIdeaRollsBack(t *testing.T) {
	repo, d := setupRepo(t)
	ctx := context.Background()

	inv := createProfile(t, repo, "inv2@example.com", models.RoleInvestor)

	// whether the insert or the funding update fails first, no investment
	// row may survive
	_, _, err := repo.CommitInvestment(ctx, &models.Investment{
		IdeaID:     "no-such-idea",
		InvestorID: inv,
		Amount:     100,
		Status:     "completed",
	})
	if err == nil {
		t.Fatalf("expected error for missing idea")
	}

	var n int64
	if scanErr := d.QueryRow(ctx, `SELECT COUNT(1) FROM investments`).Scan(&n); scanErr != nil {
		t.Fatalf("count investments: %v", scanErr)
	}
	if n != 0 {
		t.Fatalf("investment row leaked after rollback: %d", n)
	}
}

func TestIdeaViewsIncrement(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	ent := createProfile(t, repo, "ent@example.com", models.RoleEntrepreneur)
	ideaID, err := repo.CreateIdea(ctx, &models.Idea{EntrepreneurID: ent, Title: "X", Status: "active"})
	if err != nil {
		t.Fatalf("CreateIdea: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := repo.IncrementIdeaViews(ctx, ideaID); err != nil {
			t.Fatalf("IncrementIdeaViews: %v", err)
		}
	}

	idea, err := repo.GetIdeaByID(ctx, ideaID)
	if err != nil {
		t.Fatalf("GetIdeaByID: %v", err)
	}
	if idea.Views != 3 {
		t.Fatalf("expected 3 views, got %d", idea.Views)
	}
}

func TestProductImageURLsRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	dealer := createProfile(t, repo, "dealer@example.com", models.RoleDealer)
	_, err := repo.CreateProduct(ctx, &models.Product{
		DealerID:  dealer,
		Name:      "Solar pump",
		Price:     199.99,
		MOQ:       5,
		ImageURLs: []string{"http://img/1", "http://img/2"},
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	products, err := repo.ListProductsByDealer(ctx, dealer, 10)
	if err != nil {
		t.Fatalf("ListProductsByDealer: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if len(products[0].ImageURLs) != 2 || products[0].ImageURLs[0] != "http://img/1" {
		t.Fatalf("image urls not round-tripped: %+v", products[0].ImageURLs)
	}
}

func TestMessagesThreadAndMarkRead(t *testing.T) {
	repo, d := setupRepo(t)
	ctx := context.Background()

	p1 := createProfile(t, repo, "p1@example.com", models.RoleInvestor)
	p2 := createProfile(t, repo, "p2@example.com", models.RoleEntrepreneur)
	p3 := createProfile(t, repo, "p3@example.com", models.RoleDealer)

	m1, err := repo.CreateMessage(ctx, &models.Message{SenderID: p2, RecipientID: p1, Content: "hello"})
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	m2, err := repo.CreateMessage(ctx, &models.Message{SenderID: p1, RecipientID: p2, Content: "hey"})
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}
	m3, err := repo.CreateMessage(ctx, &models.Message{SenderID: p3, RecipientID: p1, Content: "other"})
	if err != nil {
		t.Fatalf("CreateMessage: %v", err)
	}

	// pin distinct timestamps so ordering is deterministic
	for i, id := range []string{m1, m2, m3} {
		if _, err := d.Exec(ctx, `UPDATE messages SET created = ? WHERE id = ?`, int64(100*(i+1)), id); err != nil {
			t.Fatalf("pin created: %v", err)
		}
	}

	all, err := repo.ListMessagesForUser(ctx, p1)
	if err != nil {
		t.Fatalf("ListMessagesForUser: %v", err)
	}
	if len(all) != 3 || all[0].ID != m3 {
		t.Fatalf("expected newest first, got %+v", all)
	}

	thread, err := repo.ListThread(ctx, p1, p2)
	if err != nil {
		t.Fatalf("ListThread: %v", err)
	}
	if len(thread) != 2 || thread[0].ID != m1 || thread[1].ID != m2 {
		t.Fatalf("thread wrong: %+v", thread)
	}

	if err := repo.MarkThreadRead(ctx, p1, p2); err != nil {
		t.Fatalf("MarkThreadRead: %v", err)
	}
	thread, _ = repo.ListThread(ctx, p1, p2)
	if !thread[0].Read {
		t.Fatalf("message from p2 should be read")
	}
	if thread[1].Read {
		t.Fatalf("own message should be untouched")
	}
	other, _ := repo.ListThread(ctx, p1, p3)
	if other[0].Read {
		t.Fatalf("unrelated thread should stay unread")
	}
}

func TestConnectionsLifecycle(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	p1 := createProfile(t, repo, "p1@example.com", models.RoleDealer)
	p2 := createProfile(t, repo, "p2@example.com", models.RoleInvestor)

	id, err := repo.CreateConnection(ctx, &models.Connection{
		RequesterID: p1,
		RecipientID: p2,
		Status:      models.ConnectionPending,
	})
	if err != nil {
		t.Fatalf("CreateConnection: %v", err)
	}

	if err := repo.UpdateConnectionStatus(ctx, id, models.ConnectionAccepted); err != nil {
		t.Fatalf("UpdateConnectionStatus: %v", err)
	}

	conn, err := repo.GetConnectionByID(ctx, id)
	if err != nil {
		t.Fatalf("GetConnectionByID: %v", err)
	}
	if conn.Status != models.ConnectionAccepted {
		t.Fatalf("status not updated: %s", conn.Status)
	}

	// accepted connections count for both sides
	for _, userID := range []string{p1, p2} {
		n, err := repo.CountAcceptedConnections(ctx, userID)
		if err != nil {
			t.Fatalf("CountAcceptedConnections: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected 1 accepted connection for %s, got %d", userID, n)
		}
	}

	list, err := repo.ListConnectionsForUser(ctx, p1)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListConnectionsForUser: %v %v", list, err)
	}
}

func TestPostsAndLikes(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	author := createProfile(t, repo, "author@example.com", models.RoleEntrepreneur)
	liker := createProfile(t, repo, "liker@example.com", models.RoleInvestor)

	postID, err := repo.CreatePost(ctx, &models.CommunityPost{AuthorID: author, Content: "first post"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	likeID, err := repo.CreateLike(ctx, &models.PostLike{PostID: postID, UserID: liker})
	if err != nil {
		t.Fatalf("CreateLike: %v", err)
	}

	// second like by the same user hits the unique constraint
	if _, err := repo.CreateLike(ctx, &models.PostLike{PostID: postID, UserID: liker}); err != repository.ErrDuplicate {
		t.Fatalf("want ErrDuplicate, got %v", err)
	}

	posts, err := repo.ListPosts(ctx, 10)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if posts[0].AuthorName != "User author@example.com" || posts[0].AuthorRole != models.RoleEntrepreneur {
		t.Fatalf("author join wrong: %+v", posts[0])
	}
	if posts[0].LikesCount != 1 {
		t.Fatalf("expected 1 like, got %d", posts[0].LikesCount)
	}

	got, err := repo.GetLike(ctx, postID, liker)
	if err != nil || got == nil || got.ID != likeID {
		t.Fatalf("GetLike: %v %v", got, err)
	}

	if err := repo.DeleteLike(ctx, likeID); err != nil {
		t.Fatalf("DeleteLike: %v", err)
	}
	n, err := repo.CountLikes(ctx, postID)
	if err != nil || n != 0 {
		t.Fatalf("CountLikes after delete: %d %v", n, err)
	}
}

func TestEventsAndRegistrations(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	org := createProfile(t, repo, "org@example.com", models.RoleEntrepreneur)
	user := createProfile(t, repo, "user@example.com", models.RoleInvestor)

	webinarID, err := repo.CreateEvent(ctx, &models.Event{
		OrganizerID:     org,
		Title:           "Funding 101",
		EventType:       "webinar",
		EventDate:       2000,
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := repo.CreateEvent(ctx, &models.Event{
		OrganizerID:     org,
		Title:           "Expo",
		EventType:       "conference",
		EventDate:       3000,
		DurationMinutes: 120,
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := repo.CreateEvent(ctx, &models.Event{
		OrganizerID:     org,
		Title:           "Old meetup",
		EventType:       "networking",
		EventDate:       500,
		DurationMinutes: 60,
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	upcoming, err := repo.ListUpcomingEvents(ctx, "", 1000)
	if err != nil {
		t.Fatalf("ListUpcomingEvents: %v", err)
	}
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming events, got %d", len(upcoming))
	}
	if upcoming[0].EventDate > upcoming[1].EventDate {
		t.Fatalf("events not date ascending: %+v", upcoming)
	}
	if upcoming[0].OrganizerName != "User org@example.com" {
		t.Fatalf("organizer join wrong: %+v", upcoming[0])
	}

	webinars, err := repo.ListUpcomingEvents(ctx, "webinar", 1000)
	if err != nil || len(webinars) != 1 || webinars[0].ID != webinarID {
		t.Fatalf("type filter wrong: %+v %v", webinars, err)
	}

	if _, err := repo.CreateRegistration(ctx, &models.EventRegistration{EventID: webinarID, UserID: user}); err != nil {
		t.Fatalf("CreateRegistration: %v", err)
	}
	if _, err := repo.CreateRegistration(ctx, &models.EventRegistration{EventID: webinarID, UserID: user}); err != repository.ErrDuplicate {
		t.Fatalf("duplicate registration: want ErrDuplicate, got %v", err)
	}
}

func TestStatsCounts(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	ent := createProfile(t, repo, "ent@example.com", models.RoleEntrepreneur)
	createProfile(t, repo, "inv@example.com", models.RoleInvestor)
	createProfile(t, repo, "deal@example.com", models.RoleDealer)

	if _, err := repo.CreateIdea(ctx, &models.Idea{EntrepreneurID: ent, Title: "A", Status: "active"}); err != nil {
		t.Fatalf("CreateIdea: %v", err)
	}
	if _, err := repo.CreatePost(ctx, &models.CommunityPost{AuthorID: ent, Content: "hi"}); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	total, err := repo.CountProfiles(ctx, "")
	if err != nil || total != 3 {
		t.Fatalf("CountProfiles all: %d %v", total, err)
	}
	ents, err := repo.CountProfiles(ctx, models.RoleEntrepreneur)
	if err != nil || ents != 1 {
		t.Fatalf("CountProfiles entrepreneurs: %d %v", ents, err)
	}
	ideas, err := repo.CountIdeas(ctx)
	if err != nil || ideas != 1 {
		t.Fatalf("CountIdeas: %d %v", ideas, err)
	}
	posts, err := repo.CountPosts(ctx)
	if err != nil || posts != 1 {
		t.Fatalf("CountPosts: %d %v", posts, err)
	}
	zero, err := repo.CountEvents(ctx)
	if err != nil || zero != 0 {
		t.Fatalf("CountEvents: %d %v", zero, err)
	}
}
