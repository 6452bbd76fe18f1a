package inbox_test

import (
	"testing"

	"github.com/projexi/projexi/internal/inbox"
	"github.com/projexi/projexi/pkg/models"
)

const me = "user-me"

func msg(id, sender, recipient, content string, created int64, read bool) models.Message {
	return models.Message{ID: id, SenderID: sender, RecipientID: recipient, Content: content, Created: created, Read: read}
}

func TestAggregateEmpty(t *testing.T) {
	got := inbox.Aggregate(me, nil)
	if len(got) != 0 {
		t.Fatalf("expected no conversations, got %d", len(got))
	}
}

func TestAggregateOneEntryPerCounterpart(t *testing.T) {
	// newest first, two counterparts interleaved
	msgs := []models.Message{
		msg("m5", "alice", me, "latest from alice", 50, false),
		msg("m4", me, "bob", "to bob", 40, true),
		msg("m3", "alice", me, "older from alice", 30, false),
		msg("m2", "bob", me, "from bob", 20, false),
		msg("m1", me, "alice", "first to alice", 10, true),
	}

	got := inbox.Aggregate(me, msgs)
	if len(got) != 2 {
		t.Fatalf("expected 2 conversations got %d: %+v", len(got), got)
	}

	// order is first-seen order: alice (most recent activity) then bob
	if got[0].UserID != "alice" || got[1].UserID != "bob" {
		t.Fatalf("unexpected order: %s, %s", got[0].UserID, got[1].UserID)
	}

	// first occurrence fixes preview and timestamp
	if got[0].LastMessage != "latest from alice" || got[0].LastMessageTime != 50 {
		t.Fatalf("unexpected alice preview: %+v", got[0])
	}
	if got[1].LastMessage != "to bob" || got[1].LastMessageTime != 40 {
		t.Fatalf("unexpected bob preview: %+v", got[1])
	}

	// unread counts only messages addressed to me with read=false
	if got[0].UnreadCount != 2 {
		t.Fatalf("expected alice unread=2 got %d", got[0].UnreadCount)
	}
	if got[1].UnreadCount != 1 {
		t.Fatalf("expected bob unread=1 got %d", got[1].UnreadCount)
	}
}

func TestAggregateOwnUnreadNotCounted(t *testing.T) {
	// a message I sent that the counterpart has not read yet must not
	// count toward my unread badge
	msgs := []models.Message{
		msg("m1", me, "carol", "hi carol", 10, false),
	}
	got := inbox.Aggregate(me, msgs)
	if len(got) != 1 {
		t.Fatalf("expected 1 conversation got %d", len(got))
	}
	if got[0].UnreadCount != 0 {
		t.Fatalf("expected unread=0 got %d", got[0].UnreadCount)
	}
}

func TestAggregateReadMessagesNotCounted(t *testing.T) {
	msgs := []models.Message{
		msg("m2", "dave", me, "newer", 20, true),
		msg("m1", "dave", me, "older", 10, true),
	}
	got := inbox.Aggregate(me, msgs)
	if len(got) != 1 || got[0].UnreadCount != 0 {
		t.Fatalf("expected single conversation with unread=0 got %+v", got)
	}
	if got[0].LastMessage != "newer" {
		t.Fatalf("expected newest message as preview got %q", got[0].LastMessage)
	}
}
