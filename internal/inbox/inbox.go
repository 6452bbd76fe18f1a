// Package inbox folds a user's flat message history into per-counterpart
// conversation summaries for the messages view.
package inbox

import "github.com/projexi/projexi/pkg/models"

// Conversation summarizes the exchange with one counterpart.
type Conversation struct {
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name"`
	UserAvatar      string `json:"user_avatar,omitempty"`
	LastMessage     string `json:"last_message"`
	LastMessageTime int64  `json:"last_message_time"`
	UnreadCount     int    `json:"unread_count"`
}

// Aggregate builds one Conversation per distinct counterpart in msgs.
// msgs must be ordered newest first: the first message seen for a
// counterpart fixes the preview and timestamp, and every unread message
// addressed to userID increments that counterpart's unread count. Output
// order is first-seen order, i.e. most recently active first.
func Aggregate(userID string, msgs []models.Message) []Conversation {
	byUser := make(map[string]int)
	out := make([]Conversation, 0, len(msgs))

	for _, m := range msgs {
		other := m.RecipientID
		if m.SenderID != userID {
			other = m.SenderID
		}

		idx, seen := byUser[other]
		if !seen {
			idx = len(out)
			byUser[other] = idx
			out = append(out, Conversation{
				UserID:          other,
				LastMessage:     m.Content,
				LastMessageTime: m.Created,
			})
		}

		if m.RecipientID == userID && !m.Read {
			out[idx].UnreadCount++
		}
	}

	return out
}
