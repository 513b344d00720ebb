package webhook

import (
	"time"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
)

// Event is the page webhook envelope. Facebook delivers both feed changes
// (comments) and messaging events under the same envelope.
type Event struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry is one page entry in a delivery.
type Entry struct {
	ID        string      `json:"id"`
	Time      int64       `json:"time"`
	Changes   []Change    `json:"changes"`
	Messaging []Messaging `json:"messaging"`
}

// Change is a feed change, e.g. a new comment on a post.
type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

// ChangeValue carries the comment payload of a feed change.
type ChangeValue struct {
	Item      string `json:"item"`
	CommentID string `json:"comment_id"`
	Message   string `json:"message"`
	From      Actor  `json:"from"`
}

// Messaging is one Messenger event.
type Messaging struct {
	Sender  Actor    `json:"sender"`
	Message *Message `json:"message"`
}

// Message is the text payload of a Messenger event.
type Message struct {
	MID  string `json:"mid"`
	Text string `json:"text"`
}

// Actor identifies a user.
type Actor struct {
	ID string `json:"id"`
}

const fieldFeed = "feed"

// Comments extracts the processable comments/messages from the envelope.
// Events missing required fields are silently dropped here; the pipeline
// validates again and the transport always acks regardless.
func (e Event) Comments(now time.Time) []domain.Comment {
	var comments []domain.Comment

	for _, entry := range e.Entry {
		for _, change := range entry.Changes {
			if change.Field != fieldFeed || change.Value.Item != "comment" {
				continue
			}

			comments = append(comments, domain.Comment{
				ID:         change.Value.CommentID,
				SenderID:   change.Value.From.ID,
				Text:       change.Value.Message,
				ReceivedAt: now,
			})
		}

		for _, messaging := range entry.Messaging {
			if messaging.Message == nil {
				continue
			}

			comments = append(comments, domain.Comment{
				ID:         messaging.Message.MID,
				SenderID:   messaging.Sender.ID,
				Text:       messaging.Message.Text,
				ReceivedAt: now,
			})
		}
	}

	return comments
}
