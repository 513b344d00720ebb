// Package dispatch posts final reply text to the originating conversation.
// The Graph API sink talks to Facebook; the console sink satisfies the same
// interface for test/offline mode without altering upstream decisions.
package dispatch

import "context"

// Sink delivers one reply keyed by the comment it answers.
type Sink interface {
	PostReply(ctx context.Context, commentID, text string) error
}
