package dispatch

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Console writes replies to a local stream instead of the network. Used in
// test/offline mode; the substitution must not alter upstream decisions.
type Console struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsole creates a console sink writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// PostReply implements Sink.
func (c *Console) PostReply(_ context.Context, commentID, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.out, "--- reply to %s ---\n%s\n\n", commentID, text); err != nil {
		return fmt.Errorf("write reply: %w", err)
	}

	return nil
}
