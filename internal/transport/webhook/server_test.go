package webhook

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
)

func newTestServer(queue chan domain.Comment) *Server {
	logger := zerolog.Nop()
	return NewServer(0, "secret-token", queue, &logger)
}

func TestHandleVerification(t *testing.T) {
	server := newTestServer(make(chan domain.Comment, 1))
	handler := server.Handler()

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid handshake echoes challenge",
			url:        "/webhook?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=42",
			wantStatus: http.StatusOK,
			wantBody:   "42",
		},
		{
			name:       "wrong token is rejected",
			url:        "/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=42",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong mode is rejected",
			url:        "/webhook?hub.mode=unsubscribe&hub.verify_token=secret-token&hub.challenge=42",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandleDelivery_CommentChange(t *testing.T) {
	queue := make(chan domain.Comment, 4)
	server := newTestServer(queue)

	payload := `{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"time": 1700000000,
			"changes": [{
				"field": "feed",
				"value": {
					"item": "comment",
					"comment_id": "12345_67890",
					"message": "how much does this cost?",
					"from": {"id": "user-9"}
				}
			}]
		}]
	}`

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload)))

	require.Equal(t, http.StatusOK, rec.Code)

	select {
	case comment := <-queue:
		assert.Equal(t, "12345_67890", comment.ID)
		assert.Equal(t, "user-9", comment.SenderID)
		assert.Equal(t, "how much does this cost?", comment.Text)
	case <-time.After(time.Second):
		t.Fatal("expected a comment on the queue")
	}
}

func TestHandleDelivery_MessengerEvent(t *testing.T) {
	queue := make(chan domain.Comment, 4)
	server := newTestServer(queue)

	payload := `{
		"object": "page",
		"entry": [{
			"id": "page-1",
			"messaging": [{
				"sender": {"id": "user-3"},
				"message": {"mid": "m_abc", "text": "hello"}
			}]
		}]
	}`

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload)))

	require.Equal(t, http.StatusOK, rec.Code)

	comment := <-queue
	assert.Equal(t, "m_abc", comment.ID)
	assert.Equal(t, "user-3", comment.SenderID)
	assert.Equal(t, "hello", comment.Text)
}

func TestHandleDelivery_BadJSON(t *testing.T) {
	server := newTestServer(make(chan domain.Comment, 1))

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDelivery_FullQueueStillAcks(t *testing.T) {
	queue := make(chan domain.Comment) // unbuffered, nothing consuming
	server := newTestServer(queue)

	payload := `{
		"object": "page",
		"entry": [{
			"changes": [{
				"field": "feed",
				"value": {"item": "comment", "comment_id": "c1", "message": "hi", "from": {"id": "u"}}
			}]
		}]
	}`

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload)))

	// Delivery is acked even though the comment was dropped.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEvent_CommentsSkipsNonCommentChanges(t *testing.T) {
	event := Event{
		Object: "page",
		Entry: []Entry{{
			Changes: []Change{
				{Field: "feed", Value: ChangeValue{Item: "like"}},
				{Field: "other", Value: ChangeValue{Item: "comment", CommentID: "x"}},
			},
		}},
	}

	assert.Empty(t, event.Comments(time.Now()))
}
