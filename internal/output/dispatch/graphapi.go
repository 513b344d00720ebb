package dispatch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/lueurxax/page-reply-bot/internal/core/errors"
)

const (
	defaultGraphAPIBaseURL = "https://graph.facebook.com/v19.0"
	errBodyMaxBytes        = 2048
)

// GraphAPI posts replies as comments via the Facebook Graph API.
type GraphAPI struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      *zerolog.Logger
}

// NewGraphAPI creates a Graph API sink. An empty baseURL selects the
// production endpoint.
func NewGraphAPI(baseURL, accessToken string, timeout time.Duration, logger *zerolog.Logger) *GraphAPI {
	if baseURL == "" {
		baseURL = defaultGraphAPIBaseURL
	}

	return &GraphAPI{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// PostReply publishes text as a reply to commentID. A non-2xx status is an
// error; the caller logs it and does not retry (redelivery policy belongs to
// the platform).
func (g *GraphAPI) PostReply(ctx context.Context, commentID, text string) error {
	endpoint := fmt.Sprintf("%s/%s/comments", g.baseURL, url.PathEscape(commentID))

	form := url.Values{}
	form.Set("message", text)
	form.Set("access_token", g.accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build graph api request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post reply to comment %s: %w", commentID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyMaxBytes))

		return fmt.Errorf("post reply to comment %s: %w: %d %s",
			commentID, apperrors.ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	g.logger.Debug().Str("comment_id", commentID).Msg("reply posted")

	return nil
}
