package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lueurxax/page-reply-bot/internal/core/errors"
)

var errBoom = errors.New("boom")

type fakeProvider struct {
	name      ProviderName
	priority  int
	available bool
	fail      bool
	calls     int
}

func (p *fakeProvider) Name() ProviderName { return p.name }
func (p *fakeProvider) IsAvailable() bool  { return p.available }
func (p *fakeProvider) Priority() int      { return p.priority }

func (p *fakeProvider) CompleteText(_ context.Context, _, _ string) (string, error) {
	p.calls++
	if p.fail {
		return "", errBoom
	}

	return "reply from " + string(p.name), nil
}

func (p *fakeProvider) TranslateText(_ context.Context, text, _, _ string) (string, error) {
	p.calls++
	if p.fail {
		return "", errBoom
	}

	return text, nil
}

func testRegistry(providers ...Provider) *Registry {
	logger := zerolog.Nop()
	r := NewRegistry(&logger)

	for _, p := range providers {
		r.Register(p, CircuitBreakerConfig{Threshold: 3, ResetAfter: time.Minute})
	}

	return r
}

func TestRegistry_PriorityOrder(t *testing.T) {
	primary := &fakeProvider{name: "a", priority: PriorityPrimary, available: true}
	fallback := &fakeProvider{name: "b", priority: PriorityFallback, available: true}
	r := testRegistry(fallback, primary)

	result, err := r.CompleteText(context.Background(), "hi", "")
	require.NoError(t, err)
	assert.Equal(t, "reply from a", result)
	assert.Equal(t, 0, fallback.calls)
}

func TestRegistry_FallbackOnFailure(t *testing.T) {
	primary := &fakeProvider{name: "a", priority: PriorityPrimary, available: true, fail: true}
	fallback := &fakeProvider{name: "b", priority: PriorityFallback, available: true}
	r := testRegistry(primary, fallback)

	result, err := r.CompleteText(context.Background(), "hi", "")
	require.NoError(t, err)
	assert.Equal(t, "reply from b", result)
	assert.Equal(t, 1, primary.calls)
}

func TestRegistry_SkipsUnavailable(t *testing.T) {
	primary := &fakeProvider{name: "a", priority: PriorityPrimary, available: false}
	fallback := &fakeProvider{name: "b", priority: PriorityFallback, available: true}
	r := testRegistry(primary, fallback)

	result, err := r.CompleteText(context.Background(), "hi", "")
	require.NoError(t, err)
	assert.Equal(t, "reply from b", result)
	assert.Equal(t, 0, primary.calls)
}

func TestRegistry_AllFail(t *testing.T) {
	primary := &fakeProvider{name: "a", priority: PriorityPrimary, available: true, fail: true}
	fallback := &fakeProvider{name: "b", priority: PriorityFallback, available: true, fail: true}
	r := testRegistry(primary, fallback)

	_, err := r.CompleteText(context.Background(), "hi", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrAllProvidersFailed))
}

func TestRegistry_NoProviders(t *testing.T) {
	r := testRegistry()

	_, err := r.TranslateText(context.Background(), "hi", "bn", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNoProvidersAvailable))
}

func TestRegistry_CircuitOpensAfterThreshold(t *testing.T) {
	failing := &fakeProvider{name: "a", priority: PriorityPrimary, available: true, fail: true}
	r := testRegistry(failing)

	for range 3 {
		_, _ = r.CompleteText(context.Background(), "hi", "")
	}

	calls := failing.calls

	// Circuit is open now; the provider must not be invoked again.
	_, err := r.CompleteText(context.Background(), "hi", "")
	require.Error(t, err)
	assert.Equal(t, calls, failing.calls)
	assert.True(t, errors.Is(err, apperrors.ErrCircuitBreakerOpen))
}

func TestRegistry_CanceledContext(t *testing.T) {
	p := &fakeProvider{name: "a", priority: PriorityPrimary, available: true}
	r := testRegistry(p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.CompleteText(ctx, "hi", "")
	require.Error(t, err)
	assert.Equal(t, 0, p.calls)
}
