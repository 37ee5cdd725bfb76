package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/metrics"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(waits *[]time.Duration) *AnonymousRateLimiter {
	l := NewAnonymousRateLimiter(config.RateLimit{WarnAt: 10, LimitAt: 60, BaseDelay: 5 * time.Second}, metrics.NewRecorder())
	l.wait = func(_ context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return nil
	}
	return l
}

func searchRedirect() models.Resolution {
	return models.Redirect("https://duckduckgo.com/?q=x", models.CacheNoStore, models.OutcomeSearch)
}

func TestRateLimiter_BelowWarnIsPlainRedirect(t *testing.T) {
	var waits []time.Duration
	l := newTestLimiter(&waits)
	sess := session.New("anon")

	for i := 1; i < 10; i++ {
		res, err := l.Apply(context.Background(), sess, searchRedirect())
		require.NoError(t, err)
		assert.Equal(t, models.ResolutionRedirect, res.Kind, "search %d", i)
	}
	assert.Equal(t, 9, sess.RateLimit.SearchCount)
	assert.Empty(t, waits)
}

func TestRateLimiter_WarnAtTenth(t *testing.T) {
	var waits []time.Duration
	l := newTestLimiter(&waits)
	sess := session.New("anon")
	sess.RateLimit.SearchCount = 9

	res, err := l.Apply(context.Background(), sess, searchRedirect())

	require.NoError(t, err)
	assert.Equal(t, models.ResolutionInterstitial, res.Kind)
	assert.Equal(t, "You have used 10 out of 60 searches. Log in for unlimited searches!", res.Message)
	assert.Equal(t, "https://duckduckgo.com/?q=x", res.Location)
	assert.Equal(t, models.CacheNoStore, res.CacheControl)
	assert.Zero(t, sess.RateLimit.CumulativeDelayMs)
	assert.Empty(t, waits)
}

func TestRateLimiter_SixtiethDoublesDelay(t *testing.T) {
	tests := []struct {
		name   string
		before int64
		after  int64
	}{
		{"from zero", 0, 10000},
		{"from baseline", 5000, 10000},
		{"from larger", 20000, 40000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var waits []time.Duration
			l := newTestLimiter(&waits)
			sess := session.New("anon")
			sess.RateLimit = models.RateLimitState{SearchCount: 59, CumulativeDelayMs: tt.before}

			res, err := l.Apply(context.Background(), sess, searchRedirect())

			require.NoError(t, err)
			assert.Equal(t, models.ResolutionInterstitial, res.Kind)
			assert.Contains(t, res.Message, "exceeded the search limit")
			assert.Equal(t, tt.after, sess.RateLimit.CumulativeDelayMs)
			assert.Empty(t, waits, "the 60th search is not delayed")
		})
	}
}

func TestRateLimiter_OverLimitWaits(t *testing.T) {
	var waits []time.Duration
	l := newTestLimiter(&waits)
	sess := session.New("anon")
	sess.RateLimit = models.RateLimitState{SearchCount: 60, CumulativeDelayMs: 10000}

	res, err := l.Apply(context.Background(), sess, searchRedirect())

	require.NoError(t, err)
	assert.Equal(t, models.ResolutionInterstitial, res.Kind)
	assert.Contains(t, res.Message, "delayed by 10s")
	assert.Equal(t, []time.Duration{10 * time.Second}, waits)
	assert.Equal(t, 61, sess.RateLimit.SearchCount)
}

func TestRateLimiter_DelayDoesNotBlockOtherWork(t *testing.T) {
	l := NewAnonymousRateLimiter(config.RateLimit{WarnAt: 10, LimitAt: 60, BaseDelay: 5 * time.Second}, nil)
	sess := session.New("anon")
	sess.RateLimit = models.RateLimitState{SearchCount: 60, CumulativeDelayMs: 200}

	var ticks atomic.Int32
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				ticks.Add(1)
			}
		}
	}()

	start := time.Now()
	res, err := l.Apply(context.Background(), sess, searchRedirect())
	elapsed := time.Since(start)
	close(stop)

	require.NoError(t, err)
	assert.Equal(t, models.ResolutionInterstitial, res.Kind)
	assert.GreaterOrEqual(t, elapsed, 200*time.Millisecond)
	assert.Greater(t, ticks.Load(), int32(5), "concurrent work kept running during the delay")
}

func TestRateLimiter_CancelledDuringDelay(t *testing.T) {
	l := NewAnonymousRateLimiter(config.RateLimit{WarnAt: 10, LimitAt: 60, BaseDelay: 5 * time.Second}, nil)
	sess := session.New("anon")
	sess.RateLimit = models.RateLimitState{SearchCount: 70, CumulativeDelayMs: 60000}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := l.Apply(ctx, sess, searchRedirect())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
