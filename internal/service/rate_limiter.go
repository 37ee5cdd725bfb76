package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bangs/internal/config"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/metrics"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/models"
)

// AnonymousRateLimiter slows down anonymous sessions that search a lot.
//
// The warnAt-th search gets a warning interstitial and the limitAt-th a
// stronger one that also doubles the session's delay. Every search after
// limitAt waits for the accumulated delay before its interstitial is shown.
// The wait parks only the calling goroutine.
type AnonymousRateLimiter struct {
	warnAt    int
	limitAt   int
	baseDelay time.Duration

	wait    func(ctx context.Context, d time.Duration) error
	metrics *metrics.Recorder
}

func NewAnonymousRateLimiter(cfg config.RateLimit, rec *metrics.Recorder) *AnonymousRateLimiter {
	return &AnonymousRateLimiter{
		warnAt:    cfg.WarnAt,
		limitAt:   cfg.LimitAt,
		baseDelay: cfg.BaseDelay,
		wait:      sleepContext,
		metrics:   rec,
	}
}

// Apply counts one anonymous search in sess and, depending on the count,
// replaces the redirect res with an interstitial that navigates to the same
// destination. It returns the context error when the request is cancelled
// during the delay.
func (l *AnonymousRateLimiter) Apply(ctx context.Context, sess *session.Session, res models.Resolution) (models.Resolution, error) {
	state := &sess.RateLimit
	state.SearchCount++
	sess.MarkDirty()

	switch {
	case state.SearchCount == l.warnAt:
		return interstitial(res, fmt.Sprintf(
			"You have used %d out of %d searches. Log in for unlimited searches!",
			l.warnAt, l.limitAt,
		)), nil

	case state.SearchCount == l.limitAt:
		state.CumulativeDelayMs = max(state.CumulativeDelayMs, l.baseDelay.Milliseconds()) * 2
		return interstitial(res, fmt.Sprintf(
			"You have exceeded the search limit of %d searches. Further searches will be delayed by %s. Log in for unlimited searches!",
			l.limitAt, formatDelay(state.CumulativeDelayMs),
		)), nil

	case state.SearchCount > l.limitAt:
		delay := time.Duration(state.CumulativeDelayMs) * time.Millisecond

		logger.FromContext(ctx).Info().
			Str("func", "AnonymousRateLimiter.Apply").
			Int("search_count", state.SearchCount).
			Dur("delay", delay).
			Msg("delaying anonymous search")

		if err := l.wait(ctx, delay); err != nil {
			return models.Resolution{}, err
		}
		l.metrics.ObserveRateLimitDelay(delay)

		return interstitial(res, fmt.Sprintf(
			"Your search was delayed by %s because you exceeded the search limit. Log in for unlimited searches!",
			formatDelay(state.CumulativeDelayMs),
		)), nil
	}

	return res, nil
}

func interstitial(res models.Resolution, message string) models.Resolution {
	res.Kind = models.ResolutionInterstitial
	res.Message = message
	res.CacheControl = models.CacheNoStore
	res.Vary = ""
	return res
}

func formatDelay(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).String()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
