// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-bangs/internal/bang"
	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/metrics"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/internal/store"
	"github.com/MKhiriev/go-bangs/models"
)

// TabLaunchPath prefixes the tab group launch page.
const TabLaunchPath = "/tabs/"

const varyCookie = "Cookie"

// resolver is the command dispatcher behind the search box.
type resolver struct {
	catalog  *bang.Catalog
	bangs    store.BangRepository
	cache    *TriggerCache
	commands CommandHandler
	limiter  *AnonymousRateLimiter
	runner   TaskRunner

	defaultProvider string
	now             func() time.Time

	metrics *metrics.Recorder
	logger  *logger.Logger
}

// NewResolver wires the dispatcher. defaultProvider is used for anonymous
// visitors and for users without a known provider.
func NewResolver(
	catalog *bang.Catalog,
	bangs store.BangRepository,
	cache *TriggerCache,
	commands CommandHandler,
	limiter *AnonymousRateLimiter,
	runner TaskRunner,
	defaultProvider string,
	rec *metrics.Recorder,
	log *logger.Logger,
) Resolver {
	if !bang.IsKnownProvider(defaultProvider) {
		defaultProvider = bang.DefaultProvider
	}
	return &resolver{
		catalog:         catalog,
		bangs:           bangs,
		cache:           cache,
		commands:        commands,
		limiter:         limiter,
		runner:          runner,
		defaultProvider: defaultProvider,
		now:             time.Now,
		metrics:         rec,
		logger:          log,
	}
}

// Resolve implements Resolver.
//
//   - "@alias" goes to an in-app page, or is searched when the alias is unknown.
//   - A system command of a signed-in user is executed.
//   - "!trigger" is looked up in the user's bangs, then the built-in catalog,
//     then the user's tab groups, and is searched when nothing matches.
//   - Anything else is a plain search.
//
// Anonymous searches are counted by the rate limiter.
func (r *resolver) Resolve(ctx context.Context, sess *session.Session, user *models.User, rawQuery string) (models.Resolution, error) {
	if sess == nil {
		return models.Resolution{}, ErrNoSession
	}

	query := bang.ParseQuery(rawQuery)
	log := logger.FromContext(ctx).With().
		Str("func", "resolver.Resolve").
		Str("trigger", query.Trigger).
		Logger()

	var (
		res models.Resolution
		err error
	)

	switch query.CommandType {
	case models.CommandTypeDirect:
		res = r.resolveDirect(user, query, rawQuery)
	case models.CommandTypeBang:
		if query.IsSystemCommand() && user != nil {
			res, err = r.commands.Handle(ctx, sess, user, query)
		} else {
			res, err = r.resolveBang(ctx, sess, user, query)
		}
	default:
		res = r.search(user, query.SearchTerm, models.OutcomeSearch)
	}
	if err != nil {
		if _, ok := AsValidationError(err); !ok {
			log.Err(err).Msg("query resolution failed")
		}
		return models.Resolution{}, err
	}

	if user == nil {
		res, err = r.limiter.Apply(ctx, sess, res)
		if err != nil {
			return models.Resolution{}, err
		}
	}

	r.metrics.RecordResolution(res.Outcome)
	log.Debug().Str("outcome", res.Outcome).Str("location", res.Location).Msg("query resolved")

	return res, nil
}

func (r *resolver) resolveDirect(user *models.User, query models.ParsedQuery, rawQuery string) models.Resolution {
	path, ok := bang.DirectPath(query.TriggerWithoutPrefix, query.SearchTerm)
	if !ok {
		return r.search(user, strings.TrimSpace(rawQuery), models.OutcomeSearch)
	}
	return models.Redirect(path, models.CachePrivateHour, models.OutcomeDirect)
}

// resolveBang resolves a non-system trigger. A URL typed after the trigger is
// not part of the search term.
func (r *resolver) resolveBang(ctx context.Context, sess *session.Session, user *models.User, query models.ParsedQuery) (models.Resolution, error) {
	term := query.SearchTerm

	var entry *models.TriggerCacheEntry
	if user != nil {
		var err error
		entry, err = r.cache.Load(ctx, sess, user.UserID)
		if err != nil {
			// built-ins and search still work without the user's triggers
			logger.FromContext(ctx).Err(err).
				Str("func", "resolver.resolveBang").
				Int64("owner_id", user.UserID).
				Msg("trigger cache unavailable")
		}
	}

	if entry.HasBang(query.Trigger) {
		res, ok, err := r.resolveCustom(ctx, sess, user, query.Trigger, term)
		if err != nil || ok {
			return res, err
		}
	}

	if b, ok := r.catalog.Lookup(query.Trigger); ok {
		if dest := bang.BuildRedirectURL(b, term); bang.IsValidDestination(dest) {
			if term == "" {
				return models.Redirect(dest, models.CachePublicHour, models.OutcomeBuiltIn), nil
			}
			res := models.Redirect(dest, models.CachePrivateHour, models.OutcomeBuiltIn)
			res.Vary = varyCookie
			return res, nil
		}
	}

	if entry.HasTab(query.Trigger) {
		return models.Redirect(TabLaunchPath+url.PathEscape(query.TriggerWithoutPrefix), models.CacheNoStore, models.OutcomeTabGroup), nil
	}

	return r.search(user, joinWords(query.TriggerWithoutPrefix, term), models.OutcomeFallback), nil
}

// resolveCustom builds the redirect of a user's own bang. ok is false when
// the cached trigger turned out to be stale or its destination unusable.
func (r *resolver) resolveCustom(ctx context.Context, sess *session.Session, user *models.User, trigger, term string) (models.Resolution, bool, error) {
	b, err := r.bangs.FindBang(ctx, user.UserID, trigger)
	if errors.Is(err, store.ErrBangNotFound) {
		r.cache.Invalidate(sess)
		return models.Resolution{}, false, nil
	}
	if err != nil {
		return models.Resolution{}, false, fmt.Errorf("error loading bang %s: %w", trigger, err)
	}

	dest := bang.BuildRedirectURL(b, term)
	if !bang.IsValidDestination(dest) {
		return models.Resolution{}, false, nil
	}

	bangID, usedAt := b.ID, r.now()
	r.runner.Go("touch_bang_usage", func(ctx context.Context) error {
		return r.bangs.TouchBangUsage(ctx, bangID, usedAt)
	})

	return models.Redirect(dest, models.CacheNoStore, models.OutcomeCustom), true, nil
}

func (r *resolver) search(user *models.User, term, outcome string) models.Resolution {
	return models.Redirect(bang.SearchProviderURL(r.providerFor(user), term), models.CacheNoStore, outcome)
}

func (r *resolver) providerFor(user *models.User) string {
	if user != nil && bang.IsKnownProvider(user.DefaultSearchProvider) {
		return user.DefaultSearchProvider
	}
	return r.defaultProvider
}

func joinWords(words ...string) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, " ")
}
