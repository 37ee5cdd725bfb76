// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bangs/internal/logger"
	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/internal/store"
	"github.com/MKhiriev/go-bangs/models"
)

// DefaultTriggerCacheTTL is how long a session trusts its cached triggers.
const DefaultTriggerCacheTTL = 60 * time.Minute

// TriggerCache keeps a user's custom bang and tab group triggers in the
// session so that resolving a built-in bang needs no database round trip.
//
// The entry is advisory. Concurrent requests of one session may both refill
// it and the last write wins.
type TriggerCache struct {
	bangs store.BangRepository
	tabs  store.TabGroupRepository

	ttl time.Duration
	now func() time.Time

	logger *logger.Logger
}

func NewTriggerCache(bangs store.BangRepository, tabs store.TabGroupRepository, ttl time.Duration, log *logger.Logger) *TriggerCache {
	if ttl <= 0 {
		ttl = DefaultTriggerCacheTTL
	}
	return &TriggerCache{
		bangs:  bangs,
		tabs:   tabs,
		ttl:    ttl,
		now:    time.Now,
		logger: log,
	}
}

// Load returns the session's cached triggers while they are younger than the
// TTL. Otherwise it reads both trigger lists of userID, stores them in the
// session and returns them.
func (c *TriggerCache) Load(ctx context.Context, sess *session.Session, userID int64) (*models.TriggerCacheEntry, error) {
	now := c.now()

	if entry := sess.TriggerCache; entry != nil && now.Sub(entry.CachedAt) < c.ttl {
		return entry, nil
	}

	bangTriggers, err := c.bangs.ListBangTriggers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading bang triggers: %w", err)
	}

	tabTriggers, err := c.tabs.ListTabTriggers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading tab triggers: %w", err)
	}

	entry := &models.TriggerCacheEntry{
		BangTriggers: models.NewTriggerSet(bangTriggers),
		TabTriggers:  models.NewTriggerSet(tabTriggers),
		CachedAt:     now,
	}
	sess.SetTriggerCache(entry)

	logger.FromContext(ctx).Debug().
		Str("func", "TriggerCache.Load").
		Int64("owner_id", userID).
		Int("bangs", len(bangTriggers)).
		Int("tabs", len(tabTriggers)).
		Msg("trigger cache refilled")

	return entry, nil
}

// Invalidate drops the cached triggers from sess. Other session data is left
// alone and the database is not touched. Flows that change a user's bangs or
// tab groups outside the command handlers must call it too.
func (c *TriggerCache) Invalidate(sess *session.Session) {
	if sess == nil {
		return
	}
	sess.ClearTriggerCache()
}
