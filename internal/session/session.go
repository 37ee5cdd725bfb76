// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-bangs/models"
)

// Session is the mutable state attached to one visitor. It is loaded at the
// start of a request, passed by reference through the resolution path and
// saved afterwards when it changed.
type Session struct {
	ID string `json:"id"`

	// TriggerCache is nil until the first load for a signed-in user and
	// after every invalidation.
	TriggerCache *models.TriggerCacheEntry `json:"trigger_cache,omitempty"`

	// RateLimit is only advanced for anonymous visitors.
	RateLimit models.RateLimitState `json:"rate_limit"`

	isNew bool
	dirty bool
}

// New returns an empty session that will be saved at the end of the request.
func New(id string) *Session {
	return &Session{ID: id, isNew: true, dirty: true}
}

// IsNew reports whether the session was created during this request.
func (s *Session) IsNew() bool { return s.isNew }

// IsDirty reports whether the session must be saved.
func (s *Session) IsDirty() bool { return s.dirty }

// MarkDirty flags the session for saving.
func (s *Session) MarkDirty() { s.dirty = true }

// SetTriggerCache replaces the cached trigger sets.
func (s *Session) SetTriggerCache(entry *models.TriggerCacheEntry) {
	s.TriggerCache = entry
	s.dirty = true
}

// ClearTriggerCache drops the cached trigger sets. Other fields are kept.
func (s *Session) ClearTriggerCache() {
	if s.TriggerCache == nil {
		return
	}
	s.TriggerCache = nil
	s.dirty = true
}

// Store persists sessions between requests.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

func encode(s *Session) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}
	return data, nil
}

func decode(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingSession, err)
	}
	return &s, nil
}

type sessionCtxKey struct{}

// WithContext returns a copy of ctx carrying s.
func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// FromContext returns the session stored by [WithContext], if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return s, ok && s != nil
}
