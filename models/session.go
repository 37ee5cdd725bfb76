package models

import "time"

// TriggerCacheEntry holds a user's custom trigger names for one session.
// It is advisory: a stale or missing entry only costs one extra query.
type TriggerCacheEntry struct {
	BangTriggers map[string]struct{} `json:"bang_triggers"`
	TabTriggers  map[string]struct{} `json:"tab_triggers"`
	CachedAt     time.Time           `json:"cached_at"`
}

// HasBang reports whether trigger is one of the cached custom bang triggers.
func (e *TriggerCacheEntry) HasBang(trigger string) bool {
	if e == nil {
		return false
	}
	_, ok := e.BangTriggers[trigger]
	return ok
}

// HasTab reports whether trigger is one of the cached tab group triggers.
func (e *TriggerCacheEntry) HasTab(trigger string) bool {
	if e == nil {
		return false
	}
	_, ok := e.TabTriggers[trigger]
	return ok
}

// RateLimitState counts searches of an anonymous session.
// A fresh session starts at zero.
type RateLimitState struct {
	SearchCount       int   `json:"search_count"`
	CumulativeDelayMs int64 `json:"cumulative_delay_ms"`
}

// NewTriggerSet builds a set from a list of triggers.
func NewTriggerSet(triggers []string) map[string]struct{} {
	set := make(map[string]struct{}, len(triggers))
	for _, t := range triggers {
		set[t] = struct{}{}
	}
	return set
}
