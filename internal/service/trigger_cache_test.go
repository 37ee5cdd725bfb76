package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-bangs/internal/session"
	"github.com/MKhiriev/go-bangs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerCache_Load_MissQueriesBothLists(t *testing.T) {
	d := newTestDeps(t)
	ctx := context.Background()
	sess := session.New("s1")

	d.bangs.EXPECT().ListBangTriggers(ctx, int64(1)).Return([]string{"!x", "!y"}, nil)
	d.tabs.EXPECT().ListTabTriggers(ctx, int64(1)).Return([]string{"!work"}, nil)

	entry, err := d.cache.Load(ctx, sess, 1)

	require.NoError(t, err)
	assert.True(t, entry.HasBang("!x"))
	assert.True(t, entry.HasBang("!y"))
	assert.True(t, entry.HasTab("!work"))
	assert.False(t, entry.HasBang("!work"))
	assert.Equal(t, d.now, entry.CachedAt)
	assert.Same(t, entry, sess.TriggerCache)
	assert.True(t, sess.IsDirty())
}

func TestTriggerCache_Load_FreshEntryHitsNoDatabase(t *testing.T) {
	d := newTestDeps(t)
	sess := session.New("s1")
	d.warmCache(sess, []string{"!x"}, nil)

	// 59 minutes later the entry is still trusted; no mock calls expected
	d.now = d.now.Add(59 * time.Minute)

	entry, err := d.cache.Load(context.Background(), sess, 1)

	require.NoError(t, err)
	assert.True(t, entry.HasBang("!x"))
}

func TestTriggerCache_Load_ExpiredEntryIsRefilled(t *testing.T) {
	d := newTestDeps(t)
	ctx := context.Background()
	sess := session.New("s1")
	d.warmCache(sess, []string{"!old"}, nil)
	d.now = d.now.Add(60 * time.Minute)

	d.bangs.EXPECT().ListBangTriggers(ctx, int64(1)).Return([]string{"!new"}, nil)
	d.tabs.EXPECT().ListTabTriggers(ctx, int64(1)).Return(nil, nil)

	entry, err := d.cache.Load(ctx, sess, 1)

	require.NoError(t, err)
	assert.False(t, entry.HasBang("!old"))
	assert.True(t, entry.HasBang("!new"))
	assert.Equal(t, d.now, entry.CachedAt)
}

func TestTriggerCache_Load_Errors(t *testing.T) {
	dbErr := errors.New("db down")

	t.Run("bangs", func(t *testing.T) {
		d := newTestDeps(t)
		ctx := context.Background()
		sess := session.New("s1")
		d.bangs.EXPECT().ListBangTriggers(ctx, int64(1)).Return(nil, dbErr)

		_, err := d.cache.Load(ctx, sess, 1)

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, sess.TriggerCache)
	})

	t.Run("tabs", func(t *testing.T) {
		d := newTestDeps(t)
		ctx := context.Background()
		sess := session.New("s1")
		d.bangs.EXPECT().ListBangTriggers(ctx, int64(1)).Return(nil, nil)
		d.tabs.EXPECT().ListTabTriggers(ctx, int64(1)).Return(nil, dbErr)

		_, err := d.cache.Load(ctx, sess, 1)

		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, sess.TriggerCache)
	})
}

func TestTriggerCache_Invalidate_KeepsOtherSessionData(t *testing.T) {
	d := newTestDeps(t)
	sess := session.New("s1")
	sess.RateLimit = models.RateLimitState{SearchCount: 3, CumulativeDelayMs: 5000}
	d.warmCache(sess, []string{"!x"}, []string{"!t"})

	d.cache.Invalidate(sess)

	assert.Nil(t, sess.TriggerCache)
	assert.Equal(t, "s1", sess.ID)
	assert.Equal(t, 3, sess.RateLimit.SearchCount)
	assert.Equal(t, int64(5000), sess.RateLimit.CumulativeDelayMs)
}

func TestTriggerCache_Invalidate_NilSession(t *testing.T) {
	d := newTestDeps(t)

	assert.NotPanics(t, func() { d.cache.Invalidate(nil) })
}
