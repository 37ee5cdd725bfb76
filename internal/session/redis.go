// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-bangs/internal/logger"
)

// keyPrefix namespaces session keys in a shared Redis database.
const keyPrefix = "bangs:session:"

// RedisOptions configures [NewRedisClient].
type RedisOptions struct {
	Addr     string
	Password string
	DB       int

	// ConnectTimeout bounds all connection attempts together.
	ConnectTimeout time.Duration
	// RetryInterval is the first wait between attempts. It doubles up to MaxWait.
	RetryInterval time.Duration
	MaxWait       time.Duration
	PingTimeout   time.Duration
}

// DefaultRedisOptions returns options with the retry policy filled in.
func DefaultRedisOptions(addr, password string, db int) RedisOptions {
	return RedisOptions{
		Addr:           addr,
		Password:       password,
		DB:             db,
		ConnectTimeout: 30 * time.Second,
		RetryInterval:  time.Second,
		MaxWait:        8 * time.Second,
		PingTimeout:    2 * time.Second,
	}
}

// NewRedisClient connects to Redis, retrying the ping with exponential
// backoff until ConnectTimeout elapses.
func NewRedisClient(ctx context.Context, opts RedisOptions, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()

	log.Info().Str("func", "NewRedisClient").Str("addr", opts.Addr).Msg("connecting to redis")

	wait := opts.RetryInterval
	for attempt := 1; ; attempt++ {
		pingCtx, pingCancel := context.WithTimeout(ctx, opts.PingTimeout)
		err := client.Ping(pingCtx).Err()
		pingCancel()

		if err == nil {
			log.Info().Str("func", "NewRedisClient").Int("attempts", attempt).Msg("connected to redis")
			return client, nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			_ = client.Close()
			log.Err(err).Str("func", "NewRedisClient").Int("attempts", attempt).Msg("redis unavailable")
			return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrStoreUnavailable, opts.Addr, attempt, err)
		case <-timer.C:
			log.Warn().Err(err).Str("func", "NewRedisClient").Int("attempt", attempt).Dur("next_retry_in", wait).Msg("redis connection failed, retrying")
			wait *= 2
			if wait > opts.MaxWait {
				wait = opts.MaxWait
			}
		}
	}
}

// RedisStore keeps sessions as JSON values with a sliding TTL.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore builds a [RedisStore] over an already connected client.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return decode(data)
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	s.isNew = false
	s.dirty = false
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the underlying client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
