package worker

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/praxise/interview-backend/internal/config"
	"github.com/praxise/interview-backend/internal/service"
)

// SessionReaper finalizes interview sessions abandoned mid-run. Every
// response refreshes the session's score in the active-session sorted set;
// entries older than the idle TTL get reaped. Sessions with at least one
// recorded response are ended early so the candidate still gets a report;
// empty ones are deleted outright.
type SessionReaper struct {
	store    service.SessionStore
	rdb      *redis.Client
	idleTTL  time.Duration
	interval time.Duration
	log      zerolog.Logger
}

// NewSessionReaper creates a new SessionReaper.
func NewSessionReaper(store service.SessionStore, rdb *redis.Client, idleTTL, interval time.Duration, log zerolog.Logger) *SessionReaper {
	return &SessionReaper{
		store:    store,
		rdb:      rdb,
		idleTTL:  idleTTL,
		interval: interval,
		log:      log.With().Str("component", "session_reaper").Logger(),
	}
}

// Start begins the reap loop. Call in a goroutine.
func (w *SessionReaper) Start(ctx context.Context) {
	w.log.Info().Dur("idle_ttl", w.idleTTL).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.reapIdle(ctx)
		}
	}
}

func (w *SessionReaper) reapIdle(ctx context.Context) {
	deadline := time.Now().Add(-w.idleTTL).Unix()

	members, err := w.rdb.ZRangeByScore(ctx, config.RedisKey.ActiveSessionsKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(deadline, 10),
	}).Result()
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error().Err(err).Msg("ZRangeByScore error")
		}
		return
	}

	for _, member := range members {
		w.reapOne(ctx, member)
	}
}

func (w *SessionReaper) reapOne(ctx context.Context, member string) {
	// The registry entry goes away regardless of how the reap itself ends;
	// a session that fails to finalize should not be retried every tick.
	defer w.rdb.ZRem(ctx, config.RedisKey.ActiveSessionsKey(), member)

	id, err := uuid.Parse(member)
	if err != nil {
		w.log.Warn().Str("member", member).Msg("Malformed registry entry")
		return
	}

	sess, err := w.store.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, service.ErrSessionNotFound) {
			w.log.Error().Err(err).Str("session_id", member).Msg("Get error")
		}
		return
	}

	if len(sess.Responses) > 0 {
		if err := w.store.End(ctx, id, true); err != nil {
			w.log.Error().Err(err).Str("session_id", member).Msg("End error")
			return
		}
		w.log.Info().Str("session_id", member).Msg("Idle session ended early")
		return
	}

	if err := w.store.Delete(ctx, id); err != nil {
		w.log.Error().Err(err).Str("session_id", member).Msg("Delete error")
		return
	}
	w.log.Info().Str("session_id", member).Msg("Empty idle session deleted")
}
