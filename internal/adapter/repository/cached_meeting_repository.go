package repository

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/meeting-scribe/errors"
	"github.com/johnquangdev/meeting-scribe/internal/domain/entities"
	"github.com/johnquangdev/meeting-scribe/internal/domain/repositories"
	"github.com/johnquangdev/meeting-scribe/internal/infrastructure/cache"
)

const meetingCachePrefix = "meeting:"

// CachedMeetingRepository keeps complete meetings in a cache. Incomplete
// meetings are always read from the underlying repository because they may
// still be receiving artifacts.
type CachedMeetingRepository struct {
	next   repositories.MeetingRepository
	store  cache.Store
	ttl    time.Duration
	logger *zap.Logger
}

var _ repositories.MeetingRepository = (*CachedMeetingRepository)(nil)

// NewCachedMeetingRepository wraps next with store
func NewCachedMeetingRepository(next repositories.MeetingRepository, store cache.Store, ttl time.Duration, logger *zap.Logger) *CachedMeetingRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedMeetingRepository{next: next, store: store, ttl: ttl, logger: logger}
}

func (r *CachedMeetingRepository) Create(ctx context.Context, id string) error {
	return r.next.Create(ctx, id)
}

func (r *CachedMeetingRepository) Write(ctx context.Context, id string, artifact entities.Artifact, content string) error {
	if err := r.next.Write(ctx, id, artifact, content); err != nil {
		return err
	}
	if err := r.store.Delete(ctx, meetingCachePrefix+id); err != nil {
		r.cacheFailed("invalidate", id, err)
	}
	return nil
}

// Get serves complete meetings from the cache. Cache failures degrade to a
// direct read.
func (r *CachedMeetingRepository) Get(ctx context.Context, id string) (*entities.Meeting, error) {
	key := meetingCachePrefix + id
	if raw, ok, err := r.store.Get(ctx, key); err != nil {
		r.cacheFailed("read", id, err)
	} else if ok {
		var m entities.Meeting
		if err := json.Unmarshal([]byte(raw), &m); err == nil {
			return &m, nil
		}
		r.logger.Warn("dropping undecodable cache entry", zap.String("meeting_id", id))
		_ = r.store.Delete(ctx, key)
	}

	m, err := r.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.IsComplete() {
		if raw, err := json.Marshal(m); err == nil {
			if err := r.store.Set(ctx, key, string(raw), r.ttl); err != nil {
				r.cacheFailed("write", id, err)
			}
		}
	}
	return m, nil
}

// cacheFailed logs a cache error; the request continues against the store
func (r *CachedMeetingRepository) cacheFailed(operation, id string, err error) {
	appErr := apperrors.ErrCacheFailed(operation, err)
	r.logger.Warn(appErr.Message,
		zap.String("code", appErr.Code.String()),
		zap.String("meeting_id", id),
		zap.Error(appErr),
	)
}

func (r *CachedMeetingRepository) ListIDs(ctx context.Context) ([]string, error) {
	return r.next.ListIDs(ctx)
}
