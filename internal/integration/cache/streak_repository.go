package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
)

const (
	streakKeyPrefix   = "streak:"
	fieldCount        = "count"
	fieldLastActivity = "last_activity"
)

// StreakRepository stores savings streaks as Redis hashes keyed by user.
type StreakRepository struct {
	client redis.Cmdable
}

// NewStreakRepository creates a Redis-backed streak repository.
func NewStreakRepository(client redis.Cmdable) *StreakRepository {
	return &StreakRepository{client: client}
}

func streakKey(userID uuid.UUID) string {
	return streakKeyPrefix + userID.String()
}

// Get returns the stored streak, a zero streak when none exists.
func (r *StreakRepository) Get(ctx context.Context, userID uuid.UUID) (entity.Streak, error) {
	values, err := r.client.HGetAll(ctx, streakKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return entity.Streak{}, nil
		}
		return entity.Streak{}, fmt.Errorf("failed to read streak: %w", err)
	}
	if len(values) == 0 {
		return entity.Streak{}, nil
	}

	count, err := strconv.Atoi(values[fieldCount])
	if err != nil {
		return entity.Streak{}, fmt.Errorf("corrupt streak count %q: %w", values[fieldCount], err)
	}

	streak := entity.Streak{Count: count}
	if raw := values[fieldLastActivity]; raw != "" {
		day, err := entity.ParseDate(raw)
		if err != nil {
			return entity.Streak{}, fmt.Errorf("corrupt streak date %q: %w", raw, err)
		}
		streak.LastActivity = &day
	}

	return streak, nil
}

// Save replaces the stored streak.
func (r *StreakRepository) Save(ctx context.Context, userID uuid.UUID, streak entity.Streak) error {
	last := ""
	if streak.LastActivity != nil {
		last = streak.LastActivity.Format(entity.DateLayout)
	}

	if err := r.client.HSet(ctx, streakKey(userID),
		fieldCount, strconv.Itoa(streak.Count),
		fieldLastActivity, last,
	).Err(); err != nil {
		return fmt.Errorf("failed to save streak: %w", err)
	}

	return nil
}

var _ adapter.StreakRepository = (*StreakRepository)(nil)
