package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the reference set is not cached.
var ErrCacheMiss = errors.New("mood types not found in cache")

const moodTypesKey = "mood_types"

// MoodTypeCacheRepository caches the static mood type set in Redis.
// The set changes only with deployments, so a TTL-bound copy keeps
// reference reads off Postgres.
type MoodTypeCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewMoodTypeCacheRepository creates a new repository instance with optional TTL
func NewMoodTypeCacheRepository(client *redis.Client, expiration time.Duration) *MoodTypeCacheRepository {
	return &MoodTypeCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached reference set, or ErrCacheMiss when absent.
func (r *MoodTypeCacheRepository) Get(ctx context.Context) ([]models.MoodTypeDB, error) {
	val, err := r.client.Get(ctx, moodTypesKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", moodTypesKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var types []models.MoodTypeDB
	if err := json.Unmarshal([]byte(val), &types); err != nil {
		logger.Log.Infow(
			"key", moodTypesKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", moodTypesKey,
		"result", len(types),
		"error", nil,
	)

	return types, nil
}

// Set caches the reference set with the configured expiration.
func (r *MoodTypeCacheRepository) Set(ctx context.Context, types []models.MoodTypeDB) error {
	data, err := json.Marshal(types)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, moodTypesKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", moodTypesKey,
		"result", len(types),
		"error", err,
	)

	return err
}
