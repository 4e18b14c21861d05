package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/models"
)

// MoodTypeReadRepository reads the static mood type reference set
type MoodTypeReadRepository struct {
	db *sqlx.DB
}

func NewMoodTypeReadRepository(db *sqlx.DB) *MoodTypeReadRepository {
	return &MoodTypeReadRepository{db: db}
}

// List returns all mood types ordered by their numeric value.
func (r *MoodTypeReadRepository) List(ctx context.Context) ([]models.MoodTypeDB, error) {
	const query = `
		SELECT id, name, value
		FROM mood_types
		ORDER BY value DESC
	`

	var types []models.MoodTypeDB
	err := r.db.SelectContext(ctx, &types, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(types),
		"error", err,
	)

	return types, err
}

// GetByName resolves a mood type by its name key, or nil if unknown.
func (r *MoodTypeReadRepository) GetByName(ctx context.Context, name string) (*models.MoodTypeDB, error) {
	const query = `
		SELECT id, name, value
		FROM mood_types
		WHERE name = $1
		LIMIT 1
	`

	var mt models.MoodTypeDB
	err := r.db.GetContext(ctx, &mt, query, name)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &mt, nil
}
