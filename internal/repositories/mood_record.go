package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/models"
)

// MoodRecordWriteRepository handles mood record write operations
type MoodRecordWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMoodRecordWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MoodRecordWriteRepository {
	return &MoodRecordWriteRepository{db: db, txGetter: txGetter}
}

// Upsert performs an atomic insert-or-overwrite on the (user_id, created_at)
// day key: the first submission of the day creates the row, later ones
// replace its mood type, content and fine timestamp. Last write per day wins.
func (r *MoodRecordWriteRepository) Upsert(ctx context.Context, userID, moodTypeID int64, content string) error {
	query := `
		INSERT INTO mood_records (user_id, mood_type_id, content, created_at, created_time)
		VALUES ($1, $2, $3, CURRENT_DATE, NOW())
		ON CONFLICT (user_id, created_at)
		DO UPDATE SET mood_type_id = EXCLUDED.mood_type_id,
		              content = EXCLUDED.content,
		              created_time = NOW()
		RETURNING id
	`
	args := []any{userID, moodTypeID, content}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var id int64
	err := sqlx.GetContext(ctx, executor, &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return err
}

// MoodRecordReadRepository handles mood record read operations
type MoodRecordReadRepository struct {
	db *sqlx.DB
}

func NewMoodRecordReadRepository(db *sqlx.DB) *MoodRecordReadRepository {
	return &MoodRecordReadRepository{db: db}
}

// ListBetween returns the user's records whose day key lies within
// [startDate, endDate] inclusive, joined with their mood type, ordered
// ascending by day.
func (r *MoodRecordReadRepository) ListBetween(ctx context.Context, userID int64, startDate, endDate string) ([]models.MoodRecordView, error) {
	const query = `
		SELECT mr.created_at,
		       mt.name AS mood_type,
		       mt.value AS mood_value,
		       mr.content,
		       mr.created_time
		FROM mood_records mr
		JOIN mood_types mt ON mr.mood_type_id = mt.id
		WHERE mr.user_id = $1
		  AND mr.created_at BETWEEN $2::date AND $3::date
		ORDER BY mr.created_at ASC
	`

	var records []models.MoodRecordView
	err := r.db.SelectContext(ctx, &records, query, userID, startDate, endDate)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, startDate, endDate},
		"result", len(records),
		"error", err,
	)

	return records, err
}

// LatestPerDay returns, for each day in [from, to] having at least one
// record, the record with the maximum fine timestamp for that day,
// ordered by day ascending. Days without records are absent.
func (r *MoodRecordReadRepository) LatestPerDay(ctx context.Context, userID int64, from, to time.Time) ([]models.TrendPoint, error) {
	const query = `
		SELECT DISTINCT ON (mr.created_at)
		       to_char(mr.created_at, 'YYYY-MM-DD') AS date,
		       mt.value AS mood_value,
		       mr.content
		FROM mood_records mr
		JOIN mood_types mt ON mr.mood_type_id = mt.id
		WHERE mr.user_id = $1
		  AND mr.created_at BETWEEN $2::date AND $3::date
		ORDER BY mr.created_at ASC, mr.created_time DESC
	`

	var points []models.TrendPoint
	err := r.db.SelectContext(ctx, &points, query, userID, from, to)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, from, to},
		"result", len(points),
		"error", err,
	)

	return points, err
}

// CountByType returns the user's lifetime record count per mood type,
// most positive type first. Types never used are omitted.
func (r *MoodRecordReadRepository) CountByType(ctx context.Context, userID int64) ([]models.MoodTypeCount, error) {
	const query = `
		SELECT mt.name AS mood_type,
		       mt.value AS mood_value,
		       COUNT(*) AS count
		FROM mood_records mr
		JOIN mood_types mt ON mr.mood_type_id = mt.id
		WHERE mr.user_id = $1
		GROUP BY mt.id, mt.name, mt.value
		ORDER BY mt.value DESC
	`

	var counts []models.MoodTypeCount
	err := r.db.SelectContext(ctx, &counts, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(counts),
		"error", err,
	)

	return counts, err
}
