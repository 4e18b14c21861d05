package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrInvalidMoodType is returned when the submitted type name is unknown.
var ErrInvalidMoodType = errors.New("invalid mood type")

// Default range for record listings when the caller gives no bounds.
const (
	DefaultStartDate = "2024-01-01"
	DefaultEndDate   = "2024-12-31"
)

// MoodTypeReader reads the static mood type reference set.
type MoodTypeReader interface {
	List(ctx context.Context) ([]models.MoodTypeDB, error)
	GetByName(ctx context.Context, name string) (*models.MoodTypeDB, error)
}

// MoodTypeCache caches the reference set.
type MoodTypeCache interface {
	Get(ctx context.Context) ([]models.MoodTypeDB, error)
	Set(ctx context.Context, types []models.MoodTypeDB) error
}

// MoodRecordWriter performs the atomic day-key upsert.
type MoodRecordWriter interface {
	Upsert(ctx context.Context, userID, moodTypeID int64, content string) error
}

// MoodRecordReader defines read operations over mood records.
type MoodRecordReader interface {
	ListBetween(ctx context.Context, userID int64, startDate, endDate string) ([]models.MoodRecordView, error)
	LatestPerDay(ctx context.Context, userID int64, from, to time.Time) ([]models.TrendPoint, error)
	CountByType(ctx context.Context, userID int64) ([]models.MoodTypeCount, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MoodService handles mood record writes and aggregates.
type MoodService struct {
	types       MoodTypeReader
	cache       MoodTypeCache
	reader      MoodRecordReader
	writer      MoodRecordWriter
	users       UserReader
	kafkaWriter KafkaWriter
}

// NewMoodService creates a new MoodService. cache and kafkaWriter may be nil.
func NewMoodService(
	types MoodTypeReader,
	cache MoodTypeCache,
	reader MoodRecordReader,
	writer MoodRecordWriter,
	users UserReader,
	kafkaWriter KafkaWriter,
) *MoodService {
	return &MoodService{
		types:       types,
		cache:       cache,
		reader:      reader,
		writer:      writer,
		users:       users,
		kafkaWriter: kafkaWriter,
	}
}

// ListTypes returns the full mood type reference set, serving from the
// cache when possible. Cache failures degrade to direct reads.
func (s *MoodService) ListTypes(ctx context.Context) ([]models.MoodTypeDB, error) {
	if s.cache != nil {
		if types, err := s.cache.Get(ctx); err == nil {
			return types, nil
		}
	}

	types, err := s.types.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, types); err != nil {
			logger.Log.Warnw("failed to cache mood types", "err", err)
		}
	}

	return types, nil
}

// Record stores the user's mood for today. A second submission the same
// calendar day overwrites the earlier one in place.
func (s *MoodService) Record(ctx context.Context, userID int64, typeName, content string) error {
	mt, err := s.types.GetByName(ctx, typeName)
	if err != nil {
		logger.Log.Errorw("failed to resolve mood type", "type", typeName, "err", err)
		return err
	}
	if mt == nil {
		logger.Log.Errorw("unknown mood type", "type", typeName)
		return ErrInvalidMoodType
	}

	if err := s.writer.Upsert(ctx, userID, mt.ID, content); err != nil {
		logger.Log.Errorw("failed to upsert mood record", "userID", userID, "err", err)
		return err
	}

	now := time.Now()
	s.publishMoodRecorded(ctx, models.MoodRecordedEvent{
		UserID:     userID,
		MoodType:   mt.Name,
		MoodValue:  mt.Value,
		Day:        now.Format("2006-01-02"),
		RecordedAt: now,
	})

	return nil
}

// publishMoodRecorded publishes a mood event to Kafka. Publishing is best
// effort: failures are logged and never surface to the caller.
func (s *MoodService) publishMoodRecorded(ctx context.Context, event models.MoodRecordedEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "user_id", event.UserID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal mood event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish mood event", "user_id", event.UserID, "err", err)
		return
	}

	logger.Log.Infow("mood event published", "user_id", event.UserID, "day", event.Day)
}

// ListRecords returns the user's records within [startDate, endDate]
// inclusive, defaulting the bounds when empty.
func (s *MoodService) ListRecords(ctx context.Context, userID int64, startDate, endDate string) ([]models.MoodRecordView, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}

	if startDate == "" {
		startDate = DefaultStartDate
	}
	if endDate == "" {
		endDate = DefaultEndDate
	}

	return s.reader.ListBetween(ctx, userID, startDate, endDate)
}

// WeeklyTrend returns the latest record per day within the current
// Monday-to-Sunday window, ordered by date ascending. Days without a
// record are absent from the result.
func (s *MoodService) WeeklyTrend(ctx context.Context, userID int64) ([]models.TrendPoint, error) {
	monday, sunday := weekBounds(time.Now())
	return s.reader.LatestPerDay(ctx, userID, monday, sunday)
}

// Distribution returns the user's lifetime record count per mood type,
// most positive first.
func (s *MoodService) Distribution(ctx context.Context, userID int64) ([]models.MoodTypeCount, error) {
	return s.reader.CountByType(ctx, userID)
}

// weekBounds returns Monday 00:00:00 and Sunday 23:59:59 of the ISO week
// containing now, in now's location. Monday starts the week regardless of
// locale.
func weekBounds(now time.Time) (time.Time, time.Time) {
	offset := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		offset = 6
	}

	monday := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, now.Location())
	sunday := monday.AddDate(0, 0, 6).Add(24*time.Hour - time.Second)
	return monday, sunday
}
