package models

import (
	"time"
)

// MoodTypeDB represents a static mood category, e.g. "happy" with value 5.
// The numeric value orders types for trend and distribution math.
type MoodTypeDB struct {
	ID    int64  `json:"id" db:"id"`       // Primary key
	Name  string `json:"name" db:"name"`   // Unique key, e.g. HAPPY
	Value int    `json:"value" db:"value"` // Ordering/aggregation value
}

// MoodRecordDB represents a user's mood entry for one calendar day.
// The (user_id, created_at) pair is unique: a second submission on the
// same day overwrites type, content and the fine timestamp in place.
type MoodRecordDB struct {
	ID          int64     `json:"id" db:"id"`                     // Primary key
	UserID      int64     `json:"user_id" db:"user_id"`           // Owner
	MoodTypeID  int64     `json:"mood_type_id" db:"mood_type_id"` // Resolved mood type
	Content     string    `json:"content" db:"content"`           // Free-text note
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Day key (date granularity)
	CreatedTime time.Time `json:"created_time" db:"created_time"` // Fine timestamp of the last write
}

// MoodRecordView is a record joined with its mood type, as returned by listings.
type MoodRecordView struct {
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	MoodType    string    `json:"mood_type" db:"mood_type"`
	MoodValue   int       `json:"mood_value" db:"mood_value"`
	Content     string    `json:"content" db:"content"`
	CreatedTime time.Time `json:"created_time" db:"created_time"`
}

// TrendPoint is one day of the weekly trend: the latest record of that day.
type TrendPoint struct {
	Date      string `json:"date" db:"date"` // YYYY-MM-DD
	MoodValue int    `json:"mood_value" db:"mood_value"`
	Content   string `json:"content" db:"content"`
}

// MoodTypeCount is one row of the lifetime distribution.
type MoodTypeCount struct {
	MoodType  string `json:"mood_type" db:"mood_type"`
	MoodValue int    `json:"mood_value" db:"mood_value"`
	Count     int64  `json:"count" db:"count"`
}

// MoodRecordedEvent is published to Kafka after every successful mood write.
type MoodRecordedEvent struct {
	UserID     int64     `json:"user_id"`
	MoodType   string    `json:"mood_type"`
	MoodValue  int       `json:"mood_value"`
	Day        string    `json:"day"` // YYYY-MM-DD
	RecordedAt time.Time `json:"recorded_at"`
}
