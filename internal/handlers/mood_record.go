package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/middlewares"
	"github.com/moodlog/mood-journal/internal/services"
)

// MoodRecorder defines the interface that the mood service must implement.
type MoodRecorder interface {
	Record(ctx context.Context, userID int64, typeName, content string) error
}

// RecordMoodRequest represents the JSON body for a mood submission
// swagger:model RecordMoodRequest
type RecordMoodRequest struct {
	// Mood type name
	// required: true
	// default: HAPPY
	Type string `json:"type"`

	// Free-text note
	// default: good day
	Content string `json:"content"`
}

// RecordMoodResponse represents a successful mood submission
// swagger:model RecordMoodResponse
type RecordMoodResponse struct {
	// Success message
	// default: Mood recorded
	Message string `json:"message"`
}

// RecordMoodErrorResponse represents an error response for a mood submission
// swagger:model RecordMoodErrorResponse
type RecordMoodErrorResponse struct {
	// Error message
	// default: Invalid mood type
	Error string `json:"error"`
}

// NewRecordMoodHandler returns an HTTP handler recording today's mood.
// @Summary Record today's mood
// @Description Stores the mood for the current calendar day. A second submission the same day overwrites the first.
// @Tags mood
// @Accept json
// @Produce json
// @Param recordMoodRequest body handlers.RecordMoodRequest true "Mood submission"
// @Success 200 {object} handlers.RecordMoodResponse "Mood recorded"
// @Failure 400 {object} handlers.RecordMoodErrorResponse "Invalid mood type"
// @Failure 401 {object} handlers.RecordMoodErrorResponse "Unauthorized"
// @Router /mood/record [post]
// @Security BearerAuth
func NewRecordMoodHandler(svc MoodRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(RecordMoodErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		var req RecordMoodRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RecordMoodErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.Record(ctx, claims.UserID, req.Type, req.Content); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidMoodType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RecordMoodErrorResponse{
					Error: "Invalid mood type",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RecordMoodErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RecordMoodResponse{
			Message: "Mood recorded",
		})
	}
}
