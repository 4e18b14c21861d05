package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/models"
)

// MoodTypeLister defines the interface that the mood service must implement.
type MoodTypeLister interface {
	ListTypes(ctx context.Context) ([]models.MoodTypeDB, error)
}

// MoodTypesErrorResponse represents an error response for the type listing
// swagger:model MoodTypesErrorResponse
type MoodTypesErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewMoodTypesHandler returns an HTTP handler listing all mood types.
// @Summary List mood types
// @Description Returns the static mood type reference set
// @Tags mood
// @Produce json
// @Success 200 {array} models.MoodTypeDB "Mood types"
// @Failure 500 {object} handlers.MoodTypesErrorResponse "Internal server error"
// @Router /mood-types [get]
func NewMoodTypesHandler(svc MoodTypeLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.ListTypes(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list mood types", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MoodTypesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(types)
	}
}
