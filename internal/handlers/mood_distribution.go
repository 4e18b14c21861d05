package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/middlewares"
	"github.com/moodlog/mood-journal/internal/models"
)

// Distributor defines the interface that the mood service must implement.
type Distributor interface {
	Distribution(ctx context.Context, userID int64) ([]models.MoodTypeCount, error)
}

// DistributionErrorResponse represents an error response for the distribution
// swagger:model DistributionErrorResponse
type DistributionErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewDistributionHandler returns an HTTP handler for the lifetime mood distribution.
// @Summary Mood distribution
// @Description Returns the user's lifetime record count per mood type, most positive first. Types never used are omitted.
// @Tags mood
// @Produce json
// @Success 200 {array} models.MoodTypeCount "Distribution rows"
// @Failure 401 {object} handlers.DistributionErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.DistributionErrorResponse "Internal server error"
// @Router /mood/distribution [get]
// @Security BearerAuth
func NewDistributionHandler(svc Distributor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DistributionErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		counts, err := svc.Distribution(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to compute distribution", "userID", claims.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DistributionErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if counts == nil {
			counts = []models.MoodTypeCount{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(counts)
	}
}
