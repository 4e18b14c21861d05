package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/middlewares"
	"github.com/moodlog/mood-journal/internal/models"
)

// WeeklyTrender defines the interface that the mood service must implement.
type WeeklyTrender interface {
	WeeklyTrend(ctx context.Context, userID int64) ([]models.TrendPoint, error)
}

// WeeklyTrendErrorResponse represents an error response for the weekly trend
// swagger:model WeeklyTrendErrorResponse
type WeeklyTrendErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewWeeklyTrendHandler returns an HTTP handler for the current week's mood trend.
// @Summary Weekly mood trend
// @Description Returns the latest mood record per day within the current Monday-to-Sunday window. Days without a record are absent.
// @Tags mood
// @Produce json
// @Success 200 {array} models.TrendPoint "Trend points, date ascending"
// @Failure 401 {object} handlers.WeeklyTrendErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.WeeklyTrendErrorResponse "Internal server error"
// @Router /mood/weekly-trend [get]
// @Security BearerAuth
func NewWeeklyTrendHandler(svc WeeklyTrender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WeeklyTrendErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		points, err := svc.WeeklyTrend(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to compute weekly trend", "userID", claims.UserID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(WeeklyTrendErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if points == nil {
			points = []models.TrendPoint{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(points)
	}
}
