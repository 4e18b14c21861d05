package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/middlewares"
	"github.com/moodlog/mood-journal/internal/models"
	"github.com/moodlog/mood-journal/internal/services"
)

// MoodRecordLister defines the interface that the mood service must implement.
type MoodRecordLister interface {
	ListRecords(ctx context.Context, userID int64, startDate, endDate string) ([]models.MoodRecordView, error)
}

// ListRecordsErrorResponse represents an error response for record listings
// swagger:model ListRecordsErrorResponse
type ListRecordsErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewListRecordsHandler returns an HTTP handler listing mood records in a date range.
// @Summary List mood records
// @Description Returns the user's mood records within [start_date, end_date] inclusive, ordered by day ascending. Defaults to the 2024 calendar year.
// @Tags mood
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} models.MoodRecordView "Mood records"
// @Failure 401 {object} handlers.ListRecordsErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ListRecordsErrorResponse "User not found"
// @Router /mood/records [get]
// @Security BearerAuth
func NewListRecordsHandler(svc MoodRecordLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListRecordsErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")

		records, err := svc.ListRecords(ctx, claims.UserID, startDate, endDate)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ListRecordsErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListRecordsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		if records == nil {
			records = []models.MoodRecordView{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(records)
	}
}
