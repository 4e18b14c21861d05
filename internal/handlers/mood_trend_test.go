package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/moodlog/mood-journal/internal/jwt"
	"github.com/moodlog/mood-journal/internal/middlewares"
	"github.com/moodlog/mood-journal/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWeeklyTrendHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockWeeklyTrender(ctrl)

	claims := &jwt.Claims{UserID: 42, Email: "jane@example.com"}

	points := []models.TrendPoint{
		{Date: "2026-08-24", MoodValue: 5, Content: "good"},
		{Date: "2026-08-26", MoodValue: 1, Content: "rough"},
	}

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().WeeklyTrend(gomock.Any(), int64(42)).Return(points, nil)

		req := httptest.NewRequest(http.MethodGet, "/mood/weekly-trend", nil)
		req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
		w := httptest.NewRecorder()

		NewWeeklyTrendHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []models.TrendPoint
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, points, got)
	})

	t.Run("empty week serializes as empty array", func(t *testing.T) {
		mockSvc.EXPECT().WeeklyTrend(gomock.Any(), int64(42)).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/mood/weekly-trend", nil)
		req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
		w := httptest.NewRecorder()

		NewWeeklyTrendHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("no claims in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mood/weekly-trend", nil)
		w := httptest.NewRecorder()

		NewWeeklyTrendHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().WeeklyTrend(gomock.Any(), int64(42)).Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/mood/weekly-trend", nil)
		req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
		w := httptest.NewRecorder()

		NewWeeklyTrendHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var got WeeklyTrendErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, "Internal server error", got.Error)
	})
}
