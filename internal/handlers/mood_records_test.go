package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/moodlog/mood-journal/internal/jwt"
	"github.com/moodlog/mood-journal/internal/middlewares"
	"github.com/moodlog/mood-journal/internal/models"
	"github.com/moodlog/mood-journal/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestListRecordsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMoodRecordLister(ctrl)

	claims := &jwt.Claims{UserID: 42, Email: "jane@example.com"}

	rows := []models.MoodRecordView{
		{
			CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			MoodType:  "HAPPY",
			MoodValue: 5,
			Content:   "good day",
		},
		{
			CreatedAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			MoodType:  "SAD",
			MoodValue: 1,
			Content:   "not so much",
		},
	}

	t.Run("explicit range passed through", func(t *testing.T) {
		mockSvc.EXPECT().
			ListRecords(gomock.Any(), int64(42), "2025-03-01", "2025-03-31").
			Return(rows, nil)

		req := httptest.NewRequest(http.MethodGet, "/mood/records?start_date=2025-03-01&end_date=2025-03-31", nil)
		req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
		w := httptest.NewRecorder()

		NewListRecordsHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got []models.MoodRecordView
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("missing query params forwarded empty", func(t *testing.T) {
		mockSvc.EXPECT().
			ListRecords(gomock.Any(), int64(42), "", "").
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/mood/records", nil)
		req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
		w := httptest.NewRecorder()

		NewListRecordsHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("no claims in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/mood/records", nil)
		w := httptest.NewRecorder()

		NewListRecordsHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user not found", func(t *testing.T) {
		mockSvc.EXPECT().
			ListRecords(gomock.Any(), int64(42), "", "").
			Return(nil, services.ErrUserDoesNotExist)

		req := httptest.NewRequest(http.MethodGet, "/mood/records", nil)
		req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
		w := httptest.NewRecorder()

		NewListRecordsHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var got ListRecordsErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &got)
		assert.NoError(t, err)
		assert.Equal(t, "User not found", got.Error)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			ListRecords(gomock.Any(), int64(42), "", "").
			Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/mood/records", nil)
		req = req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
		w := httptest.NewRecorder()

		NewListRecordsHandler(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
