package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/moodlog/mood-journal/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCheckEmailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockEmailReader(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "email available",
			inputBody: CheckEmailRequest{Email: "new@example.com"},
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "new@example.com").
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &CheckEmailResponse{
				Exists:  false,
				Message: "Email available",
			},
		},
		{
			name:      "email taken",
			inputBody: CheckEmailRequest{Email: "jane@example.com"},
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "jane@example.com").
					Return(&models.UserDB{ID: 1, Email: "jane@example.com"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &CheckEmailResponse{
				Exists:  true,
				Message: "Email already registered",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &CheckEmailErrorResponse{
				Error: "invalid request body",
			},
		},
		{
			name:      "internal error",
			inputBody: CheckEmailRequest{Email: "jane@example.com"},
			mockSetup: func() {
				mockReader.EXPECT().
					GetByEmail(gomock.Any(), "jane@example.com").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &CheckEmailErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/check-email", bytes.NewReader(bodyBytes))
			w := httptest.NewRecorder()

			handler := NewCheckEmailHandler(mockReader)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &CheckEmailResponse{}
			default:
				respBody = &CheckEmailErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
