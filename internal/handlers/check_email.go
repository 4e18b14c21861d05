package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/models"
)

// EmailReader defines the interface that the user lookup must implement.
type EmailReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// CheckEmailRequest represents the JSON body for the email check
// swagger:model CheckEmailRequest
type CheckEmailRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`
}

// CheckEmailResponse reports whether an email is already registered
// swagger:model CheckEmailResponse
type CheckEmailResponse struct {
	// Whether a user with this email exists
	Exists bool `json:"exists"`

	// Human-readable availability message
	// default: Email available
	Message string `json:"message"`
}

// CheckEmailErrorResponse represents an error response for the email check
// swagger:model CheckEmailErrorResponse
type CheckEmailErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewCheckEmailHandler returns an HTTP handler reporting email availability.
// @Summary Check email availability
// @Description Reports whether the given email already belongs to a registered user
// @Tags auth
// @Accept json
// @Produce json
// @Param checkEmailRequest body handlers.CheckEmailRequest true "Email check request"
// @Success 200 {object} handlers.CheckEmailResponse "Availability result"
// @Failure 500 {object} handlers.CheckEmailErrorResponse "Internal server error"
// @Router /check-email [post]
func NewCheckEmailHandler(reader EmailReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckEmailRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckEmailErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := reader.GetByEmail(r.Context(), req.Email)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CheckEmailErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := CheckEmailResponse{Exists: user != nil, Message: "Email available"}
		if resp.Exists {
			resp.Message = "Email already registered"
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
