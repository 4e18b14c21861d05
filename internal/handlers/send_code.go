package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/moodlog/mood-journal/internal/logger"
	"github.com/moodlog/mood-journal/internal/services"
)

// CodeRequester defines the interface that the verification service must implement.
type CodeRequester interface {
	RequestCode(ctx context.Context, email string) error
}

// SendCodeRequest represents the JSON body for requesting a verification code
// swagger:model SendCodeRequest
type SendCodeRequest struct {
	// Email
	// required: true
	// default: jane@example.com
	Email string `json:"email"`
}

// SendCodeResponse represents a successful code dispatch
// swagger:model SendCodeResponse
type SendCodeResponse struct {
	// Success message
	// default: Verification code sent
	Message string `json:"message"`
}

// SendCodeErrorResponse represents an error response for the code request
// swagger:model SendCodeErrorResponse
type SendCodeErrorResponse struct {
	// Error message
	// default: Email already registered
	Error string `json:"error"`
}

// NewSendCodeHandler returns an HTTP handler that emails a verification code.
// @Summary Request a verification code
// @Description Generates a 6-digit code valid for 10 minutes and emails it to the given address
// @Tags auth
// @Accept json
// @Produce json
// @Param sendCodeRequest body handlers.SendCodeRequest true "Code request"
// @Success 200 {object} handlers.SendCodeResponse "Code sent"
// @Failure 400 {object} handlers.SendCodeErrorResponse "Email already registered"
// @Failure 500 {object} handlers.SendCodeErrorResponse "Internal server error"
// @Router /send-code [post]
func NewSendCodeHandler(svc CodeRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendCodeRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendCodeErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if err := svc.RequestCode(r.Context(), req.Email); err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SendCodeErrorResponse{
					Error: "Email already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SendCodeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SendCodeResponse{
			Message: "Verification code sent",
		})
	}
}
