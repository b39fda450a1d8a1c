package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bibliotech/recommendation-service/internal/domain"
	"github.com/bibliotech/recommendation-service/internal/service"
)

type Handler struct {
	service  *service.Service
	validate *validator.Validate
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		service:  svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// writeServiceError maps service errors onto HTTP status codes. Validation
// failures are the caller's fault, missing records are 404, timeouts 503,
// anything else a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, "validation_error", verr.Msg)
		return
	}
	if errors.Is(err, domain.ErrBookNotFound) {
		writeError(w, http.StatusNotFound, "book_not_found", "Book not found")
		return
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "user_not_found", "User not found")
		return
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		writeError(w, http.StatusServiceUnavailable, "request_timeout", "Request timed out, please try again")
		return
	}
	if domain.IsComputationError(err) {
		writeError(w, http.StatusInternalServerError, "computation_error", "Recommendation scoring failed")
		return
	}
	writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
}
