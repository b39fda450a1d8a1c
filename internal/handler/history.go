package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bibliotech/recommendation-service/internal/domain"
)

type HistoryEntry struct {
	Name     string  `json:"nameDoc" validate:"required"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=5"`
}

type UpdateHistoryRequest struct {
	History []HistoryEntry `json:"history" validate:"required,min=1,dive"`
}

// UpdateHistory godoc
//
//	@Summary		Append to a user's viewing history
//	@Description	Adds entries to the user's recently-viewed list. Entries already present are kept as-is. Ratings must be on the 0-5 scale.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		string					true	"User ID"
//	@Param			history	body		UpdateHistoryRequest	true	"History entries to append"
//	@Success		200		{object}	MessageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/user/{userID}/history [post]
func (h *Handler) UpdateHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	var req UpdateHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be JSON with a history list")
		return
	}

	// Reject bad entries before anything reaches the store.
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error",
			"History is required and every rating must be between 0 and 5")
		return
	}

	entries := make([]domain.RecentDoc, 0, len(req.History))
	for _, e := range req.History {
		entries = append(entries, domain.RecentDoc{
			Name:     e.Name,
			Category: e.Category,
			Type:     e.Type,
		})
	}

	if err := h.service.UpdateHistory(r.Context(), userID, entries); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "History updated successfully"})
}
