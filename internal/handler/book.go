package handler

import (
	"encoding/json"
	"net/http"
)

type SimilarBooksRequest struct {
	Title string `json:"title"`
}

// GetSimilarBooks godoc
//
//	@Summary		Find books similar to a given title
//	@Description	Ranks the collection by TF-IDF cosine similarity of descriptions against the named book.
//	@Tags			recommendations
//	@Accept			json
//	@Produce		json
//	@Param			book	body		SimilarBooksRequest	true	"Base book title"
//	@Success		200		{object}	domain.SimilarBooksResult
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/similarbooks [post]
func (h *Handler) GetSimilarBooks(w http.ResponseWriter, r *http.Request) {
	var req SimilarBooksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be JSON with a title field")
		return
	}

	result, err := h.service.GetSimilarBooks(r.Context(), req.Title)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
