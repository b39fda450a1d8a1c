package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetSimilarUserRecommendations godoc
//
//	@Summary		Recommendations from similar users
//	@Description	Documents recently viewed by the users most similar to this one, weighted by similarity.
//	@Tags			recommendations
//	@Produce		json
//	@Param			userID	path		string	true	"User ID"
//	@Success		200		{object}	SimilarUsersResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/recommendations/similar-users/{userID} [get]
func (h *Handler) GetSimilarUserRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	recs, err := h.service.GetSimilarUserRecommendations(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SimilarUsersResponse{Recommendations: recs})
}

// GetPopularBooks godoc
//
//	@Summary		Most viewed books
//	@Description	Books ranked by how many users have them in their recent history.
//	@Tags			recommendations
//	@Produce		json
//	@Success		200	{object}	PopularBooksResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/recommendations/popular [get]
func (h *Handler) GetPopularBooks(w http.ResponseWriter, r *http.Request) {
	popular, err := h.service.GetPopularBooks(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PopularBooksResponse{PopularBooks: popular})
}

// GetPreferenceRecommendations godoc
//
//	@Summary		Personalised recommendations
//	@Description	Books scored against the user's category and type preferences, blended with similar users' preferences.
//	@Tags			recommendations
//	@Produce		json
//	@Param			userID	path		string	true	"User ID"
//	@Success		200		{object}	PreferenceResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/recommendations/user/{userID} [get]
func (h *Handler) GetPreferenceRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid userID parameter")
		return
	}

	recs, err := h.service.GetPreferenceRecommendations(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PreferenceResponse{Recommendations: recs})
}
