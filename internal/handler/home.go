package handler

import "net/http"

type HomeResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Home godoc
//
//	@Summary	API directory
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	HomeResponse
//	@Router		/ [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HomeResponse{
		Message: "Welcome to the book recommendation API",
		Endpoints: map[string]string{
			"test":                         "/test",
			"similar_books":                "/similarbooks (POST)",
			"similar_user_recommendations": "/recommendations/similar-users/{userID}",
			"popular_books":                "/recommendations/popular",
			"user_recommendations":         "/recommendations/user/{userID}",
			"update_history":               "/user/{userID}/history (POST)",
			"docs":                         "/docs/",
		},
	})
}

// Test godoc
//
//	@Summary	Liveness probe
//	@Tags		meta
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Router		/test [get]
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "API is up and running"})
}
