package handler

import "github.com/bibliotech/recommendation-service/internal/domain"

type SimilarUsersResponse struct {
	Recommendations []domain.Candidate `json:"recommendations"`
}

type PopularBooksResponse struct {
	PopularBooks []domain.PopularBook `json:"popular_books"`
}

type PreferenceResponse struct {
	Recommendations []domain.ScoredBook `json:"recommendations"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
