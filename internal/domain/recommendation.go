package domain

// SimilarBooksResult pairs the matched base book with its closest
// neighbours by description similarity.
type SimilarBooksResult struct {
	BaseBook     Book   `json:"base_book"`
	SimilarBooks []Book `json:"similar_books"`
}

// Candidate is a document surfaced by collaborative filtering, annotated
// with the score and the similar user that produced it.
type Candidate struct {
	Doc           RecentDoc `json:"doc"`
	Score         float64   `json:"recommendation_score"`
	RecommendedBy string    `json:"recommended_by"`
}

// PopularBook is a book annotated with how many users recently viewed it.
type PopularBook struct {
	Name  string `json:"name"`
	Count int    `json:"popularity_score"`
}

// ScoredBook is a book annotated with its preference relevance score.
type ScoredBook struct {
	Book  Book    `json:"book"`
	Score float64 `json:"score"`
}
