package domain

// Comment is a single reader rating left on a book. Rating is on a 0-5 scale.
type Comment struct {
	Text   string  `json:"text,omitempty"`
	Rating float64 `json:"rating"`
}

type Book struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"desc"`
	Category    string    `json:"category,omitempty"`
	Type        string    `json:"type,omitempty"`
	Comments    []Comment `json:"comments,omitempty"`
	Copies      int       `json:"copies"`
}

// AverageRating returns the mean of the book's comment ratings, 0 when
// there are no comments.
func (b Book) AverageRating() float64 {
	if len(b.Comments) == 0 {
		return 0
	}
	var sum float64
	for _, c := range b.Comments {
		sum += c.Rating
	}
	return sum / float64(len(b.Comments))
}
