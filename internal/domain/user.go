package domain

// RecentDoc is one entry of a user's recently-viewed history.
// Entries come from the document store and may be partially filled;
// consumers skip entries with an empty name where a name is required.
type RecentDoc struct {
	Name     string `json:"nameDoc"`
	Category string `json:"category,omitempty"`
	Type     string `json:"type,omitempty"`
}

// ReadDoc is a recently-read document with the rating the user gave it.
type ReadDoc struct {
	Name   string  `json:"nameDoc"`
	Rating float64 `json:"rating"`
}

type UserProfile struct {
	ID         string      `json:"id"`
	Department string      `json:"department,omitempty"`
	StudyLevel string      `json:"level,omitempty"`
	RecentDocs []RecentDoc `json:"docRecent,omitempty"`
	ReadDocs   []ReadDoc   `json:"docRead,omitempty"`
}
