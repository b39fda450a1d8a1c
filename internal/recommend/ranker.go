package recommend

import (
	"sort"
	"strings"

	"github.com/bibliotech/recommendation-service/internal/domain"
)

const (
	defaultTopK         = 10
	similarBookCount    = 5
	similarUserCount    = 5
	similarityThreshold = 30.0
)

// Engine ranks recommendation candidates. It is a pure computation over
// the collections passed into each call: no I/O, no clock, no shared state,
// so concurrent requests can use one Engine freely.
type Engine struct {
	// TopK caps the merged candidate lists. 0 means no cap.
	TopK int
	// SimilarUsers is how many top similar users contribute candidates.
	SimilarUsers int
	// Threshold is the minimum user similarity (exclusive) for a user to
	// count as similar.
	Threshold float64
}

func NewEngine() *Engine {
	return &Engine{
		TopK:         defaultTopK,
		SimilarUsers: similarUserCount,
		Threshold:    similarityThreshold,
	}
}

// SimilarBooks finds the base book by case-insensitive title match and
// returns the five books whose descriptions are closest by TF-IDF cosine
// similarity, best first.
func (e *Engine) SimilarBooks(books []domain.Book, title string) (*domain.SimilarBooksResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &domain.ValidationError{Msg: "book title is required"}
	}

	base := -1
	for i, b := range books {
		if strings.EqualFold(b.Name, title) {
			base = i
			break
		}
	}
	if base == -1 {
		return nil, domain.ErrBookNotFound
	}

	descriptions := make([]string, len(books))
	for i, b := range books {
		descriptions[i] = b.Description
	}
	matrix := Vectorize(descriptions)

	similar := make([]domain.Book, 0, similarBookCount)
	for _, r := range RankRows(matrix, base) {
		similar = append(similar, books[r.Index])
		if len(similar) == similarBookCount {
			break
		}
	}

	return &domain.SimilarBooksResult{
		BaseBook:     books[base],
		SimilarBooks: similar,
	}, nil
}

type similarUser struct {
	id         string
	similarity float64
	docs       []domain.RecentDoc
}

// RecommendFromSimilarUsers produces collaborative-filtering candidates
// for the target user. The top five users above the similarity threshold
// each contribute their recent documents, weighted by similarity/100.
// Documents the target already viewed, and duplicates across contributors,
// are dropped when first seen and never merged back in.
func (e *Engine) RecommendFromSimilarUsers(target domain.UserProfile, users []domain.UserProfile) []domain.Candidate {
	var similar []similarUser
	for _, u := range users {
		if u.ID == target.ID {
			continue
		}
		sim := UserSimilarity(target, u)
		if sim > e.Threshold {
			similar = append(similar, similarUser{id: u.ID, similarity: sim, docs: u.RecentDocs})
		}
	}
	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].similarity > similar[j].similarity
	})
	if len(similar) > e.SimilarUsers {
		similar = similar[:e.SimilarUsers]
	}

	seen := make(map[string]struct{})
	for _, d := range target.RecentDocs {
		if d.Name != "" {
			seen[d.Name] = struct{}{}
		}
	}

	candidates := []domain.Candidate{}
	for _, su := range similar {
		weight := su.similarity / 100.0
		for _, d := range su.docs {
			if d.Name == "" {
				continue
			}
			if _, dup := seen[d.Name]; dup {
				continue
			}
			seen[d.Name] = struct{}{}
			candidates = append(candidates, domain.Candidate{
				Doc:           d,
				Score:         weight * 100.0,
				RecommendedBy: su.id,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if e.TopK > 0 && len(candidates) > e.TopK {
		candidates = candidates[:e.TopK]
	}
	return candidates
}

// PopularityRanking counts how often each document name appears across
// all users' recent lists, ranked by count descending. Count ties keep
// first-seen order. Resolving names to book records is the caller's job,
// so the ranking stays a pure computation.
func (e *Engine) PopularityRanking(users []domain.UserProfile) []CountEntry {
	counts := NewOrderedCounter()
	for _, u := range users {
		for _, d := range u.RecentDocs {
			if d.Name != "" {
				counts.Inc(d.Name)
			}
		}
	}

	entries := counts.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// preferenceProfile holds a user's category and type viewing frequencies.
type preferenceProfile struct {
	categories *OrderedCounter
	types      *OrderedCounter
}

func buildPreference(u domain.UserProfile) preferenceProfile {
	p := preferenceProfile{
		categories: NewOrderedCounter(),
		types:      NewOrderedCounter(),
	}
	for _, d := range u.RecentDocs {
		if d.Category != "" {
			p.categories.Inc(d.Category)
		}
		if d.Type != "" {
			p.types.Inc(d.Type)
		}
	}
	return p
}

// baseScore weights category affinity 3x, type affinity 2x, average comment
// rating 4x, plus a flat availability bonus.
func baseScore(b domain.Book, p preferenceProfile) float64 {
	score := 3 * float64(p.categories.Count(b.Category))
	score += 2 * float64(p.types.Count(b.Type))
	score += 4 * b.AverageRating()
	if b.Copies > 0 {
		score += 1
	}
	return score
}

// profileOverlap is the shared viewing volume of two preference profiles:
// the sum of min counts over categories plus the sum over types.
func profileOverlap(a, b preferenceProfile) float64 {
	var total float64
	for _, e := range a.categories.Entries() {
		total += float64(min(e.Count, b.categories.Count(e.Key)))
	}
	for _, e := range a.types.Entries() {
		total += float64(min(e.Count, b.types.Count(e.Key)))
	}
	return total
}

// RecommendByPreference scores every book against the target's viewing
// preferences, blends in the preferences of the five most overlapping
// other users, and returns the top-K books, best first.
func (e *Engine) RecommendByPreference(target domain.UserProfile, users []domain.UserProfile, books []domain.Book) []domain.ScoredBook {
	profile := buildPreference(target)

	type neighbour struct {
		profile preferenceProfile
		overlap float64
	}
	var neighbours []neighbour
	for _, u := range users {
		if u.ID == target.ID {
			continue
		}
		other := buildPreference(u)
		overlap := profileOverlap(profile, other)
		if overlap > 0 {
			neighbours = append(neighbours, neighbour{profile: other, overlap: overlap})
		}
	}
	sort.SliceStable(neighbours, func(i, j int) bool {
		return neighbours[i].overlap > neighbours[j].overlap
	})
	if len(neighbours) > e.SimilarUsers {
		neighbours = neighbours[:e.SimilarUsers]
	}

	scored := make([]domain.ScoredBook, 0, len(books))
	for _, b := range books {
		score := baseScore(b, profile)
		for _, n := range neighbours {
			score += baseScore(b, n.profile) * n.overlap / 10.0
		}
		scored = append(scored, domain.ScoredBook{Book: b, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if e.TopK > 0 && len(scored) > e.TopK {
		scored = scored[:e.TopK]
	}
	return scored
}
