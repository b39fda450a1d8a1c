package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/bibliotech/recommendation-service/internal/domain"
)

// Weight ceilings for the four user-similarity components. They sum to 100.
const (
	departmentWeight = 40.0
	levelWeight      = 20.0
	overlapWeight    = 25.0
	typeDistWeight   = 15.0
)

// Cosine returns the cosine similarity of two equal-length vectors.
// A zero-norm operand makes the similarity 0, even against itself.
func Cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RankedIndex is a matrix row index with its similarity against the base row.
type RankedIndex struct {
	Index int
	Score float64
}

// RankRows scores every row of the matrix against row base and returns the
// results sorted descending by score, excluding base itself. Ties keep the
// original index order.
func RankRows(matrix [][]float64, base int) []RankedIndex {
	ranked := make([]RankedIndex, 0, len(matrix))
	for i, row := range matrix {
		if i == base {
			continue
		}
		ranked = append(ranked, RankedIndex{Index: i, Score: Cosine(matrix[base], row)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// UserSimilarity scores how alike two user profiles are, in [0, 100].
// Four independently capped components: department match (40), study-level
// match (20), recently-viewed (category, type) overlap (25) and per-type
// viewing distribution overlap (15).
func UserSimilarity(a, b domain.UserProfile) float64 {
	score := departmentScore(a, b)
	score += levelScore(a, b)
	score += overlapScore(a, b)
	score += typeDistScore(a, b)
	return score
}

func departmentScore(a, b domain.UserProfile) float64 {
	if a.Department != "" && a.Department == b.Department {
		return departmentWeight
	}
	return 0
}

func levelScore(a, b domain.UserProfile) float64 {
	la, lb := levelDigits(a.StudyLevel), levelDigits(b.StudyLevel)
	if la != "" && la == lb {
		return levelWeight
	}
	return 0
}

// levelDigits strips the non-digit "level" prefix from a study level such
// as "level5" or "Niveau 3", leaving the numeric part for comparison.
func levelDigits(level string) string {
	return strings.TrimLeftFunc(level, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
}

type docPair struct {
	category string
	docType  string
}

func pairSet(docs []domain.RecentDoc) map[docPair]struct{} {
	set := make(map[docPair]struct{})
	for _, d := range docs {
		if d.Category == "" && d.Type == "" {
			continue
		}
		set[docPair{category: d.Category, docType: d.Type}] = struct{}{}
	}
	return set
}

func overlapScore(a, b domain.UserProfile) float64 {
	setA, setB := pairSet(a.RecentDocs), pairSet(b.RecentDocs)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	shared := 0
	for p := range setA {
		if _, ok := setB[p]; ok {
			shared++
		}
	}
	return overlapWeight * float64(shared) / float64(max(len(setA), len(setB)))
}

func typeCounts(docs []domain.RecentDoc) map[string]int {
	counts := make(map[string]int)
	for _, d := range docs {
		if d.Type == "" {
			continue
		}
		counts[d.Type]++
	}
	return counts
}

func typeDistScore(a, b domain.UserProfile) float64 {
	countsA, countsB := typeCounts(a.RecentDocs), typeCounts(b.RecentDocs)
	if len(countsA) == 0 && len(countsB) == 0 {
		return 0
	}
	union := make(map[string]struct{}, len(countsA)+len(countsB))
	for t := range countsA {
		union[t] = struct{}{}
	}
	for t := range countsB {
		union[t] = struct{}{}
	}
	var sumMin, sumMax float64
	for t := range union {
		sumMin += float64(min(countsA[t], countsB[t]))
		sumMax += float64(max(countsA[t], countsB[t], 1))
	}
	return typeDistWeight * sumMin / sumMax
}
