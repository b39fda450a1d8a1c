package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliotech/recommendation-service/internal/domain"
)

func testBooks() []domain.Book {
	return []domain.Book{
		{ID: "1", Name: "A", Description: "machine learning basics"},
		{ID: "2", Name: "B", Description: "deep learning and machine learning"},
		{ID: "3", Name: "C", Description: "cooking recipes"},
	}
}

func TestSimilarBooksRanksSharedVocabularyFirst(t *testing.T) {
	result, err := NewEngine().SimilarBooks(testBooks(), "A")
	require.NoError(t, err)

	assert.Equal(t, "A", result.BaseBook.Name)
	require.Len(t, result.SimilarBooks, 2)
	assert.Equal(t, "B", result.SimilarBooks[0].Name, "B shares vocabulary with A")
	assert.Equal(t, "C", result.SimilarBooks[1].Name)
}

func TestSimilarBooksTitleMatchIsCaseInsensitive(t *testing.T) {
	result, err := NewEngine().SimilarBooks(testBooks(), "  a ")
	require.NoError(t, err)
	assert.Equal(t, "A", result.BaseBook.Name)
}

func TestSimilarBooksBlankTitle(t *testing.T) {
	_, err := NewEngine().SimilarBooks(testBooks(), "   ")
	assert.True(t, domain.IsValidationError(err))
}

func TestSimilarBooksUnknownTitle(t *testing.T) {
	_, err := NewEngine().SimilarBooks(testBooks(), "Zork")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestSimilarBooksCapsAtFive(t *testing.T) {
	books := []domain.Book{
		{Name: "base", Description: "graph algorithms"},
		{Name: "n1", Description: "graph theory"},
		{Name: "n2", Description: "graph databases"},
		{Name: "n3", Description: "graph coloring"},
		{Name: "n4", Description: "graph drawing"},
		{Name: "n5", Description: "graph search"},
		{Name: "n6", Description: "graph partitions"},
	}
	result, err := NewEngine().SimilarBooks(books, "base")
	require.NoError(t, err)
	assert.Len(t, result.SimilarBooks, 5)
}

func similarUsersFixture() (domain.UserProfile, []domain.UserProfile) {
	target := domain.UserProfile{
		ID:         "target@uni.edu",
		Department: "CS",
		StudyLevel: "level5",
		RecentDocs: []domain.RecentDoc{
			{Name: "Already Seen", Category: "databases", Type: "book"},
		},
	}
	users := []domain.UserProfile{
		target,
		{
			// Department + level match: similarity >= 60.
			ID:         "peer@uni.edu",
			Department: "CS",
			StudyLevel: "level5",
			RecentDocs: []domain.RecentDoc{
				{Name: "Already Seen", Category: "databases", Type: "book"},
				{Name: "New Doc", Category: "networks", Type: "book"},
				{Name: ""}, // malformed, skipped
			},
		},
		{
			// Department only: similarity 40, still above threshold.
			ID:         "other@uni.edu",
			Department: "CS",
			RecentDocs: []domain.RecentDoc{
				{Name: "New Doc", Category: "networks", Type: "book"}, // duplicate name, dropped
				{Name: "Third Doc", Category: "ai", Type: "journal"},
			},
		},
		{
			// No shared signal: below threshold, contributes nothing.
			ID:         "stranger@uni.edu",
			Department: "History",
			RecentDocs: []domain.RecentDoc{{Name: "Unrelated", Category: "art", Type: "book"}},
		},
	}
	return target, users
}

func TestRecommendFromSimilarUsers(t *testing.T) {
	target, users := similarUsersFixture()
	recs := NewEngine().RecommendFromSimilarUsers(target, users)

	require.Len(t, recs, 2)

	assert.Equal(t, "New Doc", recs[0].Doc.Name)
	assert.Equal(t, "peer@uni.edu", recs[0].RecommendedBy)
	assert.Greater(t, recs[0].Score, 60.0, "score is the contributor's similarity")

	assert.Equal(t, "Third Doc", recs[1].Doc.Name)
	assert.Equal(t, "other@uni.edu", recs[1].RecommendedBy)

	// Descending by score.
	assert.GreaterOrEqual(t, recs[0].Score, recs[1].Score)

	// The target's own history never reappears.
	for _, r := range recs {
		assert.NotEqual(t, "Already Seen", r.Doc.Name)
	}
}

func TestRecommendFromSimilarUsersDeterministic(t *testing.T) {
	target, users := similarUsersFixture()
	engine := NewEngine()
	first := engine.RecommendFromSimilarUsers(target, users)
	second := engine.RecommendFromSimilarUsers(target, users)
	assert.Equal(t, first, second)
}

func TestRecommendFromSimilarUsersTopK(t *testing.T) {
	target := domain.UserProfile{ID: "t", Department: "CS"}
	peer := domain.UserProfile{ID: "p", Department: "CS"}
	for i := 0; i < 15; i++ {
		peer.RecentDocs = append(peer.RecentDocs, domain.RecentDoc{
			Name: string(rune('a' + i)), Category: "databases", Type: "book",
		})
	}

	engine := NewEngine()
	recs := engine.RecommendFromSimilarUsers(target, []domain.UserProfile{target, peer})
	assert.Len(t, recs, 10, "default cap is 10")

	engine.TopK = 0
	recs = engine.RecommendFromSimilarUsers(target, []domain.UserProfile{target, peer})
	assert.Len(t, recs, 15, "TopK 0 disables the cap")
}

func TestRecommendFromSimilarUsersNoSimilarUsers(t *testing.T) {
	target := domain.UserProfile{ID: "t", Department: "CS"}
	users := []domain.UserProfile{target, {ID: "u", Department: "History"}}
	recs := NewEngine().RecommendFromSimilarUsers(target, users)
	assert.Empty(t, recs)
}

func TestPopularityRankingTieBrokenByFirstSeen(t *testing.T) {
	// "B" is recorded before "A" in traversal order; both reach count 3.
	users := []domain.UserProfile{
		{ID: "u1", RecentDocs: []domain.RecentDoc{{Name: "B"}, {Name: "A"}, {Name: "C"}}},
		{ID: "u2", RecentDocs: []domain.RecentDoc{{Name: "B"}, {Name: "A"}}},
		{ID: "u3", RecentDocs: []domain.RecentDoc{{Name: "A"}, {Name: "B"}}},
	}

	ranking := NewEngine().PopularityRanking(users)
	require.Len(t, ranking, 3)
	assert.Equal(t, CountEntry{Key: "B", Count: 3}, ranking[0])
	assert.Equal(t, CountEntry{Key: "A", Count: 3}, ranking[1])
	assert.Equal(t, CountEntry{Key: "C", Count: 1}, ranking[2])
}

func TestPopularityRankingSkipsNamelessEntries(t *testing.T) {
	users := []domain.UserProfile{
		{ID: "u1", RecentDocs: []domain.RecentDoc{{Name: "A"}, {Name: "", Category: "databases"}}},
	}
	ranking := NewEngine().PopularityRanking(users)
	require.Len(t, ranking, 1)
	assert.Equal(t, "A", ranking[0].Key)
}

func TestPopularityRankingOrderNonIncreasing(t *testing.T) {
	users := []domain.UserProfile{
		{ID: "u1", RecentDocs: []domain.RecentDoc{{Name: "C"}, {Name: "A"}}},
		{ID: "u2", RecentDocs: []domain.RecentDoc{{Name: "C"}, {Name: "B"}}},
		{ID: "u3", RecentDocs: []domain.RecentDoc{{Name: "C"}}},
	}
	ranking := NewEngine().PopularityRanking(users)
	for i := 1; i < len(ranking); i++ {
		assert.GreaterOrEqual(t, ranking[i-1].Count, ranking[i].Count)
	}
}

func TestRecommendByPreference(t *testing.T) {
	target := domain.UserProfile{
		ID: "t",
		RecentDocs: []domain.RecentDoc{
			{Name: "x", Category: "databases", Type: "book"},
			{Name: "y", Category: "databases", Type: "book"},
		},
	}
	books := []domain.Book{
		{ID: "1", Name: "DB Book", Category: "databases", Type: "book", Copies: 2,
			Comments: []domain.Comment{{Rating: 4}, {Rating: 2}}},
		{ID: "2", Name: "Art Book", Category: "art", Type: "poster", Copies: 0},
	}

	scored := NewEngine().RecommendByPreference(target, []domain.UserProfile{target}, books)
	require.Len(t, scored, 2)

	// DB Book: 3*2 (category) + 2*2 (type) + 4*3 (avg rating) + 1 (in stock) = 23.
	assert.Equal(t, "DB Book", scored[0].Book.Name)
	assert.InDelta(t, 23.0, scored[0].Score, 1e-9)

	// Art Book matches nothing and is out of stock.
	assert.InDelta(t, 0.0, scored[1].Score, 1e-9)
}

func TestRecommendByPreferenceNeighbourBlend(t *testing.T) {
	target := domain.UserProfile{
		ID:         "t",
		RecentDocs: []domain.RecentDoc{{Name: "x", Category: "databases", Type: "book"}},
	}
	neighbour := domain.UserProfile{
		ID:         "n",
		RecentDocs: []domain.RecentDoc{{Name: "y", Category: "databases", Type: "book"}},
	}
	books := []domain.Book{
		{ID: "1", Name: "DB Book", Category: "databases", Type: "book", Copies: 1},
	}

	engine := NewEngine()
	alone := engine.RecommendByPreference(target, []domain.UserProfile{target}, books)
	blended := engine.RecommendByPreference(target, []domain.UserProfile{target, neighbour}, books)

	require.Len(t, alone, 1)
	require.Len(t, blended, 1)

	// Base: 3 + 2 + 0 + 1 = 6. Neighbour overlap: min(1,1)+min(1,1) = 2.
	// Blend adds neighbour base (6) * 2 / 10 = 1.2.
	assert.InDelta(t, 6.0, alone[0].Score, 1e-9)
	assert.InDelta(t, 7.2, blended[0].Score, 1e-9)
}

func TestRecommendByPreferenceTopTen(t *testing.T) {
	target := domain.UserProfile{
		ID:         "t",
		RecentDocs: []domain.RecentDoc{{Name: "x", Category: "databases", Type: "book"}},
	}
	var books []domain.Book
	for i := 0; i < 14; i++ {
		books = append(books, domain.Book{
			ID: string(rune('a' + i)), Name: string(rune('a' + i)),
			Category: "databases", Type: "book", Copies: 1,
		})
	}
	scored := NewEngine().RecommendByPreference(target, []domain.UserProfile{target}, books)
	assert.Len(t, scored, 10)
}
