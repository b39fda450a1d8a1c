package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bibliotech/recommendation-service/internal/cache"
	"github.com/bibliotech/recommendation-service/internal/domain"
	"github.com/bibliotech/recommendation-service/internal/recommend"
	"github.com/bibliotech/recommendation-service/internal/repository"
)

// Service orchestrates one scoring request: fetch the collections from the
// store, hand them to the engine, cache the ranked output. The engine never
// touches the store or the cache itself.
type Service struct {
	repo   *repository.Repository
	cache  *cache.Cache
	engine *recommend.Engine
	logger zerolog.Logger
}

func NewService(repo *repository.Repository, cache *cache.Cache, engine *recommend.Engine, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		engine: engine,
		logger: logger.With().Str("component", "service").Logger(),
	}
}

// GetSimilarBooks finds books whose descriptions resemble the named one.
func (s *Service) GetSimilarBooks(ctx context.Context, title string) (*domain.SimilarBooksResult, error) {
	books, err := s.repo.GetAllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch books: %w", err)
	}
	return s.engine.SimilarBooks(books, title)
}

// GetSimilarUserRecommendations returns collaborative-filtering candidates
// for a user, cached per user.
func (s *Service) GetSimilarUserRecommendations(ctx context.Context, userID string) ([]domain.Candidate, error) {
	cached, found, err := s.cache.GetCandidates(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("cache get failed")
	}
	if found {
		return cached, nil
	}

	target, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	recs := s.engine.RecommendFromSimilarUsers(*target, users)

	if cacheErr := s.cache.SetCandidates(ctx, userID, recs); cacheErr != nil {
		s.logger.Warn().Err(cacheErr).Str("user_id", userID).Msg("cache set failed")
	}
	return recs, nil
}

// GetPopularBooks returns books ranked by how many users recently viewed
// them. The ranking is user-independent, so it is cached under one key.
func (s *Service) GetPopularBooks(ctx context.Context) ([]domain.PopularBook, error) {
	cached, found, err := s.cache.GetPopular(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("cache get failed")
	}
	if found {
		return cached, nil
	}

	users, err := s.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	// Names in user histories may refer to books no longer in the
	// collection; those are skipped, not errors.
	popular := []domain.PopularBook{}
	for _, entry := range s.engine.PopularityRanking(users) {
		book, err := s.repo.GetBookByName(ctx, entry.Key)
		if err != nil {
			if errors.Is(err, domain.ErrBookNotFound) {
				continue
			}
			return nil, fmt.Errorf("resolve popular book %q: %w", entry.Key, err)
		}
		popular = append(popular, domain.PopularBook{Name: book.Name, Count: entry.Count})
	}

	if cacheErr := s.cache.SetPopular(ctx, popular); cacheErr != nil {
		s.logger.Warn().Err(cacheErr).Msg("cache set failed")
	}
	return popular, nil
}

// GetPreferenceRecommendations scores the whole book collection against a
// user's viewing preferences.
func (s *Service) GetPreferenceRecommendations(ctx context.Context, userID string) ([]domain.ScoredBook, error) {
	cached, found, err := s.cache.GetScoredBooks(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("cache get failed")
	}
	if found {
		return cached, nil
	}

	target, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	books, err := s.repo.GetAllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch books: %w", err)
	}

	recs := s.engine.RecommendByPreference(*target, users, books)

	if cacheErr := s.cache.SetScoredBooks(ctx, userID, recs); cacheErr != nil {
		s.logger.Warn().Err(cacheErr).Str("user_id", userID).Msg("cache set failed")
	}
	return recs, nil
}

// UpdateHistory appends viewing-history entries to a user's profile and
// invalidates every cached ranking the change can shift. Validation happens
// before any store write.
func (s *Service) UpdateHistory(ctx context.Context, userID string, entries []domain.RecentDoc) error {
	if len(entries) == 0 {
		return &domain.ValidationError{Msg: "history entries are required"}
	}
	for _, e := range entries {
		if e.Name == "" {
			return &domain.ValidationError{Msg: "history entry is missing a document name"}
		}
	}

	if err := s.repo.AppendRecentDocs(ctx, userID, entries); err != nil {
		return err
	}

	if err := s.cache.ClearUserCache(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("cache invalidation failed")
	}
	if err := s.cache.ClearPopular(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("popular cache invalidation failed")
	}
	return nil
}
