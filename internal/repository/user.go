package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bibliotech/recommendation-service/internal/domain"
)

// GetAllUsers returns the full user collection in insertion order.
func (r *Repository) GetAllUsers(ctx context.Context) ([]domain.UserProfile, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, department, study_level,
		        COALESCE(recent_docs, '[]'::jsonb), COALESCE(read_docs, '[]'::jsonb)
		 FROM users
		 ORDER BY inserted_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []domain.UserProfile
	for rows.Next() {
		var u domain.UserProfile
		if err := rows.Scan(&u.ID, &u.Department, &u.StudyLevel, &u.RecentDocs, &u.ReadDocs); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over users: %w", err)
	}
	return users, nil
}

// GetUserByID fetches a single user profile.
func (r *Repository) GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	u := &domain.UserProfile{}

	err := r.pool.QueryRow(ctx,
		`SELECT id, department, study_level,
		        COALESCE(recent_docs, '[]'::jsonb), COALESCE(read_docs, '[]'::jsonb)
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&u.ID, &u.Department, &u.StudyLevel, &u.RecentDocs, &u.ReadDocs)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user id=%q: %w", userID, err)
	}

	return u, nil
}

// AppendRecentDocs adds history entries to a user's recently-viewed list
// with array-union semantics: an entry whose (name, category, type) triple
// is already present is not added again. The read and write run in one
// transaction so concurrent appends cannot drop entries.
func (r *Repository) AppendRecentDocs(ctx context.Context, userID string, entries []domain.RecentDoc) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin append history: %w", err)
	}
	defer tx.Rollback(ctx)

	var current []domain.RecentDoc
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(recent_docs, '[]'::jsonb) FROM users WHERE id = $1 FOR UPDATE`,
		userID,
	).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("query history for user %q: %w", userID, err)
	}

	existing := make(map[domain.RecentDoc]struct{}, len(current))
	for _, d := range current {
		existing[d] = struct{}{}
	}
	for _, d := range entries {
		if _, ok := existing[d]; ok {
			continue
		}
		existing[d] = struct{}{}
		current = append(current, d)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE users SET recent_docs = $2 WHERE id = $1`,
		userID, current,
	); err != nil {
		return fmt.Errorf("update history for user %q: %w", userID, err)
	}

	return tx.Commit(ctx)
}
