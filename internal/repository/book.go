package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bibliotech/recommendation-service/internal/domain"
)

// GetAllBooks returns the full book collection in insertion order.
func (r *Repository) GetAllBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, category, doc_type, COALESCE(comments, '[]'::jsonb), copies
		 FROM books
		 ORDER BY inserted_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Category, &b.Type, &b.Comments, &b.Copies); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over books: %w", err)
	}
	return books, nil
}

// GetBookByName returns the first book whose name matches exactly.
func (r *Repository) GetBookByName(ctx context.Context, name string) (*domain.Book, error) {
	b := &domain.Book{}

	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, category, doc_type, COALESCE(comments, '[]'::jsonb), copies
		 FROM books WHERE name = $1
		 ORDER BY inserted_at, id
		 LIMIT 1`,
		name,
	).Scan(&b.ID, &b.Name, &b.Description, &b.Category, &b.Type, &b.Comments, &b.Copies)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("query book name=%q: %w", name, err)
	}

	return b, nil
}
