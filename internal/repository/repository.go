package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the document-store collaborator. Books and users are
// stored as rows whose list fields (comments, histories) live in JSONB
// columns, so records round-trip as documents.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}
