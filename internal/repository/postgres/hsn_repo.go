package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type hsnRepo struct {
	db *sqlx.DB
}

// NewHSNRepo creates a new PostgreSQL-backed HSNRepository.
func NewHSNRepo(db *sqlx.DB) port.HSNRepository {
	return &hsnRepo{db: db}
}

func (r *hsnRepo) Search(ctx context.Context, query string, limit int) ([]domain.HSNCode, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	codes := []domain.HSNCode{}
	err := r.db.SelectContext(ctx, &codes,
		`SELECT code, description, gst_rate
		 FROM hsn_codes
		 WHERE code LIKE $1 || '%' OR description ILIKE '%' || $1 || '%'
		 ORDER BY code
		 LIMIT $2`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("hsnRepo.Search: %w", err)
	}
	return codes, nil
}
