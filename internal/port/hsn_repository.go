package port

import (
	"context"

	"gstbill/internal/domain"
)

// HSNRepository searches the HSN/SAC reference table.
type HSNRepository interface {
	Search(ctx context.Context, query string, limit int) ([]domain.HSNCode, error)
}
