package port

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// CustomerRepository is the thin data-access contract for customer masters.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
}
