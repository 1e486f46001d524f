package port

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// UserRepository is the data-access contract for CRM users.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
