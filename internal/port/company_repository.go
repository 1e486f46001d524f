package port

import (
	"context"

	"gstbill/internal/domain"
)

// CompanyRepository reads and updates the singleton seller profile.
type CompanyRepository interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Update(ctx context.Context, settings *domain.CompanySettings) error
}
