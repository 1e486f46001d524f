package service

import (
	"context"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// HSNService searches the HSN/SAC reference table.
type HSNService interface {
	Search(ctx context.Context, query string, limit int) ([]domain.HSNCode, error)
}

type hsnService struct {
	hsnRepo port.HSNRepository
}

// NewHSNService creates a new HSNService implementation.
func NewHSNService(hsnRepo port.HSNRepository) HSNService {
	return &hsnService{hsnRepo: hsnRepo}
}

func (s *hsnService) Search(ctx context.Context, query string, limit int) ([]domain.HSNCode, error) {
	if query == "" {
		return nil, domain.NewValidationError("q", "search query is required")
	}
	return s.hsnRepo.Search(ctx, query, limit)
}
