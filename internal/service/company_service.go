package service

import (
	"context"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// UpdateCompanyInput is the DTO for company settings updates.
type UpdateCompanyInput struct {
	Name        string `json:"name" binding:"required"`
	GSTIN       string `json:"gstin" binding:"required"`
	PAN         string `json:"pan"`
	Address     string `json:"address"`
	State       string `json:"state" binding:"required"`
	BankName    string `json:"bank_name"`
	BankAccount string `json:"bank_account"`
	BankIFSC    string `json:"bank_ifsc"`
}

// CompanyService manages the singleton seller profile.
type CompanyService interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Update(ctx context.Context, input UpdateCompanyInput) (*domain.CompanySettings, error)
}

type companyService struct {
	companyRepo port.CompanyRepository
}

// NewCompanyService creates a new CompanyService implementation.
func NewCompanyService(companyRepo port.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) Get(ctx context.Context) (*domain.CompanySettings, error) {
	return s.companyRepo.Get(ctx)
}

func (s *companyService) Update(ctx context.Context, input UpdateCompanyInput) (*domain.CompanySettings, error) {
	settings := &domain.CompanySettings{
		Name:        input.Name,
		GSTIN:       input.GSTIN,
		PAN:         input.PAN,
		Address:     input.Address,
		State:       input.State,
		BankName:    input.BankName,
		BankAccount: input.BankAccount,
		BankIFSC:    input.BankIFSC,
	}
	if err := s.companyRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
