package service

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// CreateCustomerInput is the DTO for customer creation.
type CreateCustomerInput struct {
	Name    string `json:"name" binding:"required"`
	GSTIN   string `json:"gstin"`
	Address string `json:"address"`
	State   string `json:"state" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// CustomerService is the thin use-case layer over customer masters.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
}

type customerService struct {
	customerRepo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(customerRepo port.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:    input.Name,
		GSTIN:   input.GSTIN,
		Address: input.Address,
		State:   input.State,
		Email:   input.Email,
		Phone:   input.Phone,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx, limit, offset)
}
