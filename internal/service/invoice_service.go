package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
	"gstbill/internal/gst"
	"gstbill/internal/port"
)

// CreateInvoiceItemInput is one requested invoice line.
type CreateInvoiceItemInput struct {
	Description string          `json:"description" binding:"required"`
	HSNCode     string          `json:"hsn_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
	GSTRate     decimal.Decimal `json:"gst_rate"`
}

// CreateInvoiceInput is the DTO for invoice creation requests.
type CreateInvoiceInput struct {
	CustomerID    uuid.UUID                `json:"customer_id" binding:"required"`
	InvoiceType   domain.InvoiceType       `json:"invoice_type" binding:"required"`
	PlaceOfSupply string                   `json:"place_of_supply"`
	Items         []CreateInvoiceItemInput `json:"items" binding:"required"`
	Notes         string                   `json:"notes"`
}

// InvoiceService creates and reads invoice aggregates.
type InvoiceService interface {
	Create(ctx context.Context, input CreateInvoiceInput, actor uuid.UUID) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filters domain.InvoiceFilters) ([]domain.Invoice, error)
	SummaryByType(ctx context.Context, filters domain.InvoiceFilters) ([]domain.InvoiceTypeSummaryRow, error)
}

type invoiceService struct {
	invoiceRepo  port.InvoiceRepository
	customerRepo port.CustomerRepository
	companyRepo  port.CompanyRepository
	numberPrefix string
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	companyRepo port.CompanyRepository,
	numberPrefix string,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		numberPrefix: numberPrefix,
	}
}

// Create validates the request, snapshots party data, computes the tax split
// per line, and persists the header with its items atomically. On any
// failure no rows are written.
func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput, actor uuid.UUID) (*domain.Invoice, error) {
	if !domain.ValidInvoiceTypes[input.InvoiceType] {
		return nil, domain.NewValidationError("invoice_type", "must be one of B2B, B2C, Export, SEZ")
	}
	if len(input.Items) == 0 {
		return nil, domain.NewValidationError("items", "at least one item is required")
	}
	if input.PlaceOfSupply == "" {
		return nil, domain.NewValidationError("place_of_supply", "place of supply is required")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	company, err := s.companyRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	jurisdiction, err := gst.Resolve(customer.State, company.State)
	if err != nil {
		return nil, err
	}

	inv := &domain.Invoice{
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerGSTIN:   customer.GSTIN,
		CustomerAddress: customer.Address,
		CustomerState:   customer.State,
		SellerName:      company.Name,
		SellerGSTIN:     company.GSTIN,
		SellerAddress:   company.Address,
		SellerState:     company.State,
		InvoiceType:     input.InvoiceType,
		PlaceOfSupply:   input.PlaceOfSupply,
		Notes:           input.Notes,
		CreatedBy:       actor,
		Items:           make([]domain.InvoiceItem, 0, len(input.Items)),
	}

	var taxable, cgst, sgst, igst decimal.Decimal
	for i, item := range input.Items {
		if strings.TrimSpace(item.Description) == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("items[%d].description", i), "description is required")
		}
		line, err := gst.ComputeLine(item.Quantity, item.Rate, item.GSTRate, jurisdiction)
		if err != nil {
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				return nil, domain.NewValidationError(fmt.Sprintf("items[%d].%s", i, ve.Field), "%s", ve.Message)
			}
			return nil, err
		}
		inv.Items = append(inv.Items, domain.InvoiceItem{
			Description:   item.Description,
			HSNCode:       item.HSNCode,
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			Rate:          item.Rate,
			GSTRate:       item.GSTRate,
			TaxableAmount: line.Taxable,
			CGSTAmount:    line.CGST,
			SGSTAmount:    line.SGST,
			IGSTAmount:    line.IGST,
			TotalAmount:   line.Total,
		})
		taxable = taxable.Add(line.Taxable)
		cgst = cgst.Add(line.CGST)
		sgst = sgst.Add(line.SGST)
		igst = igst.Add(line.IGST)
	}

	inv.TaxableAmount = taxable
	inv.CGSTAmount = cgst
	inv.SGSTAmount = sgst
	inv.IGSTAmount = igst
	inv.TotalGST = cgst.Add(sgst).Add(igst)
	inv.TotalAmount = taxable.Add(inv.TotalGST)

	if err := s.invoiceRepo.CreateWithItems(ctx, inv, s.numberPrefix); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, filters domain.InvoiceFilters) ([]domain.Invoice, error) {
	return s.invoiceRepo.List(ctx, filters)
}

func (s *invoiceService) SummaryByType(ctx context.Context, filters domain.InvoiceFilters) ([]domain.InvoiceTypeSummaryRow, error) {
	return s.invoiceRepo.SummaryByType(ctx, filters)
}
