package port

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// InvoiceRepository persists and reads invoice aggregates. CreateWithItems
// allocates the next invoice number for the prefix and writes the header and
// all items in one transaction; on any failure nothing is written.
type InvoiceRepository interface {
	CreateWithItems(ctx context.Context, inv *domain.Invoice, prefix string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filters domain.InvoiceFilters) ([]domain.Invoice, error)
	SummaryByType(ctx context.Context, filters domain.InvoiceFilters) ([]domain.InvoiceTypeSummaryRow, error)
}
