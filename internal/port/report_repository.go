package port

import (
	"context"
	"time"

	"gstbill/internal/domain"
)

// ReportRepository reads committed invoice data for statutory reports.
// All methods are plain reads over a half-open [from, to) date window.
type ReportRepository interface {
	GSTR1B2B(ctx context.Context, from, to time.Time) ([]domain.GSTR1B2BRow, error)
	GSTR1B2CLarge(ctx context.Context, from, to time.Time) ([]domain.GSTR1B2CLargeRow, error)
	GSTR1B2CSmall(ctx context.Context, from, to time.Time) ([]domain.GSTR1B2CSmallRow, error)
	InvoiceTaxTotals(ctx context.Context, from, to time.Time) ([]domain.InvoiceTaxTotals, error)
}
