package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) GSTR1B2B(ctx context.Context, from, to time.Time) ([]domain.GSTR1B2BRow, error) {
	rows := []domain.GSTR1B2BRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT invoice_number, invoice_date, customer_name, customer_gstin, place_of_supply,
			taxable_amount, cgst_amount, sgst_amount, igst_amount, total_amount
		 FROM invoices
		 WHERE invoice_type = $1
		   AND customer_gstin <> ''
		   AND invoice_date >= $2 AND invoice_date < $3
		 ORDER BY invoice_date, invoice_number`,
		domain.InvoiceTypeB2B, from, to)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.GSTR1B2B: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) GSTR1B2CLarge(ctx context.Context, from, to time.Time) ([]domain.GSTR1B2CLargeRow, error) {
	rows := []domain.GSTR1B2CLargeRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT place_of_supply,
			COUNT(*) AS invoice_count,
			COALESCE(SUM(taxable_amount), 0) AS taxable_amount,
			COALESCE(SUM(cgst_amount), 0) AS cgst_amount,
			COALESCE(SUM(sgst_amount), 0) AS sgst_amount,
			COALESCE(SUM(igst_amount), 0) AS igst_amount,
			COALESCE(SUM(total_amount), 0) AS total_amount
		 FROM invoices
		 WHERE invoice_type = $1
		   AND total_amount > $2
		   AND invoice_date >= $3 AND invoice_date < $4
		 GROUP BY place_of_supply
		 ORDER BY place_of_supply`,
		domain.InvoiceTypeB2C, domain.B2CLargeThreshold, from, to)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.GSTR1B2CLarge: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) GSTR1B2CSmall(ctx context.Context, from, to time.Time) ([]domain.GSTR1B2CSmallRow, error) {
	rows := []domain.GSTR1B2CSmallRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT it.gst_rate,
			COUNT(DISTINCT i.id) AS invoice_count,
			COALESCE(SUM(it.taxable_amount), 0) AS taxable_amount,
			COALESCE(SUM(it.cgst_amount + it.sgst_amount + it.igst_amount), 0) AS total_gst
		 FROM invoices i
		 JOIN invoice_items it ON it.invoice_id = i.id
		 WHERE i.invoice_type = $1
		   AND i.total_amount <= $2
		   AND i.invoice_date >= $3 AND i.invoice_date < $4
		 GROUP BY it.gst_rate
		 ORDER BY it.gst_rate`,
		domain.InvoiceTypeB2C, domain.B2CLargeThreshold, from, to)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.GSTR1B2CSmall: %w", err)
	}
	return rows, nil
}

func (r *reportRepo) InvoiceTaxTotals(ctx context.Context, from, to time.Time) ([]domain.InvoiceTaxTotals, error) {
	rows := []domain.InvoiceTaxTotals{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT taxable_amount, cgst_amount, sgst_amount, igst_amount
		 FROM invoices
		 WHERE invoice_date >= $1 AND invoice_date < $2`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("reportRepo.InvoiceTaxTotals: %w", err)
	}
	return rows, nil
}
