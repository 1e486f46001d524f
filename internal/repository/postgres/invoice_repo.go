package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// numberAllocRetries bounds the reallocation loop when an invoice number
// insert hits the unique index (e.g. rows predating the sequence table).
const numberAllocRetries = 5

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// CreateWithItems allocates the next invoice number for the prefix and
// persists the header and all items inside one transaction. The sequence row
// stays locked until commit, so concurrent creations on the same prefix
// serialize and committed numbers are strictly increasing in commit order.
// A unique violation on invoice_number re-runs the whole transaction with a
// fresh number, up to numberAllocRetries attempts.
func (r *invoiceRepo) CreateWithItems(ctx context.Context, inv *domain.Invoice, prefix string) error {
	var lastErr error
	for attempt := 0; attempt < numberAllocRetries; attempt++ {
		err := r.createOnce(ctx, inv, prefix)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("%w: %v", domain.ErrInvoiceNumberConflict, lastErr)
}

func (r *invoiceRepo) createOnce(ctx context.Context, inv *domain.Invoice, prefix string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.CreateWithItems: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var seq int64
	err = tx.GetContext(ctx, &seq,
		`INSERT INTO invoice_sequences (prefix, last_value) VALUES ($1, 1)
		 ON CONFLICT (prefix) DO UPDATE SET last_value = invoice_sequences.last_value + 1
		 RETURNING last_value`, prefix)
	if err != nil {
		return fmt.Errorf("invoiceRepo.CreateWithItems: allocate number: %w", err)
	}
	inv.InvoiceNumber = fmt.Sprintf("%s-%06d", prefix, seq)

	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	inv.CreatedAt = time.Now().UTC()
	if inv.InvoiceDate.IsZero() {
		inv.InvoiceDate = inv.CreatedAt
	}

	_, err = tx.NamedExecContext(ctx,
		`INSERT INTO invoices (id, invoice_number, invoice_date, customer_id,
			customer_name, customer_gstin, customer_address, customer_state,
			seller_name, seller_gstin, seller_address, seller_state,
			invoice_type, place_of_supply,
			taxable_amount, cgst_amount, sgst_amount, igst_amount, total_gst, total_amount,
			notes, created_by, created_at)
		 VALUES (:id, :invoice_number, :invoice_date, :customer_id,
			:customer_name, :customer_gstin, :customer_address, :customer_state,
			:seller_name, :seller_gstin, :seller_address, :seller_state,
			:invoice_type, :place_of_supply,
			:taxable_amount, :cgst_amount, :sgst_amount, :igst_amount, :total_gst, :total_amount,
			:notes, :created_by, :created_at)`, inv)
	if err != nil {
		return fmt.Errorf("invoiceRepo.CreateWithItems: insert header: %w", err)
	}

	for i := range inv.Items {
		item := &inv.Items[i]
		item.ID = uuid.New()
		item.InvoiceID = inv.ID
		item.ItemNumber = i + 1
		_, err = tx.NamedExecContext(ctx,
			`INSERT INTO invoice_items (id, invoice_id, item_number, description, hsn_code,
				quantity, unit, rate, gst_rate,
				taxable_amount, cgst_amount, sgst_amount, igst_amount, total_amount)
			 VALUES (:id, :invoice_id, :item_number, :description, :hsn_code,
				:quantity, :unit, :rate, :gst_rate,
				:taxable_amount, :cgst_amount, :sgst_amount, :igst_amount, :total_amount)`, item)
		if err != nil {
			return fmt.Errorf("invoiceRepo.CreateWithItems: insert item %d: %w", item.ItemNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.CreateWithItems: commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, `SELECT * FROM invoices WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &inv.Items,
		`SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY item_number`, id)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID: items: %w", err)
	}
	return &inv, nil
}

// maxListRows caps invoice listings regardless of the requested limit.
const maxListRows = 100

// buildInvoiceWhere constructs a dynamic WHERE clause for invoice queries.
func buildInvoiceWhere(filters domain.InvoiceFilters) (clause string, args []interface{}) {
	clause = "WHERE 1=1"
	argN := 1
	if filters.StartDate != nil {
		clause += fmt.Sprintf(" AND invoice_date >= $%d", argN)
		args = append(args, *filters.StartDate)
		argN++
	}
	if filters.EndDate != nil {
		clause += fmt.Sprintf(" AND invoice_date < $%d", argN)
		args = append(args, *filters.EndDate)
		argN++
	}
	if filters.CustomerID != nil {
		clause += fmt.Sprintf(" AND customer_id = $%d", argN)
		args = append(args, *filters.CustomerID)
		argN++
	}
	if filters.InvoiceType != "" {
		clause += fmt.Sprintf(" AND invoice_type = $%d", argN)
		args = append(args, filters.InvoiceType)
		argN++ //nolint:ineffassign // argN kept incremented for consistency
	}
	return clause, args
}

func (r *invoiceRepo) List(ctx context.Context, filters domain.InvoiceFilters) ([]domain.Invoice, error) {
	whereClause, args := buildInvoiceWhere(filters)

	limit := filters.Limit
	if limit <= 0 || limit > maxListRows {
		limit = maxListRows
	}

	query := fmt.Sprintf(`SELECT * FROM invoices
		%s
		ORDER BY invoice_date DESC, created_at DESC
		LIMIT %d`, whereClause, limit)

	invoices := []domain.Invoice{}
	if err := r.db.SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, nil
}

func (r *invoiceRepo) SummaryByType(ctx context.Context, filters domain.InvoiceFilters) ([]domain.InvoiceTypeSummaryRow, error) {
	whereClause, args := buildInvoiceWhere(filters)

	query := fmt.Sprintf(`SELECT
		invoice_type,
		COUNT(*) AS invoice_count,
		COALESCE(SUM(taxable_amount), 0) AS taxable_amount,
		COALESCE(SUM(total_gst), 0) AS total_gst,
		COALESCE(SUM(total_amount), 0) AS total_amount
	FROM invoices
	%s
	GROUP BY invoice_type
	ORDER BY invoice_type`, whereClause)

	rows := []domain.InvoiceTypeSummaryRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("invoiceRepo.SummaryByType: %w", err)
	}
	return rows, nil
}
