package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	// "pgx" keeps sqlx rewriting named parameters to $N placeholders.
	return sqlx.NewDb(db, "pgx"), mock
}

func sampleInvoice() *domain.Invoice {
	return &domain.Invoice{
		CustomerID:    uuid.New(),
		CustomerName:  "Acme Traders",
		CustomerState: "Maharashtra",
		SellerName:    "GSTBill Pvt Ltd",
		SellerState:   "Maharashtra",
		InvoiceType:   domain.InvoiceTypeB2B,
		PlaceOfSupply: "Maharashtra",
		TaxableAmount: decimal.RequireFromString("2000.00"),
		CGSTAmount:    decimal.RequireFromString("180.00"),
		SGSTAmount:    decimal.RequireFromString("180.00"),
		TotalGST:      decimal.RequireFromString("360.00"),
		TotalAmount:   decimal.RequireFromString("2360.00"),
		CreatedBy:     uuid.New(),
		Items: []domain.InvoiceItem{
			{Description: "Widget", Quantity: decimal.RequireFromString("2"), Rate: decimal.RequireFromString("1000")},
			{Description: "Gadget", Quantity: decimal.RequireFromString("1"), Rate: decimal.RequireFromString("500")},
		},
	}
}

// expectAllocAttempt queues one allocator transaction up to the header insert.
func expectAllocAttempt(mock sqlmock.Sqlmock, seq int64) {
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO invoice_sequences").
		WithArgs("INV").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(seq))
}

func TestCreateWithItems_AllocatesNumberAndPersistsAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)

	expectAllocAttempt(mock, 7)
	mock.ExpectExec("INSERT INTO invoices").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO invoice_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO invoice_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	inv := sampleInvoice()
	require.NoError(t, repo.CreateWithItems(context.Background(), inv, "INV"))

	assert.Equal(t, "INV-000007", inv.InvoiceNumber)
	assert.NotEqual(t, uuid.Nil, inv.ID)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, 1, inv.Items[0].ItemNumber)
	assert.Equal(t, 2, inv.Items[1].ItemNumber)
	assert.Equal(t, inv.ID, inv.Items[0].InvoiceID)
	assert.Equal(t, inv.ID, inv.Items[1].InvoiceID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItems_RetriesOnUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)

	// First attempt collides with a pre-existing invoice number, e.g. a row
	// imported before the sequence table was introduced. The repo rolls back
	// and re-runs the whole transaction with the next number.
	expectAllocAttempt(mock, 1)
	mock.ExpectExec("INSERT INTO invoices").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_invoices_number"})
	mock.ExpectRollback()

	expectAllocAttempt(mock, 2)
	mock.ExpectExec("INSERT INTO invoices").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO invoice_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO invoice_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	inv := sampleInvoice()
	require.NoError(t, repo.CreateWithItems(context.Background(), inv, "INV"))

	assert.Equal(t, "INV-000002", inv.InvoiceNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithItems_ExhaustedRetriesReturnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)

	for seq := int64(1); seq <= numberAllocRetries; seq++ {
		expectAllocAttempt(mock, seq)
		mock.ExpectExec("INSERT INTO invoices").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_invoices_number"})
		mock.ExpectRollback()
	}

	err := repo.CreateWithItems(context.Background(), sampleInvoice(), "INV")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvoiceNumberConflict)
	assert.NoError(t, mock.ExpectationsWereMet(), "every attempt should run its own transaction")
}

func TestCreateWithItems_NonUniqueErrorDoesNotRetry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewInvoiceRepo(db)

	expectAllocAttempt(mock, 1)
	mock.ExpectExec("INSERT INTO invoices").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.CreateWithItems(context.Background(), sampleInvoice(), "INV")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvoiceNumberConflict)
	assert.NoError(t, mock.ExpectationsWereMet(), "a single failed transaction, no retries")
}

func TestBuildInvoiceWhere(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	customerID := uuid.New()

	t.Run("no filters", func(t *testing.T) {
		clause, args := buildInvoiceWhere(domain.InvoiceFilters{})
		assert.Equal(t, "WHERE 1=1", clause)
		assert.Empty(t, args)
	})

	t.Run("date window is half open", func(t *testing.T) {
		clause, args := buildInvoiceWhere(domain.InvoiceFilters{StartDate: &start, EndDate: &end})
		assert.Equal(t, "WHERE 1=1 AND invoice_date >= $1 AND invoice_date < $2", clause)
		assert.Equal(t, []interface{}{start, end}, args)
	})

	t.Run("all filters number placeholders in order", func(t *testing.T) {
		clause, args := buildInvoiceWhere(domain.InvoiceFilters{
			StartDate:   &start,
			EndDate:     &end,
			CustomerID:  &customerID,
			InvoiceType: domain.InvoiceTypeB2B,
		})
		assert.Equal(t,
			"WHERE 1=1 AND invoice_date >= $1 AND invoice_date < $2 AND customer_id = $3 AND invoice_type = $4",
			clause)
		assert.Equal(t, []interface{}{start, end, customerID, domain.InvoiceTypeB2B}, args)
	})
}
