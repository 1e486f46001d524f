package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents an authenticated CRM user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Customer is the master record for a buyer. Invoices snapshot its fields at
// issuance time instead of joining back to this table.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	Address   string    `db:"address" json:"address"`
	State     string    `db:"state" json:"state"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CompanySettings is the singleton seller profile. It is read-only input to
// invoice creation; a missing row means the system is not configured.
type CompanySettings struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	GSTIN       string    `db:"gstin" json:"gstin"`
	PAN         string    `db:"pan" json:"pan"`
	Address     string    `db:"address" json:"address"`
	State       string    `db:"state" json:"state"`
	BankName    string    `db:"bank_name" json:"bank_name"`
	BankAccount string    `db:"bank_account" json:"bank_account"`
	BankIFSC    string    `db:"bank_ifsc" json:"bank_ifsc"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// HSNCode is a reference-table entry for goods/services classification.
type HSNCode struct {
	Code        string          `db:"code" json:"code"`
	Description string          `db:"description" json:"description"`
	GSTRate     decimal.Decimal `db:"gst_rate" json:"gst_rate"`
}

// Invoice is the immutable header of a tax invoice. Party data is copied
// from the customer and company records as they existed at issuance; amounts
// and party identity never change after commit.
type Invoice struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber   string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate     time.Time       `db:"invoice_date" json:"invoice_date"`
	CustomerID      uuid.UUID       `db:"customer_id" json:"customer_id"`
	CustomerName    string          `db:"customer_name" json:"customer_name"`
	CustomerGSTIN   string          `db:"customer_gstin" json:"customer_gstin"`
	CustomerAddress string          `db:"customer_address" json:"customer_address"`
	CustomerState   string          `db:"customer_state" json:"customer_state"`
	SellerName      string          `db:"seller_name" json:"seller_name"`
	SellerGSTIN     string          `db:"seller_gstin" json:"seller_gstin"`
	SellerAddress   string          `db:"seller_address" json:"seller_address"`
	SellerState     string          `db:"seller_state" json:"seller_state"`
	InvoiceType     InvoiceType     `db:"invoice_type" json:"invoice_type"`
	PlaceOfSupply   string          `db:"place_of_supply" json:"place_of_supply"`
	TaxableAmount   decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	CGSTAmount      decimal.Decimal `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount      decimal.Decimal `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount      decimal.Decimal `db:"igst_amount" json:"igst_amount"`
	TotalGST        decimal.Decimal `db:"total_gst" json:"total_gst"`
	TotalAmount     decimal.Decimal `db:"total_amount" json:"total_amount"`
	Notes           string          `db:"notes" json:"notes"`
	CreatedBy       uuid.UUID       `db:"created_by" json:"created_by"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`

	Items []InvoiceItem `db:"-" json:"items,omitempty"`
}

// InvoiceItem is one immutable line of an invoice. ItemNumber is 1-based and
// dense within the invoice.
type InvoiceItem struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	InvoiceID     uuid.UUID       `db:"invoice_id" json:"invoice_id"`
	ItemNumber    int             `db:"item_number" json:"item_number"`
	Description   string          `db:"description" json:"description"`
	HSNCode       string          `db:"hsn_code" json:"hsn_code"`
	Quantity      decimal.Decimal `db:"quantity" json:"quantity"`
	Unit          string          `db:"unit" json:"unit"`
	Rate          decimal.Decimal `db:"rate" json:"rate"`
	GSTRate       decimal.Decimal `db:"gst_rate" json:"gst_rate"`
	TaxableAmount decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	CGSTAmount    decimal.Decimal `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `db:"igst_amount" json:"igst_amount"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
}

// InvoiceFilters narrows invoice list queries. StartDate is inclusive and
// EndDate is exclusive, giving a half-open [start, end) window.
type InvoiceFilters struct {
	StartDate   *time.Time
	EndDate     *time.Time
	CustomerID  *uuid.UUID
	InvoiceType InvoiceType
	Limit       int
}

// InvoiceTypeSummaryRow aggregates committed invoices per classification.
type InvoiceTypeSummaryRow struct {
	InvoiceType   InvoiceType     `db:"invoice_type" json:"invoice_type"`
	InvoiceCount  int             `db:"invoice_count" json:"invoice_count"`
	TaxableAmount decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	TotalGST      decimal.Decimal `db:"total_gst" json:"total_gst"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
}

// GSTR1B2BRow is one B2B invoice reported individually in GSTR-1.
type GSTR1B2BRow struct {
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate   time.Time       `db:"invoice_date" json:"invoice_date"`
	CustomerName  string          `db:"customer_name" json:"customer_name"`
	CustomerGSTIN string          `db:"customer_gstin" json:"customer_gstin"`
	PlaceOfSupply string          `db:"place_of_supply" json:"place_of_supply"`
	TaxableAmount decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	CGSTAmount    decimal.Decimal `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `db:"igst_amount" json:"igst_amount"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
}

// GSTR1B2CLargeRow aggregates large B2C invoices per place of supply.
type GSTR1B2CLargeRow struct {
	PlaceOfSupply string          `db:"place_of_supply" json:"place_of_supply"`
	InvoiceCount  int             `db:"invoice_count" json:"invoice_count"`
	TaxableAmount decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	CGSTAmount    decimal.Decimal `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `db:"igst_amount" json:"igst_amount"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
}

// GSTR1B2CSmallRow aggregates remaining B2C supplies per line-item GST rate.
type GSTR1B2CSmallRow struct {
	GSTRate       decimal.Decimal `db:"gst_rate" json:"gst_rate"`
	InvoiceCount  int             `db:"invoice_count" json:"invoice_count"`
	TaxableAmount decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	TotalGST      decimal.Decimal `db:"total_gst" json:"total_gst"`
}

// GSTR1Report is the full GSTR-1 payload for a period.
type GSTR1Report struct {
	Period   string             `json:"period"`
	B2B      []GSTR1B2BRow      `json:"b2b"`
	B2CLarge []GSTR1B2CLargeRow `json:"b2c_large"`
	B2CSmall []GSTR1B2CSmallRow `json:"b2c_small"`
}

// InvoiceTaxTotals carries the stored per-invoice amounts the GSTR-3B
// rate derivation runs over.
type InvoiceTaxTotals struct {
	TaxableAmount decimal.Decimal `db:"taxable_amount" json:"taxable_amount"`
	CGSTAmount    decimal.Decimal `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `db:"igst_amount" json:"igst_amount"`
}

// GSTR3BRateRow is one rate bucket of the GSTR-3B breakdown. The rate is
// derived from stored amounts, not read from a rate column.
type GSTR3BRateRow struct {
	Rate          decimal.Decimal `json:"rate"`
	InvoiceCount  int             `json:"invoice_count"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
}

// GSTR3BReport is the outward-supply summary plus rate-wise breakdown.
type GSTR3BReport struct {
	Period        string          `json:"period"`
	InvoiceCount  int             `json:"invoice_count"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGSTAmount    decimal.Decimal `json:"cgst_amount"`
	SGSTAmount    decimal.Decimal `json:"sgst_amount"`
	IGSTAmount    decimal.Decimal `json:"igst_amount"`
	TotalGST      decimal.Decimal `json:"total_gst"`
	RateWise      []GSTR3BRateRow `json:"rate_wise"`
}
