package domain

// InvoiceType classifies an outward supply for statutory reporting.
type InvoiceType string

const (
	InvoiceTypeB2B    InvoiceType = "B2B"
	InvoiceTypeB2C    InvoiceType = "B2C"
	InvoiceTypeExport InvoiceType = "Export"
	InvoiceTypeSEZ    InvoiceType = "SEZ"
)

// ValidInvoiceTypes is the set of accepted invoice classifications.
var ValidInvoiceTypes = map[InvoiceType]bool{
	InvoiceTypeB2B:    true,
	InvoiceTypeB2C:    true,
	InvoiceTypeExport: true,
	InvoiceTypeSEZ:    true,
}

// UserRole defines the role hierarchy for CRM users.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// B2CLargeThreshold is the statutory total-amount cutoff above which a B2C
// invoice is reported individually per place of supply in GSTR-1 (B2C Large)
// instead of the rate-wise B2C Small bucket.
const B2CLargeThreshold = 250000
