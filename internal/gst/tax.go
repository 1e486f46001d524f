package gst

import (
	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// LineResult holds the derived money fields for one invoice line. All values
// are rounded to two decimal places before any summation, so header totals
// computed from LineResults are exact.
type LineResult struct {
	Taxable decimal.Decimal
	CGST    decimal.Decimal
	SGST    decimal.Decimal
	IGST    decimal.Decimal
	Total   decimal.Decimal
}

// GST returns the total tax on the line.
func (r LineResult) GST() decimal.Decimal {
	return r.CGST.Add(r.SGST).Add(r.IGST)
}

// ComputeLine derives taxable value and the tax split for a single line.
// Quantity and rate must be positive; gstRate is a percentage and must be
// non-negative. Intra-state supplies split the tax equally between CGST and
// SGST; inter-state supplies carry the whole amount as IGST.
func ComputeLine(quantity, rate, gstRate decimal.Decimal, j Jurisdiction) (LineResult, error) {
	if !quantity.IsPositive() {
		return LineResult{}, domain.NewValidationError("quantity", "must be greater than zero")
	}
	if !rate.IsPositive() {
		return LineResult{}, domain.NewValidationError("rate", "must be greater than zero")
	}
	if gstRate.IsNegative() {
		return LineResult{}, domain.NewValidationError("gst_rate", "must not be negative")
	}

	taxable := quantity.Mul(rate).Round(2)
	gstAmount := taxable.Mul(gstRate).Div(hundred).Round(2)

	res := LineResult{Taxable: taxable}
	if j == IntraState {
		// Equal halves, each rounded. The line total uses the rounded
		// halves so header sums stay exact even on odd-paise amounts.
		half := gstAmount.Div(two).Round(2)
		res.CGST = half
		res.SGST = half
	} else {
		res.IGST = gstAmount
	}
	res.Total = taxable.Add(res.GST())
	return res, nil
}
