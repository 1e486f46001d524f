// Package csvexport renders report sections as CSV files for download.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"

	"gstbill/internal/domain"
)

// utf8BOM makes Excel open the file as UTF-8 instead of the locale codepage.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var gstr1B2BHeader = []string{
	"Invoice Number",
	"Invoice Date",
	"Customer Name",
	"Customer GSTIN",
	"Place of Supply",
	"Taxable Amount",
	"CGST",
	"SGST",
	"IGST",
	"Total",
}

// WriteGSTR1B2B writes the B2B section of a GSTR-1 report as CSV, prefixed
// with a UTF-8 BOM. Amounts are rendered with two decimal places.
func WriteGSTR1B2B(w io.Writer, rows []domain.GSTR1B2BRow) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(gstr1B2BHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.InvoiceNumber,
			row.InvoiceDate.Format("2006-01-02"),
			row.CustomerName,
			row.CustomerGSTIN,
			row.PlaceOfSupply,
			row.TaxableAmount.StringFixed(2),
			row.CGSTAmount.StringFixed(2),
			row.SGSTAmount.StringFixed(2),
			row.IGSTAmount.StringFixed(2),
			row.TotalAmount.StringFixed(2),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %s: %w", row.InvoiceNumber, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
