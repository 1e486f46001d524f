package csvexport

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
)

func TestWriteGSTR1B2B(t *testing.T) {
	rows := []domain.GSTR1B2BRow{
		{
			InvoiceNumber: "INV-000001",
			InvoiceDate:   time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
			CustomerName:  "Acme Traders",
			CustomerGSTIN: "27AAPFU0939F1ZV",
			PlaceOfSupply: "Maharashtra",
			TaxableAmount: decimal.RequireFromString("2000.00"),
			CGSTAmount:    decimal.RequireFromString("180.00"),
			SGSTAmount:    decimal.RequireFromString("180.00"),
			IGSTAmount:    decimal.Zero,
			TotalAmount:   decimal.RequireFromString("2360.00"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteGSTR1B2B(&buf, rows))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "output should start with a UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Invoice Number,Invoice Date,Customer Name,Customer GSTIN,Place of Supply,Taxable Amount,CGST,SGST,IGST,Total", strings.TrimSpace(lines[0]))
	assert.Equal(t, "INV-000001,2025-04-12,Acme Traders,27AAPFU0939F1ZV,Maharashtra,2000.00,180.00,180.00,0.00,2360.00", strings.TrimSpace(lines[1]))
}

func TestWriteGSTR1B2BEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGSTR1B2B(&buf, nil))

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 1, "only the header row should be present")
}
