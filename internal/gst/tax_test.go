package gst

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestComputeLineIntraState(t *testing.T) {
	// 2 units at 1000 with 18% GST splits into equal CGST/SGST halves.
	res, err := ComputeLine(dec("2"), dec("1000"), dec("18"), IntraState)
	require.NoError(t, err)

	assertDecEqual(t, "2000.00", res.Taxable)
	assertDecEqual(t, "180.00", res.CGST)
	assertDecEqual(t, "180.00", res.SGST)
	assertDecEqual(t, "0", res.IGST)
	assertDecEqual(t, "2360.00", res.Total)
}

func TestComputeLineInterState(t *testing.T) {
	res, err := ComputeLine(dec("2"), dec("1000"), dec("18"), InterState)
	require.NoError(t, err)

	assertDecEqual(t, "2000.00", res.Taxable)
	assertDecEqual(t, "0", res.CGST)
	assertDecEqual(t, "0", res.SGST)
	assertDecEqual(t, "360.00", res.IGST)
	assertDecEqual(t, "2360.00", res.Total)
}

func TestComputeLineOddPaiseHalves(t *testing.T) {
	// Taxable 333.33 at 5% gives 16.67 GST; each half rounds to 8.34 and the
	// line total is built from the rounded halves.
	res, err := ComputeLine(dec("1"), dec("333.33"), dec("5"), IntraState)
	require.NoError(t, err)

	assertDecEqual(t, "333.33", res.Taxable)
	assertDecEqual(t, "8.34", res.CGST)
	assertDecEqual(t, "8.34", res.SGST)
	assertDecEqual(t, "350.01", res.Total)
	assert.True(t, res.Total.Equal(res.Taxable.Add(res.GST())))
}

func TestComputeLineZeroRate(t *testing.T) {
	res, err := ComputeLine(dec("3"), dec("100"), dec("0"), IntraState)
	require.NoError(t, err)

	assertDecEqual(t, "300.00", res.Taxable)
	assertDecEqual(t, "0", res.GST())
	assertDecEqual(t, "300.00", res.Total)
}

func TestComputeLineFractionalQuantity(t *testing.T) {
	// 1.5 kg at 99.99 rounds the taxable value before taxing it.
	res, err := ComputeLine(dec("1.5"), dec("99.99"), dec("12"), InterState)
	require.NoError(t, err)

	assertDecEqual(t, "149.99", res.Taxable)
	assertDecEqual(t, "18.00", res.IGST)
	assertDecEqual(t, "167.99", res.Total)
}

func TestComputeLineRejectsInvalidInputs(t *testing.T) {
	cases := []struct {
		name      string
		qty, rate string
		gstRate   string
		field     string
	}{
		{"zero quantity", "0", "100", "18", "quantity"},
		{"negative quantity", "-1", "100", "18", "quantity"},
		{"zero rate", "1", "0", "18", "rate"},
		{"negative rate", "1", "-5", "18", "rate"},
		{"negative gst rate", "1", "100", "-1", "gst_rate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeLine(dec(tc.qty), dec(tc.rate), dec(tc.gstRate), IntraState)
			require.Error(t, err)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}
