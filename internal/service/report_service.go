package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// ReportService derives statutory returns from committed invoice data.
// Both reports are pure functions of persisted rows; calling them twice over
// the same period with no intervening writes yields identical results.
type ReportService interface {
	GSTR1(ctx context.Context, month, year int) (*domain.GSTR1Report, error)
	GSTR3B(ctx context.Context, month, year int) (*domain.GSTR3BReport, error)
}

type reportService struct {
	reportRepo port.ReportRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// periodWindow validates month/year and returns the half-open window
// [from, to) for the period along with its MM-YYYY label. The exclusive
// upper bound is the first instant of the next month, so timestamps with
// sub-second precision always land in exactly one period.
func periodWindow(month, year int) (from, to time.Time, label string, err error) {
	if month < 1 || month > 12 {
		return from, to, "", domain.NewValidationError("month", "must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return from, to, "", domain.NewValidationError("year", "must be a four-digit year")
	}
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, 0)
	return from, to, fmt.Sprintf("%02d-%04d", month, year), nil
}

func (s *reportService) GSTR1(ctx context.Context, month, year int) (*domain.GSTR1Report, error) {
	from, to, label, err := periodWindow(month, year)
	if err != nil {
		return nil, err
	}

	b2b, err := s.reportRepo.GSTR1B2B(ctx, from, to)
	if err != nil {
		return nil, err
	}
	large, err := s.reportRepo.GSTR1B2CLarge(ctx, from, to)
	if err != nil {
		return nil, err
	}
	small, err := s.reportRepo.GSTR1B2CSmall(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.GSTR1Report{
		Period:   label,
		B2B:      b2b,
		B2CLarge: large,
		B2CSmall: small,
	}, nil
}

// GSTR3B sums the period's outward supplies and buckets them by effective
// GST rate. The rate is re-derived from each invoice's stored amounts
// ((cgst+sgst)/taxable or igst/taxable), never read from a rate column;
// invoices with zero taxable value are excluded from the rate breakdown.
func (s *reportService) GSTR3B(ctx context.Context, month, year int) (*domain.GSTR3BReport, error) {
	from, to, label, err := periodWindow(month, year)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportRepo.InvoiceTaxTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &domain.GSTR3BReport{Period: label, InvoiceCount: len(rows)}
	buckets := make(map[string]*domain.GSTR3BRateRow)
	for _, row := range rows {
		report.TaxableAmount = report.TaxableAmount.Add(row.TaxableAmount)
		report.CGSTAmount = report.CGSTAmount.Add(row.CGSTAmount)
		report.SGSTAmount = report.SGSTAmount.Add(row.SGSTAmount)
		report.IGSTAmount = report.IGSTAmount.Add(row.IGSTAmount)

		if row.TaxableAmount.IsZero() {
			continue
		}
		rate := effectiveRate(row)
		key := rate.String()
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.GSTR3BRateRow{Rate: rate}
			buckets[key] = bucket
		}
		bucket.InvoiceCount++
		bucket.TaxableAmount = bucket.TaxableAmount.Add(row.TaxableAmount)
		bucket.CGSTAmount = bucket.CGSTAmount.Add(row.CGSTAmount)
		bucket.SGSTAmount = bucket.SGSTAmount.Add(row.SGSTAmount)
		bucket.IGSTAmount = bucket.IGSTAmount.Add(row.IGSTAmount)
	}
	report.TotalGST = report.CGSTAmount.Add(report.SGSTAmount).Add(report.IGSTAmount)

	report.RateWise = make([]domain.GSTR3BRateRow, 0, len(buckets))
	for _, bucket := range buckets {
		report.RateWise = append(report.RateWise, *bucket)
	}
	sort.Slice(report.RateWise, func(i, j int) bool {
		return report.RateWise[i].Rate.LessThan(report.RateWise[j].Rate)
	})

	return report, nil
}

var pctFactor = decimal.NewFromInt(100)

// effectiveRate derives the GST percentage from stored amounts, rounded to
// two decimals so float drift in legacy rows still groups cleanly.
func effectiveRate(row domain.InvoiceTaxTotals) decimal.Decimal {
	tax := row.IGSTAmount
	if tax.IsZero() {
		tax = row.CGSTAmount.Add(row.SGSTAmount)
	}
	return tax.Div(row.TaxableAmount).Mul(pctFactor).Round(2)
}
