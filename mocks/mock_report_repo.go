package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) GSTR1B2B(ctx context.Context, from, to time.Time) ([]domain.GSTR1B2BRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTR1B2BRow), args.Error(1)
}

func (m *MockReportRepo) GSTR1B2CLarge(ctx context.Context, from, to time.Time) ([]domain.GSTR1B2CLargeRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTR1B2CLargeRow), args.Error(1)
}

func (m *MockReportRepo) GSTR1B2CSmall(ctx context.Context, from, to time.Time) ([]domain.GSTR1B2CSmallRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTR1B2CSmallRow), args.Error(1)
}

func (m *MockReportRepo) InvoiceTaxTotals(ctx context.Context, from, to time.Time) ([]domain.InvoiceTaxTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceTaxTotals), args.Error(1)
}
