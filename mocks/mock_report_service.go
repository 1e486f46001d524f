package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GSTR1(ctx context.Context, month, year int) (*domain.GSTR1Report, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTR1Report), args.Error(1)
}

func (m *MockReportService) GSTR3B(ctx context.Context, month, year int) (*domain.GSTR3BReport, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTR3BReport), args.Error(1)
}
