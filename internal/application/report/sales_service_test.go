package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bizmate/backend/internal/domain/billing"
	"github.com/bizmate/backend/internal/domain/partner"
	"github.com/bizmate/backend/internal/domain/shared"
)

// MockInvoiceRepository is a mock implementation of billing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInvoiceRepository) All() []billing.Invoice {
	args := m.Called()
	return args.Get(0).([]billing.Invoice)
}

func (m *MockInvoiceRepository) FindByID(id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Search(query string) []billing.Invoice {
	args := m.Called(query)
	return args.Get(0).([]billing.Invoice)
}

func (m *MockInvoiceRepository) Add(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, id uuid.UUID, mutate func(*billing.Invoice) error) (*billing.Invoice, error) {
	args := m.Called(ctx, id, mutate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCompanyRepository is a mock implementation of partner.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompanyRepository) All() []partner.Company {
	args := m.Called()
	return args.Get(0).([]partner.Company)
}

func (m *MockCompanyRepository) FindByID(id uuid.UUID) (*partner.Company, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Company), args.Error(1)
}

func (m *MockCompanyRepository) Search(query string) []partner.Company {
	args := m.Called(query)
	return args.Get(0).([]partner.Company)
}

func (m *MockCompanyRepository) Add(ctx context.Context, company *partner.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, id uuid.UUID, mutate func(*partner.Company) error) (*partner.Company, error) {
	args := m.Called(ctx, id, mutate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Company), args.Error(1)
}

func (m *MockCompanyRepository) Remove(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func exemptInvoice(t *testing.T, number string, companyID uuid.UUID, amount int64, issueDate time.Time) billing.Invoice {
	t.Helper()
	item, err := billing.NewInvoiceItem("쌀 20kg", decimal.NewFromInt(1), decimal.NewFromInt(amount), billing.TaxTypeExempt)
	require.NoError(t, err)
	inv, err := billing.NewInvoice(number, companyID, []billing.InvoiceItem{*item}, issueDate)
	require.NoError(t, err)
	return *inv
}

func TestSalesAnalyticsService_Query(t *testing.T) {
	company, err := partner.NewCompany("한빛유통", "서울", partner.CompanyTypeWholesale)
	require.NoError(t, err)

	invoices := []billing.Invoice{
		exemptInvoice(t, "INV-1", company.ID, 29000, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		exemptInvoice(t, "INV-2", company.ID, 40000, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
		exemptInvoice(t, "INV-3", company.ID, 55800, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)),
	}

	invoiceRepo := new(MockInvoiceRepository)
	invoiceRepo.On("All").Return(invoices)
	companyRepo := new(MockCompanyRepository)
	companyRepo.On("FindByID", company.ID).Return(company, nil)

	service := NewSalesAnalyticsService(invoiceRepo, companyRepo)
	service.now = func() time.Time { return time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC) }

	analytics, err := service.Query(context.Background(), SalesQueryRequest{StartDate: "2024-02-01"})

	require.NoError(t, err)
	require.Len(t, analytics.Companies, 1)
	assert.True(t, analytics.Companies[0].TotalAmount.Equal(decimal.NewFromInt(95800)))
	assert.Equal(t, 2, analytics.Companies[0].InvoiceCount)
}

func TestSalesAnalyticsService_Query_DefaultsToCurrentYear(t *testing.T) {
	company, err := partner.NewCompany("한빛유통", "서울", partner.CompanyTypeWholesale)
	require.NoError(t, err)

	invoices := []billing.Invoice{
		exemptInvoice(t, "INV-0", company.ID, 10000, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)),
		exemptInvoice(t, "INV-1", company.ID, 29000, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
	}

	invoiceRepo := new(MockInvoiceRepository)
	invoiceRepo.On("All").Return(invoices)
	companyRepo := new(MockCompanyRepository)
	companyRepo.On("FindByID", company.ID).Return(company, nil)

	service := NewSalesAnalyticsService(invoiceRepo, companyRepo)
	service.now = func() time.Time { return time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC) }

	analytics, err := service.Query(context.Background(), SalesQueryRequest{})

	require.NoError(t, err)
	require.Len(t, analytics.Companies, 1)
	assert.Equal(t, 1, analytics.Companies[0].InvoiceCount)
	assert.True(t, analytics.Companies[0].TotalAmount.Equal(decimal.NewFromInt(29000)))
}

func TestSalesAnalyticsService_Query_InvalidParams(t *testing.T) {
	tests := []struct {
		name string
		req  SalesQueryRequest
	}{
		{name: "bad start date", req: SalesQueryRequest{StartDate: "01-02-2024"}},
		{name: "bad end date", req: SalesQueryRequest{EndDate: "next week"}},
		{name: "bad min amount", req: SalesQueryRequest{MinAmount: "lots"}},
		{name: "bad max amount", req: SalesQueryRequest{MaxAmount: "1,000"}},
		{name: "unknown tax type", req: SalesQueryRequest{TaxType: "반세"}},
		{name: "unknown sort field", req: SalesQueryRequest{SortBy: "profit"}},
		{name: "unknown sort order", req: SalesQueryRequest{SortOrder: "sideways"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoiceRepo := new(MockInvoiceRepository)
			companyRepo := new(MockCompanyRepository)
			service := NewSalesAnalyticsService(invoiceRepo, companyRepo)

			_, err := service.Query(context.Background(), tt.req)

			require.Error(t, err)
			var domainErr *shared.DomainError
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, "INVALID_INPUT", domainErr.Code)
			invoiceRepo.AssertNotCalled(t, "All")
		})
	}
}

func TestSalesAnalyticsService_Query_AllTaxTypesKeyword(t *testing.T) {
	invoiceRepo := new(MockInvoiceRepository)
	invoiceRepo.On("All").Return([]billing.Invoice{})
	companyRepo := new(MockCompanyRepository)

	service := NewSalesAnalyticsService(invoiceRepo, companyRepo)

	analytics, err := service.Query(context.Background(), SalesQueryRequest{TaxType: "all"})

	require.NoError(t, err)
	assert.Empty(t, analytics.Companies)
	assert.Equal(t, 0, analytics.Summary.InvoiceCount)
}
