package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizmate/backend/internal/domain/billing"
	"github.com/bizmate/backend/internal/domain/partner"
	"github.com/bizmate/backend/internal/domain/report"
	"github.com/bizmate/backend/internal/domain/shared"
)

// SalesAnalyticsService computes sales statistics over the invoice collection
type SalesAnalyticsService struct {
	invoiceRepo billing.InvoiceRepository
	companyRepo partner.CompanyRepository
	now         func() time.Time
}

// NewSalesAnalyticsService creates a new SalesAnalyticsService
func NewSalesAnalyticsService(invoiceRepo billing.InvoiceRepository, companyRepo partner.CompanyRepository) *SalesAnalyticsService {
	return &SalesAnalyticsService{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		now:         time.Now,
	}
}

// Query runs the aggregation over the current invoice collection
func (s *SalesAnalyticsService) Query(ctx context.Context, req SalesQueryRequest) (*report.SalesAnalytics, error) {
	filter, err := req.toFilter()
	if err != nil {
		return nil, err
	}
	if filter.TaxType != "" && filter.TaxType != "all" && !billing.TaxType(filter.TaxType).IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "tax_type must be 과세, 면세, 영세, or all")
	}

	sortSpec, err := req.toSort()
	if err != nil {
		return nil, err
	}

	lookup := func(id uuid.UUID) *partner.Company {
		company, err := s.companyRepo.FindByID(id)
		if err != nil {
			return nil
		}
		return company
	}

	analytics := report.Compute(s.invoiceRepo.All(), lookup, filter.Normalized(s.now()), sortSpec)
	return analytics, nil
}
