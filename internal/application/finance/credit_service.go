package finance

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bizmate/backend/internal/domain/finance"
	"github.com/bizmate/backend/internal/domain/partner"
	"github.com/bizmate/backend/internal/domain/shared"
)

// CreditService handles credit and payment business operations
type CreditService struct {
	creditRepo  finance.CreditRepository
	companyRepo partner.CompanyRepository
	now         func() time.Time
}

// NewCreditService creates a new CreditService
func NewCreditService(creditRepo finance.CreditRepository, companyRepo partner.CompanyRepository) *CreditService {
	return &CreditService{
		creditRepo:  creditRepo,
		companyRepo: companyRepo,
		now:         time.Now,
	}
}

// Create records a new outstanding credit for a company
func (s *CreditService) Create(ctx context.Context, req CreateCreditRequest) (*CreditResponse, error) {
	if _, err := s.companyRepo.FindByID(req.CompanyID); err != nil {
		return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Credit refers to an unknown company")
	}

	record, err := finance.NewCreditRecord(req.CompanyID, req.Amount, req.DueDate)
	if err != nil {
		return nil, err
	}
	if req.Memo != "" {
		record.SetMemo(req.Memo)
	}

	if err := s.creditRepo.Add(ctx, record); err != nil {
		return nil, err
	}

	response := ToCreditResponse(record)
	return &response, nil
}

// GetByID retrieves a credit record by ID with its status re-derived
func (s *CreditService) GetByID(ctx context.Context, id uuid.UUID) (*CreditResponse, error) {
	record, err := s.creditRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	record.RefreshStatus(s.now())

	response := ToCreditResponse(record)
	return &response, nil
}

// List retrieves credit records, nearest due date first. Statuses are
// re-derived against the current time before filtering.
func (s *CreditService) List(ctx context.Context, filter CreditListFilter) ([]CreditResponse, error) {
	records := s.creditRepo.All()
	now := s.now()

	responses := make([]CreditResponse, 0, len(records))
	for i := range records {
		records[i].RefreshStatus(now)
		if filter.CompanyID != nil && records[i].CompanyID != *filter.CompanyID {
			continue
		}
		if filter.Status != "" && string(records[i].Status) != filter.Status {
			continue
		}
		if filter.OverdueOnly && !records[i].IsOverdue(now) {
			continue
		}
		responses = append(responses, ToCreditResponse(&records[i]))
	}

	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].DueDate.Before(responses[j].DueDate)
	})

	return responses, nil
}

// RecordPayment applies a payment to a credit record
func (s *CreditService) RecordPayment(ctx context.Context, id uuid.UUID, req RecordPaymentRequest) (*CreditResponse, error) {
	record, err := s.creditRepo.Update(ctx, id, func(r *finance.CreditRecord) error {
		return r.RecordPayment(req.Amount)
	})
	if err != nil {
		return nil, err
	}

	response := ToCreditResponse(record)
	return &response, nil
}

// Cancel cancels a credit record
func (s *CreditService) Cancel(ctx context.Context, id uuid.UUID) (*CreditResponse, error) {
	record, err := s.creditRepo.Update(ctx, id, func(r *finance.CreditRecord) error {
		return r.Cancel()
	})
	if err != nil {
		return nil, err
	}

	response := ToCreditResponse(record)
	return &response, nil
}

// Delete removes a credit record
func (s *CreditService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.creditRepo.Remove(ctx, id)
}
