package billing

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/bizmate/backend/internal/domain/billing"
	"github.com/bizmate/backend/internal/domain/partner"
	"github.com/bizmate/backend/internal/domain/shared"
)

// InvoiceService handles invoice business operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	companyRepo partner.CompanyRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, companyRepo partner.CompanyRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
	}
}

// Create issues a new invoice for a company
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if _, err := s.companyRepo.FindByID(req.CompanyID); err != nil {
		return nil, shared.NewDomainError("COMPANY_NOT_FOUND", "Invoice refers to an unknown company")
	}

	items := make([]billing.InvoiceItem, 0, len(req.Items))
	for _, ir := range req.Items {
		item, err := billing.NewInvoiceItem(ir.Name, ir.Quantity, ir.UnitPrice, billing.TaxType(ir.TaxType))
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	invoice, err := billing.NewInvoice(req.InvoiceNumber, req.CompanyID, items, req.IssueDate)
	if err != nil {
		return nil, err
	}
	if req.Memo != "" {
		invoice.SetMemo(req.Memo)
	}

	if err := s.invoiceRepo.Add(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices, newest issue date first
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) ([]InvoiceResponse, error) {
	var invoices []billing.Invoice
	if filter.Search != "" {
		invoices = s.invoiceRepo.Search(filter.Search)
	} else {
		invoices = s.invoiceRepo.All()
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		if filter.CompanyID != nil && invoices[i].CompanyID != *filter.CompanyID {
			continue
		}
		responses = append(responses, ToInvoiceResponse(&invoices[i]))
	}

	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].IssueDate.After(responses[j].IssueDate)
	})

	return responses, nil
}

// Cancel cancels an issued invoice
func (s *InvoiceService) Cancel(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.Update(ctx, id, func(inv *billing.Invoice) error {
		return inv.Cancel()
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete removes an invoice
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.Remove(ctx, id)
}
