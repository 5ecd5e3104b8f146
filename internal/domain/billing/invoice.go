package billing

import (
	"fmt"
	"time"

	"github.com/bizmate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "임시"
	InvoiceStatusIssued    InvoiceStatus = "발행"
	InvoiceStatusCancelled InvoiceStatus = "취소"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks if the status can transition to the target status
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) bool {
	switch s {
	case InvoiceStatusDraft:
		return target == InvoiceStatusIssued || target == InvoiceStatusCancelled
	case InvoiceStatusIssued:
		return target == InvoiceStatusCancelled
	case InvoiceStatusCancelled:
		return false
	}
	return false
}

// InvoiceItem represents a line item of an invoice.
// Items are fixed at invoice creation; amounts are derived once and never
// drift from the quantity and unit price they were computed from.
type InvoiceItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
	TaxType     TaxType         `json:"tax_type"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewInvoiceItem creates a new invoice line item, deriving all amounts
func NewInvoiceItem(name string, quantity, unitPrice decimal.Decimal, taxType TaxType) (*InvoiceItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if !taxType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TAX_TYPE", "Tax type must be 과세, 면세, or 영세")
	}

	amount := quantity.Mul(unitPrice)
	taxAmount := taxType.TaxOn(amount)

	return &InvoiceItem{
		ID:          uuid.New(),
		Name:        name,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      amount,
		TaxType:     taxType,
		TaxAmount:   taxAmount,
		TotalAmount: amount.Add(taxAmount),
	}, nil
}

// Invoice represents a billing event for a company.
// The denormalized totals must stay consistent with the item-level figures:
// TotalAmount == TotalSupplyAmount + TotalTaxAmount == Σ item.TotalAmount.
type Invoice struct {
	shared.BaseEntity
	InvoiceNumber     string          `json:"invoice_number"`
	CompanyID         uuid.UUID       `json:"company_id"`
	Items             []InvoiceItem   `json:"items"`
	TotalSupplyAmount decimal.Decimal `json:"total_supply_amount"`
	TotalTaxAmount    decimal.Decimal `json:"total_tax_amount"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	IssueDate         time.Time       `json:"issue_date"`
	Status            InvoiceStatus   `json:"status"`
	Memo              string          `json:"memo,omitempty"`
}

// NewInvoice creates a new issued invoice from its line items.
// Totals are computed once from the items.
func NewInvoice(invoiceNumber string, companyID uuid.UUID, items []InvoiceItem, issueDate time.Time) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if len(invoiceNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot exceed 50 characters")
	}
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Cannot create an invoice without items")
	}
	if issueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_ISSUE_DATE", "Issue date cannot be empty")
	}

	inv := &Invoice{
		BaseEntity:    shared.NewBaseEntity(),
		InvoiceNumber: invoiceNumber,
		CompanyID:     companyID,
		Items:         items,
		IssueDate:     issueDate,
		Status:        InvoiceStatusIssued,
	}
	inv.recalculateTotals()

	return inv, nil
}

// Cancel cancels the invoice
func (i *Invoice) Cancel() error {
	if !i.Status.CanTransitionTo(InvoiceStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel invoice in %s status", i.Status))
	}

	i.Status = InvoiceStatusCancelled
	i.Touch()

	return nil
}

// SetMemo sets the invoice memo
func (i *Invoice) SetMemo(memo string) {
	i.Memo = memo
	i.Touch()
}

// ItemCount returns the number of line items
func (i *Invoice) ItemCount() int {
	return len(i.Items)
}

// HasTaxType reports whether any line item carries the given tax type
func (i *Invoice) HasTaxType(taxType TaxType) bool {
	for idx := range i.Items {
		if i.Items[idx].TaxType == taxType {
			return true
		}
	}
	return false
}

// HasProduct reports whether any line item's product name contains the query,
// ignoring case
func (i *Invoice) HasProduct(query string) bool {
	for idx := range i.Items {
		if shared.ContainsFold(i.Items[idx].Name, query) {
			return true
		}
	}
	return false
}

// recalculateTotals recomputes the denormalized totals from the items
func (i *Invoice) recalculateTotals() {
	supply := decimal.Zero
	tax := decimal.Zero
	for _, item := range i.Items {
		supply = supply.Add(item.Amount)
		tax = tax.Add(item.TaxAmount)
	}
	i.TotalSupplyAmount = supply
	i.TotalTaxAmount = tax
	i.TotalAmount = supply.Add(tax)
}
