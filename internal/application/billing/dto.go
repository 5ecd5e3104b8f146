package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizmate/backend/internal/domain/billing"
)

// InvoiceItemRequest is one line item on an invoice creation request
type InvoiceItemRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
	TaxType   string          `json:"tax_type" binding:"required,taxtype"`
}

// CreateInvoiceRequest represents a request to issue a new invoice
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoice_number" binding:"required,min=1,max=50"`
	CompanyID     uuid.UUID            `json:"company_id" binding:"required"`
	IssueDate     time.Time            `json:"issue_date" binding:"required"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	Memo          string               `json:"memo"`
}

// InvoiceItemResponse represents a line item in API responses
type InvoiceItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
	TaxType     string          `json:"tax_type"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID                uuid.UUID             `json:"id"`
	InvoiceNumber     string                `json:"invoice_number"`
	CompanyID         uuid.UUID             `json:"company_id"`
	Items             []InvoiceItemResponse `json:"items"`
	TotalSupplyAmount decimal.Decimal       `json:"total_supply_amount"`
	TotalTaxAmount    decimal.Decimal       `json:"total_tax_amount"`
	TotalAmount       decimal.Decimal       `json:"total_amount"`
	IssueDate         time.Time             `json:"issue_date"`
	Status            string                `json:"status"`
	Memo              string                `json:"memo"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// ToInvoiceResponse converts a domain invoice to its response representation
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, InvoiceItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
			TaxType:     string(item.TaxType),
			TaxAmount:   item.TaxAmount,
			TotalAmount: item.TotalAmount,
		})
	}

	return InvoiceResponse{
		ID:                inv.ID,
		InvoiceNumber:     inv.InvoiceNumber,
		CompanyID:         inv.CompanyID,
		Items:             items,
		TotalSupplyAmount: inv.TotalSupplyAmount,
		TotalTaxAmount:    inv.TotalTaxAmount,
		TotalAmount:       inv.TotalAmount,
		IssueDate:         inv.IssueDate,
		Status:            string(inv.Status),
		Memo:              inv.Memo,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
}

// InvoiceListFilter narrows the invoice listing
type InvoiceListFilter struct {
	Search    string     `form:"search"`
	CompanyID *uuid.UUID `form:"company_id"`
}
