package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizmate/backend/internal/domain/finance"
)

// CreateCreditRequest represents a request to record a new outstanding credit
type CreateCreditRequest struct {
	CompanyID uuid.UUID       `json:"company_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	DueDate   time.Time       `json:"due_date" binding:"required"`
	Memo      string          `json:"memo"`
}

// RecordPaymentRequest represents a payment against a credit record
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreditResponse represents a credit record in API responses
type CreditResponse struct {
	ID              uuid.UUID       `json:"id"`
	CompanyID       uuid.UUID       `json:"company_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	DueDate         time.Time       `json:"due_date"`
	Status          string          `json:"status"`
	Memo            string          `json:"memo"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToCreditResponse converts a domain credit record to its response representation
func ToCreditResponse(r *finance.CreditRecord) CreditResponse {
	return CreditResponse{
		ID:              r.ID,
		CompanyID:       r.CompanyID,
		Amount:          r.Amount,
		PaidAmount:      r.PaidAmount,
		RemainingAmount: r.RemainingAmount,
		DueDate:         r.DueDate,
		Status:          string(r.Status),
		Memo:            r.Memo,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// CreditListFilter narrows the credit listing
type CreditListFilter struct {
	CompanyID   *uuid.UUID `form:"company_id"`
	Status      string     `form:"status"`
	OverdueOnly bool       `form:"overdue_only"`
}
