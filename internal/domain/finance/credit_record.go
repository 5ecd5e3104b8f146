package finance

import (
	"time"

	"github.com/bizmate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreditStatus represents the status of a credit record
type CreditStatus string

const (
	CreditStatusNormal    CreditStatus = "정상"
	CreditStatusOverdue   CreditStatus = "연체"
	CreditStatusSettled   CreditStatus = "상환완료"
	CreditStatusCancelled CreditStatus = "취소"
)

// IsValid checks if the status is a valid CreditStatus
func (s CreditStatus) IsValid() bool {
	switch s {
	case CreditStatusNormal, CreditStatusOverdue, CreditStatusSettled, CreditStatusCancelled:
		return true
	}
	return false
}

// CreditRecord tracks an outstanding amount owed by a company.
// Invariant: RemainingAmount == Amount - PaidAmount, never negative.
// Status is derived from the due date and the remaining amount.
type CreditRecord struct {
	shared.BaseEntity
	CompanyID       uuid.UUID       `json:"company_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	DueDate         time.Time       `json:"due_date"`
	Status          CreditStatus    `json:"status"`
	Memo            string          `json:"memo,omitempty"`
}

// NewCreditRecord creates a new credit record with nothing paid yet
func NewCreditRecord(companyID uuid.UUID, amount decimal.Decimal, dueDate time.Time) (*CreditRecord, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Credit amount must be positive")
	}
	if dueDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Due date cannot be empty")
	}

	record := &CreditRecord{
		BaseEntity:      shared.NewBaseEntity(),
		CompanyID:       companyID,
		Amount:          amount,
		PaidAmount:      decimal.Zero,
		RemainingAmount: amount,
		DueDate:         dueDate,
	}
	record.refreshStatus(time.Now())

	return record, nil
}

// RecordPayment records a payment against the credit. A payment greater than
// the remaining amount is rejected, not clamped.
func (r *CreditRecord) RecordPayment(amount decimal.Decimal) error {
	if r.Status == CreditStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cannot record a payment on a cancelled credit")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if amount.GreaterThan(r.RemainingAmount) {
		return shared.NewDomainError("PAYMENT_EXCEEDS_REMAINING", "Payment cannot exceed the remaining amount")
	}

	r.PaidAmount = r.PaidAmount.Add(amount)
	r.RemainingAmount = r.Amount.Sub(r.PaidAmount)
	r.refreshStatus(time.Now())
	r.Touch()

	return nil
}

// Cancel cancels the credit record
func (r *CreditRecord) Cancel() error {
	if r.Status == CreditStatusSettled || r.Status == CreditStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cannot cancel a settled or cancelled credit")
	}

	r.Status = CreditStatusCancelled
	r.Touch()

	return nil
}

// SetMemo sets the credit memo
func (r *CreditRecord) SetMemo(memo string) {
	r.Memo = memo
	r.Touch()
}

// RefreshStatus re-derives the status against the given reference time.
// Cancelled records keep their status.
func (r *CreditRecord) RefreshStatus(now time.Time) {
	if r.Status == CreditStatusCancelled {
		return
	}
	r.refreshStatus(now)
}

// IsSettled returns true if nothing remains to be paid
func (r *CreditRecord) IsSettled() bool {
	return r.RemainingAmount.IsZero()
}

// IsOverdue returns true if the due date has passed with an amount remaining
func (r *CreditRecord) IsOverdue(now time.Time) bool {
	return !r.IsSettled() && now.After(r.DueDate)
}

func (r *CreditRecord) refreshStatus(now time.Time) {
	switch {
	case r.RemainingAmount.IsZero():
		r.Status = CreditStatusSettled
	case now.After(r.DueDate):
		r.Status = CreditStatusOverdue
	default:
		r.Status = CreditStatusNormal
	}
}
