package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmate/backend/internal/domain/shared"
)

func makeCredit(t *testing.T, amount int64, dueDate time.Time) *CreditRecord {
	t.Helper()
	record, err := NewCreditRecord(uuid.New(), decimal.NewFromInt(amount), dueDate)
	require.NoError(t, err)
	return record
}

func futureDue() time.Time {
	return time.Now().AddDate(0, 1, 0)
}

func TestNewCreditRecord(t *testing.T) {
	record := makeCredit(t, 500000, futureDue())

	assert.Equal(t, CreditStatusNormal, record.Status)
	assert.True(t, record.PaidAmount.IsZero())
	assert.True(t, record.RemainingAmount.Equal(decimal.NewFromInt(500000)))
	assert.False(t, record.IsSettled())
}

func TestNewCreditRecord_PastDueStartsOverdue(t *testing.T) {
	record := makeCredit(t, 500000, time.Now().AddDate(0, 0, -7))

	assert.Equal(t, CreditStatusOverdue, record.Status)
}

func TestNewCreditRecord_Validation(t *testing.T) {
	tests := []struct {
		name      string
		companyID uuid.UUID
		amount    int64
		dueDate   time.Time
		wantCode  string
	}{
		{"nil company", uuid.Nil, 1000, futureDue(), "INVALID_COMPANY"},
		{"zero amount", uuid.New(), 0, futureDue(), "INVALID_AMOUNT"},
		{"negative amount", uuid.New(), -1000, futureDue(), "INVALID_AMOUNT"},
		{"zero due date", uuid.New(), 1000, time.Time{}, "INVALID_DUE_DATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreditRecord(tt.companyID, decimal.NewFromInt(tt.amount), tt.dueDate)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
		})
	}
}

func TestCreditRecord_RecordPayment(t *testing.T) {
	record := makeCredit(t, 500000, futureDue())

	require.NoError(t, record.RecordPayment(decimal.NewFromInt(200000)))

	assert.True(t, record.PaidAmount.Equal(decimal.NewFromInt(200000)))
	assert.True(t, record.RemainingAmount.Equal(decimal.NewFromInt(300000)))
	assert.Equal(t, CreditStatusNormal, record.Status)
}

func TestCreditRecord_RecordPayment_FullSettlement(t *testing.T) {
	record := makeCredit(t, 500000, futureDue())

	require.NoError(t, record.RecordPayment(decimal.NewFromInt(500000)))

	assert.True(t, record.IsSettled())
	assert.Equal(t, CreditStatusSettled, record.Status)
}

func TestCreditRecord_RecordPayment_RejectsOverpayment(t *testing.T) {
	record := makeCredit(t, 500000, futureDue())

	err := record.RecordPayment(decimal.NewFromInt(500001))

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PAYMENT_EXCEEDS_REMAINING", domainErr.Code)
	assert.True(t, record.RemainingAmount.Equal(decimal.NewFromInt(500000)), "failed payment must not mutate")
}

func TestCreditRecord_RecordPayment_RejectsNonPositive(t *testing.T) {
	record := makeCredit(t, 500000, futureDue())

	err := record.RecordPayment(decimal.Zero)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
}

func TestCreditRecord_RecordPayment_RejectsCancelled(t *testing.T) {
	record := makeCredit(t, 500000, futureDue())
	require.NoError(t, record.Cancel())

	err := record.RecordPayment(decimal.NewFromInt(1000))

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestCreditRecord_Cancel(t *testing.T) {
	record := makeCredit(t, 500000, futureDue())

	require.NoError(t, record.Cancel())
	assert.Equal(t, CreditStatusCancelled, record.Status)

	err := record.Cancel()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestCreditRecord_Cancel_RejectsSettled(t *testing.T) {
	record := makeCredit(t, 500000, futureDue())
	require.NoError(t, record.RecordPayment(decimal.NewFromInt(500000)))

	err := record.Cancel()

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_STATE", domainErr.Code)
}

func TestCreditRecord_RefreshStatus(t *testing.T) {
	due := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	record := makeCredit(t, 500000, due)

	record.RefreshStatus(due.AddDate(0, 0, -10))
	assert.Equal(t, CreditStatusNormal, record.Status)

	record.RefreshStatus(due.AddDate(0, 0, 10))
	assert.Equal(t, CreditStatusOverdue, record.Status)
	assert.True(t, record.IsOverdue(due.AddDate(0, 0, 10)))
}

func TestCreditRecord_RefreshStatus_KeepsCancelled(t *testing.T) {
	record := makeCredit(t, 500000, futureDue())
	require.NoError(t, record.Cancel())

	record.RefreshStatus(time.Now().AddDate(1, 0, 0))

	assert.Equal(t, CreditStatusCancelled, record.Status)
}
