package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billingapp "github.com/bizmate/backend/internal/application/billing"
	"github.com/google/uuid"
)

func (e *testEnv) createInvoice(t *testing.T, companyID uuid.UUID, number string) billingapp.InvoiceResponse {
	t.Helper()
	rec := e.request(t, http.MethodPost, "/api/v1/invoices", billingapp.CreateInvoiceRequest{
		InvoiceNumber: number,
		CompanyID:     companyID,
		IssueDate:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Items: []billingapp.InvoiceItemRequest{
			{Name: "쌀 20kg", Quantity: intDecimal(1), UnitPrice: intDecimal(20000), TaxType: "면세"},
			{Name: "음료수", Quantity: intDecimal(3), UnitPrice: intDecimal(3000), TaxType: "과세"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp billingapp.InvoiceResponse
	decodeData(t, rec, &resp)
	return resp
}

func TestInvoiceHandler_Create(t *testing.T) {
	env := newTestEnv(t)
	companyID := env.createCompany(t, "한빛유통")

	resp := env.createInvoice(t, companyID, "INV-2024-001")

	assert.Equal(t, "발행", resp.Status)
	assert.True(t, resp.TotalSupplyAmount.Equal(intDecimal(29000)))
	assert.True(t, resp.TotalTaxAmount.Equal(intDecimal(900)))
	assert.True(t, resp.TotalAmount.Equal(intDecimal(29900)))
}

func TestInvoiceHandler_Create_RejectsUnknownTaxType(t *testing.T) {
	env := newTestEnv(t)
	companyID := env.createCompany(t, "한빛유통")

	rec := env.request(t, http.MethodPost, "/api/v1/invoices", map[string]any{
		"invoice_number": "INV-1",
		"company_id":     companyID.String(),
		"issue_date":     "2024-03-05T00:00:00Z",
		"items": []map[string]any{
			{"name": "쌀", "quantity": 1, "unit_price": 20000, "tax_type": "부가세"},
		},
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestInvoiceHandler_Create_RejectsEmptyItems(t *testing.T) {
	env := newTestEnv(t)
	companyID := env.createCompany(t, "한빛유통")

	rec := env.request(t, http.MethodPost, "/api/v1/invoices", map[string]any{
		"invoice_number": "INV-1",
		"company_id":     companyID.String(),
		"issue_date":     "2024-03-05T00:00:00Z",
		"items":          []map[string]any{},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvoiceHandler_Cancel(t *testing.T) {
	env := newTestEnv(t)
	companyID := env.createCompany(t, "한빛유통")
	invoice := env.createInvoice(t, companyID, "INV-2024-001")

	rec := env.request(t, http.MethodPost, "/api/v1/invoices/"+invoice.ID.String()+"/cancel", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp billingapp.InvoiceResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, "취소", resp.Status)

	// A cancelled invoice cannot be cancelled again
	rec = env.request(t, http.MethodPost, "/api/v1/invoices/"+invoice.ID.String()+"/cancel", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestInvoiceHandler_List_FilterByCompany(t *testing.T) {
	env := newTestEnv(t)
	first := env.createCompany(t, "한빛유통")
	second := env.createCompany(t, "미래식자재")
	env.createInvoice(t, first, "INV-1")
	env.createInvoice(t, second, "INV-2")

	rec := env.request(t, http.MethodGet, "/api/v1/invoices?company_id="+first.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var invoices []billingapp.InvoiceResponse
	decodeData(t, rec, &invoices)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-1", invoices[0].InvoiceNumber)
}
