package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tradeapp "github.com/bizmate/backend/internal/application/trade"
)

func TestDeliveryHandler_Create(t *testing.T) {
	env := newTestEnv(t)
	companyID := env.createCompany(t, "한빛유통")

	rec := env.request(t, http.MethodPost, "/api/v1/deliveries", tradeapp.CreateDeliveryRequest{
		CompanyID:    companyID,
		DeliveryDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Products: []tradeapp.DeliveryProductRequest{
			{Name: "쌀 20kg", Quantity: intDecimal(10), UnitPrice: intDecimal(26000)},
		},
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp tradeapp.DeliveryResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, "준비중", resp.Status)
	assert.True(t, resp.TotalAmount.Equal(intDecimal(260000)))
}

func TestDeliveryHandler_Create_UnknownCompany(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/v1/deliveries", tradeapp.CreateDeliveryRequest{
		CompanyID:    uuid.New(),
		DeliveryDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Products: []tradeapp.DeliveryProductRequest{
			{Name: "쌀 20kg", Quantity: intDecimal(1), UnitPrice: intDecimal(26000)},
		},
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "COMPANY_NOT_FOUND", resp.Error.Code)
}

func TestDeliveryHandler_UpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	companyID := env.createCompany(t, "한빛유통")
	deliveryID := env.createDelivery(t, companyID)

	rec := env.request(t, http.MethodPost, "/api/v1/deliveries/"+deliveryID.String()+"/status", map[string]string{
		"status": "배송중",
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp tradeapp.DeliveryResponse
	decodeData(t, rec, &resp)
	assert.Equal(t, "배송중", resp.Status)
}

func TestDeliveryHandler_UpdateStatus_IllegalTransition(t *testing.T) {
	env := newTestEnv(t)
	companyID := env.createCompany(t, "한빛유통")
	deliveryID := env.createDelivery(t, companyID)

	// 준비중 cannot jump straight to 배송완료
	rec := env.request(t, http.MethodPost, "/api/v1/deliveries/"+deliveryID.String()+"/status", map[string]string{
		"status": "배송완료",
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_STATE", resp.Error.Code)
}

func TestDeliveryHandler_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	companyID := env.createCompany(t, "한빛유통")
	deliveryID := env.createDelivery(t, companyID)

	rec := env.request(t, http.MethodPost, "/api/v1/deliveries/"+deliveryID.String()+"/status", map[string]string{
		"status": "반송",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeliveryHandler_List_FilterByStatus(t *testing.T) {
	env := newTestEnv(t)
	companyID := env.createCompany(t, "한빛유통")
	first := env.createDelivery(t, companyID)
	env.createDelivery(t, companyID)

	rec := env.request(t, http.MethodPost, "/api/v1/deliveries/"+first.String()+"/status", map[string]string{
		"status": "배송중",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, "/api/v1/deliveries?status=배송중", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var deliveries []tradeapp.DeliveryResponse
	decodeData(t, rec, &deliveries)
	require.Len(t, deliveries, 1)
	assert.Equal(t, first, deliveries[0].ID)
}

func TestDeliveryHandler_List_InvalidCompanyID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/v1/deliveries?company_id=abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
