package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"COMPANY_NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"INVALID_STATE", http.StatusUnprocessableEntity},
		{"PAYMENT_EXCEEDS_REMAINING", http.StatusUnprocessableEntity},
		{"STORAGE_FAILURE", http.StatusInternalServerError},
		{"SEARCH_FAILED", http.StatusBadGateway},
		{"NO_ITEMS", http.StatusBadRequest},
		{"INVALID_QUANTITY", http.StatusBadRequest},
		{"INVALID_TAX_TYPE", http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}
