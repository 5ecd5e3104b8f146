package dto

import (
	"net/http"
	"strings"
)

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeNotFound   = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// Resource errors
	"NOT_FOUND":         http.StatusNotFound,
	"COMPANY_NOT_FOUND": http.StatusNotFound,
	"ALREADY_EXISTS":    http.StatusConflict,

	// Business rule errors
	"INVALID_STATE":             http.StatusUnprocessableEntity,
	"PAYMENT_EXCEEDS_REMAINING": http.StatusUnprocessableEntity,

	// Infrastructure errors
	"STORAGE_FAILURE": http.StatusInternalServerError,
	"SEARCH_FAILED":   http.StatusBadGateway,

	// Input errors
	"INVALID_INPUT": http.StatusBadRequest,
	"NO_ITEMS":      http.StatusBadRequest,
	"NO_PRODUCTS":   http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status for an error code. Domain constructor
// codes all use the INVALID_ prefix and map to 400; anything unknown is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
