package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/bizmate/backend/internal/domain/billing"
)

// RegisterValidations installs the custom binding rules on gin's validator.
// Call once at startup, before any request binding happens.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("taxtype", validTaxType)
}

// validTaxType accepts only the three known tax categories
func validTaxType(fl validator.FieldLevel) bool {
	return billing.TaxType(fl.Field().String()).IsValid()
}
