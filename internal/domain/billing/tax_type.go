package billing

import "github.com/shopspring/decimal"

// TaxType classifies an invoice line for VAT purposes.
// The Korean literals are the persisted wire values.
type TaxType string

const (
	TaxTypeTaxable   TaxType = "과세" // VAT applies
	TaxTypeExempt    TaxType = "면세" // no VAT
	TaxTypeZeroRated TaxType = "영세" // taxed at 0%, reported separately from exempt
)

// TaxTypes lists all tax categories in reporting order
var TaxTypes = []TaxType{TaxTypeTaxable, TaxTypeExempt, TaxTypeZeroRated}

// vatRate is the standard Korean VAT rate applied to taxable supplies
var vatRate = decimal.New(1, -1) // 0.1

// IsValid checks if the tax type is one of the three known categories
func (t TaxType) IsValid() bool {
	switch t {
	case TaxTypeTaxable, TaxTypeExempt, TaxTypeZeroRated:
		return true
	}
	return false
}

// String returns the string representation of the tax type
func (t TaxType) String() string {
	return string(t)
}

// TaxOn returns the tax amount for a supply amount under this tax category.
// Exempt and zero-rated supplies carry no tax.
func (t TaxType) TaxOn(amount decimal.Decimal) decimal.Decimal {
	if t == TaxTypeTaxable {
		return amount.Mul(vatRate)
	}
	return decimal.Zero
}
