package report

import (
	"fmt"
	"time"

	"github.com/bizmate/backend/internal/domain/billing"
	"github.com/bizmate/backend/internal/domain/partner"
	"github.com/bizmate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxTypeTotals accumulates figures for one tax category.
// Count is the sum of item quantities (units sold), not the number of line
// items.
type TaxTypeTotals struct {
	Count        decimal.Decimal `json:"count"`
	SupplyAmount decimal.Decimal `json:"supply_amount"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// TaxBreakdown holds running totals for each of the three tax categories
type TaxBreakdown map[billing.TaxType]*TaxTypeTotals

// NewTaxBreakdown returns a breakdown with all three categories zeroed
func NewTaxBreakdown() TaxBreakdown {
	b := make(TaxBreakdown, len(billing.TaxTypes))
	for _, t := range billing.TaxTypes {
		b[t] = &TaxTypeTotals{
			Count:        decimal.Zero,
			SupplyAmount: decimal.Zero,
			TaxAmount:    decimal.Zero,
			TotalAmount:  decimal.Zero,
		}
	}
	return b
}

// accumulate adds one invoice item into the breakdown
func (b TaxBreakdown) accumulate(item *billing.InvoiceItem) {
	t := b[item.TaxType]
	t.Count = t.Count.Add(item.Quantity)
	t.SupplyAmount = t.SupplyAmount.Add(item.Amount)
	t.TaxAmount = t.TaxAmount.Add(item.TaxAmount)
	t.TotalAmount = t.TotalAmount.Add(item.TotalAmount)
}

// MonthlySales is a per-month rollup within a company's statistics
type MonthlySales struct {
	Month        string          `json:"month"` // YYYY-MM
	InvoiceCount int             `json:"invoice_count"`
	SupplyAmount decimal.Decimal `json:"supply_amount"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ByTaxType    TaxBreakdown    `json:"by_tax_type"`
}

// ProductSales is a per-product rollup keyed by (name, tax type)
type ProductSales struct {
	Name         string          `json:"name"`
	TaxType      billing.TaxType `json:"tax_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	AveragePrice decimal.Decimal `json:"average_price"`
}

// CompanySalesStats is the per-company aggregation result. It is an ephemeral
// view object recomputed on every query; Company is a read-only back-reference
// to the originating record.
type CompanySalesStats struct {
	CompanyID         uuid.UUID        `json:"company_id"`
	CompanyName       string           `json:"company_name"`
	Company           *partner.Company `json:"company,omitempty"`
	InvoiceCount      int              `json:"invoice_count"`
	TotalSupplyAmount decimal.Decimal  `json:"total_supply_amount"`
	TotalTaxAmount    decimal.Decimal  `json:"total_tax_amount"`
	TotalAmount       decimal.Decimal  `json:"total_amount"`
	LastInvoiceDate   time.Time        `json:"last_invoice_date"`
	ByTaxType         TaxBreakdown     `json:"by_tax_type"`
	Monthly           []MonthlySales   `json:"monthly"`
	Products          []ProductSales   `json:"products"`
}

// TaxTypeSummary extends the per-tax-type totals with the count of companies
// that have any non-zero amount in that category
type TaxTypeSummary struct {
	TaxTypeTotals
	CompanyCount int `json:"company_count"`
}

// MonthlySummary is the cross-company rollup for one month
type MonthlySummary struct {
	Month          string          `json:"month"`
	SupplyAmount   decimal.Decimal `json:"supply_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	CompaniesCount int             `json:"companies_count"`
	InvoicesCount  int             `json:"invoices_count"`
}

// SalesSummary aggregates across all companies in the result
type SalesSummary struct {
	CompanyCount      int                                 `json:"company_count"`
	InvoiceCount      int                                 `json:"invoice_count"`
	TotalSupplyAmount decimal.Decimal                     `json:"total_supply_amount"`
	TotalTaxAmount    decimal.Decimal                     `json:"total_tax_amount"`
	TotalAmount       decimal.Decimal                     `json:"total_amount"`
	ByTaxType         map[billing.TaxType]*TaxTypeSummary `json:"by_tax_type"`
	Monthly           []MonthlySummary                    `json:"monthly"`
}

// SalesAnalytics is the full aggregation output
type SalesAnalytics struct {
	Companies []CompanySalesStats `json:"companies"`
	Summary   SalesSummary        `json:"summary"`
}

// SalesFilter narrows the invoice set before aggregation. Absent fields impose
// no constraint; all predicates are AND-combined.
type SalesFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	CompanyName string
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
	ProductName string
	TaxType     string // "" or "all" keeps every tax category
}

// Normalized applies the default issue-date window: start of the current
// calendar year through now
func (f SalesFilter) Normalized(now time.Time) SalesFilter {
	if f.StartDate == nil {
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		f.StartDate = &start
	}
	if f.EndDate == nil {
		end := now
		f.EndDate = &end
	}
	return f
}

// SortField selects the company-level sort key
type SortField string

const (
	SortByCompany         SortField = "company"
	SortByTotalAmount     SortField = "totalAmount"
	SortByInvoiceCount    SortField = "invoiceCount"
	SortByLastInvoiceDate SortField = "lastInvoiceDate"
	SortByTaxableAmount   SortField = "taxableAmount"
	SortByTaxFreeAmount   SortField = "taxFreeAmount"
)

// IsValid checks if the field is a recognized sort key
func (f SortField) IsValid() bool {
	switch f {
	case SortByCompany, SortByTotalAmount, SortByInvoiceCount,
		SortByLastInvoiceDate, SortByTaxableAmount, SortByTaxFreeAmount:
		return true
	}
	return false
}

// SalesSort specifies the company-level ordering
type SalesSort struct {
	By    SortField
	Order shared.SortOrder
}

// DefaultSort orders companies by total amount, highest first
func DefaultSort() SalesSort {
	return SalesSort{By: SortByTotalAmount, Order: shared.SortDesc}
}

// MonthKey derives the "YYYY-MM" rollup key from a date
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
