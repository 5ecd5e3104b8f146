package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizmate/backend/internal/domain/report"
	"github.com/bizmate/backend/internal/domain/shared"
)

const dateLayout = "2006-01-02"

// SalesQueryRequest carries the filter and sort parameters of a sales
// analytics query. All fields are optional.
type SalesQueryRequest struct {
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	CompanyName string `form:"company_name"`
	MinAmount   string `form:"min_amount"`
	MaxAmount   string `form:"max_amount"`
	ProductName string `form:"product_name"`
	TaxType     string `form:"tax_type"`
	SortBy      string `form:"sort_by"`
	SortOrder   string `form:"sort_order"`
}

// toFilter parses the raw query strings into a domain filter
func (r SalesQueryRequest) toFilter() (report.SalesFilter, error) {
	filter := report.SalesFilter{
		CompanyName: r.CompanyName,
		ProductName: r.ProductName,
		TaxType:     r.TaxType,
	}

	if r.StartDate != "" {
		t, err := time.Parse(dateLayout, r.StartDate)
		if err != nil {
			return filter, shared.NewDomainError("INVALID_INPUT", "start_date must be YYYY-MM-DD")
		}
		filter.StartDate = &t
	}
	if r.EndDate != "" {
		t, err := time.Parse(dateLayout, r.EndDate)
		if err != nil {
			return filter, shared.NewDomainError("INVALID_INPUT", "end_date must be YYYY-MM-DD")
		}
		// Inclusive through the end of the named day
		end := t.Add(24*time.Hour - time.Nanosecond)
		filter.EndDate = &end
	}
	if r.MinAmount != "" {
		d, err := decimal.NewFromString(r.MinAmount)
		if err != nil {
			return filter, shared.NewDomainError("INVALID_INPUT", "min_amount must be a number")
		}
		filter.MinAmount = &d
	}
	if r.MaxAmount != "" {
		d, err := decimal.NewFromString(r.MaxAmount)
		if err != nil {
			return filter, shared.NewDomainError("INVALID_INPUT", "max_amount must be a number")
		}
		filter.MaxAmount = &d
	}

	return filter, nil
}

// toSort resolves the sort parameters, falling back to the default ordering
func (r SalesQueryRequest) toSort() (report.SalesSort, error) {
	spec := report.DefaultSort()

	if r.SortBy != "" {
		field := report.SortField(r.SortBy)
		if !field.IsValid() {
			return spec, shared.NewDomainError("INVALID_INPUT", "Unknown sort field")
		}
		spec.By = field
	}
	switch r.SortOrder {
	case "":
	case string(shared.SortAsc):
		spec.Order = shared.SortAsc
	case string(shared.SortDesc):
		spec.Order = shared.SortDesc
	default:
		return spec, shared.NewDomainError("INVALID_INPUT", "sort_order must be asc or desc")
	}

	return spec, nil
}
