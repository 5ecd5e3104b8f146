package report

import (
	"sort"
	"strings"
	"time"

	"github.com/bizmate/backend/internal/domain/billing"
	"github.com/bizmate/backend/internal/domain/partner"
	"github.com/bizmate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyLookup resolves a company by id. A nil result excludes the invoice
// from the rollup; this is policy, not an error.
type CompanyLookup func(uuid.UUID) *partner.Company

// Compute produces the per-company sales statistics and the overall summary
// for the given invoice set. It is pure: it never mutates its inputs and the
// same inputs always yield identical output, including ordering.
func Compute(invoices []billing.Invoice, lookup CompanyLookup, filter SalesFilter, sortSpec SalesSort) *SalesAnalytics {
	if !sortSpec.By.IsValid() || !sortSpec.Order.IsValid() {
		sortSpec = DefaultSort()
	}

	filtered, resolved := filterInvoices(invoices, lookup, filter)

	byCompany := make(map[uuid.UUID]*CompanySalesStats)
	months := make(map[uuid.UUID]map[string]*MonthlySales)
	products := make(map[uuid.UUID]map[productKey]*ProductSales)

	for idx := range filtered {
		inv := &filtered[idx]
		stats, ok := byCompany[inv.CompanyID]
		if !ok {
			company := resolved[inv.CompanyID]
			stats = &CompanySalesStats{
				CompanyID:         inv.CompanyID,
				CompanyName:       company.Name,
				Company:           company,
				TotalSupplyAmount: decimal.Zero,
				TotalTaxAmount:    decimal.Zero,
				TotalAmount:       decimal.Zero,
				ByTaxType:         NewTaxBreakdown(),
			}
			byCompany[inv.CompanyID] = stats
			months[inv.CompanyID] = make(map[string]*MonthlySales)
			products[inv.CompanyID] = make(map[productKey]*ProductSales)
		}

		stats.InvoiceCount++
		stats.TotalSupplyAmount = stats.TotalSupplyAmount.Add(inv.TotalSupplyAmount)
		stats.TotalTaxAmount = stats.TotalTaxAmount.Add(inv.TotalTaxAmount)
		stats.TotalAmount = stats.TotalAmount.Add(inv.TotalAmount)
		if inv.IssueDate.After(stats.LastInvoiceDate) {
			stats.LastInvoiceDate = inv.IssueDate
		}

		month := monthBucket(months[inv.CompanyID], MonthKey(inv.IssueDate))
		month.InvoiceCount++
		month.SupplyAmount = month.SupplyAmount.Add(inv.TotalSupplyAmount)
		month.TaxAmount = month.TaxAmount.Add(inv.TotalTaxAmount)
		month.TotalAmount = month.TotalAmount.Add(inv.TotalAmount)

		for i := range inv.Items {
			item := &inv.Items[i]
			stats.ByTaxType.accumulate(item)
			month.ByTaxType.accumulate(item)

			key := productKey{name: item.Name, taxType: item.TaxType}
			product, ok := products[inv.CompanyID][key]
			if !ok {
				product = &ProductSales{
					Name:         item.Name,
					TaxType:      item.TaxType,
					Quantity:     decimal.Zero,
					TotalAmount:  decimal.Zero,
					AveragePrice: decimal.Zero,
				}
				products[inv.CompanyID][key] = product
			}
			product.Quantity = product.Quantity.Add(item.Quantity)
			product.TotalAmount = product.TotalAmount.Add(item.TotalAmount)
			if product.Quantity.IsPositive() {
				product.AveragePrice = product.TotalAmount.Div(product.Quantity)
			}
		}
	}

	companies := make([]CompanySalesStats, 0, len(byCompany))
	for id, stats := range byCompany {
		stats.Monthly = sortedMonths(months[id])
		stats.Products = sortedProducts(products[id])
		companies = append(companies, *stats)
	}
	sortCompanies(companies, sortSpec)

	return &SalesAnalytics{
		Companies: companies,
		Summary:   summarize(companies, filtered),
	}
}

type productKey struct {
	name    string
	taxType billing.TaxType
}

// filterInvoices applies all filter predicates and drops invoices whose
// company cannot be resolved. The resolved map carries the company for every
// surviving invoice.
func filterInvoices(invoices []billing.Invoice, lookup CompanyLookup, filter SalesFilter) ([]billing.Invoice, map[uuid.UUID]*partner.Company) {
	kept := make([]billing.Invoice, 0, len(invoices))
	resolved := make(map[uuid.UUID]*partner.Company)

	taxType := billing.TaxType(filter.TaxType)
	filterByTax := filter.TaxType != "" && filter.TaxType != "all"

	for idx := range invoices {
		inv := &invoices[idx]

		company, ok := resolved[inv.CompanyID]
		if !ok {
			company = lookup(inv.CompanyID)
			if company != nil {
				resolved[inv.CompanyID] = company
			}
		}
		if company == nil {
			continue
		}

		if filter.StartDate != nil && inv.IssueDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && inv.IssueDate.After(*filter.EndDate) {
			continue
		}
		if !shared.ContainsFold(company.Name, filter.CompanyName) {
			continue
		}
		if filter.MinAmount != nil && inv.TotalAmount.LessThan(*filter.MinAmount) {
			continue
		}
		if filter.MaxAmount != nil && inv.TotalAmount.GreaterThan(*filter.MaxAmount) {
			continue
		}
		if filter.ProductName != "" && !inv.HasProduct(filter.ProductName) {
			continue
		}
		if filterByTax && !inv.HasTaxType(taxType) {
			continue
		}

		kept = append(kept, *inv)
	}

	return kept, resolved
}

func monthBucket(buckets map[string]*MonthlySales, key string) *MonthlySales {
	month, ok := buckets[key]
	if !ok {
		month = &MonthlySales{
			Month:        key,
			SupplyAmount: decimal.Zero,
			TaxAmount:    decimal.Zero,
			TotalAmount:  decimal.Zero,
			ByTaxType:    NewTaxBreakdown(),
		}
		buckets[key] = month
	}
	return month
}

func sortedMonths(buckets map[string]*MonthlySales) []MonthlySales {
	out := make([]MonthlySales, 0, len(buckets))
	for _, m := range buckets {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func sortedProducts(buckets map[productKey]*ProductSales) []ProductSales {
	out := make([]ProductSales, 0, len(buckets))
	for _, p := range buckets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		cmp := out[i].TotalAmount.Cmp(out[j].TotalAmount)
		if cmp != 0 {
			return cmp > 0
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].TaxType < out[j].TaxType
	})
	return out
}

// sortCompanies orders the company list by the sort specification. Ties are
// broken by company name then id so repeated calls give identical output.
func sortCompanies(companies []CompanySalesStats, spec SalesSort) {
	sort.Slice(companies, func(i, j int) bool {
		cmp := compareCompanies(&companies[i], &companies[j], spec.By)
		if spec.Order == shared.SortDesc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0
		}
		if companies[i].CompanyName != companies[j].CompanyName {
			return companies[i].CompanyName < companies[j].CompanyName
		}
		return companies[i].CompanyID.String() < companies[j].CompanyID.String()
	})
}

func compareCompanies(a, b *CompanySalesStats, field SortField) int {
	switch field {
	case SortByCompany:
		return strings.Compare(a.CompanyName, b.CompanyName)
	case SortByInvoiceCount:
		switch {
		case a.InvoiceCount < b.InvoiceCount:
			return -1
		case a.InvoiceCount > b.InvoiceCount:
			return 1
		}
		return 0
	case SortByLastInvoiceDate:
		return compareTimes(a.LastInvoiceDate, b.LastInvoiceDate)
	case SortByTaxableAmount:
		return a.ByTaxType[billing.TaxTypeTaxable].TotalAmount.Cmp(b.ByTaxType[billing.TaxTypeTaxable].TotalAmount)
	case SortByTaxFreeAmount:
		return a.ByTaxType[billing.TaxTypeExempt].TotalAmount.Cmp(b.ByTaxType[billing.TaxTypeExempt].TotalAmount)
	default: // SortByTotalAmount
		return a.TotalAmount.Cmp(b.TotalAmount)
	}
}

// compareTimes compares by timestamp; a missing date sorts as epoch 0
func compareTimes(a, b time.Time) int {
	am, bm := int64(0), int64(0)
	if !a.IsZero() {
		am = a.UnixMilli()
	}
	if !b.IsZero() {
		bm = b.UnixMilli()
	}
	switch {
	case am < bm:
		return -1
	case am > bm:
		return 1
	}
	return 0
}

// summarize computes the cross-company summary from the sorted company list
// and the filtered invoice set
func summarize(companies []CompanySalesStats, filtered []billing.Invoice) SalesSummary {
	summary := SalesSummary{
		CompanyCount:      len(companies),
		InvoiceCount:      len(filtered),
		TotalSupplyAmount: decimal.Zero,
		TotalTaxAmount:    decimal.Zero,
		TotalAmount:       decimal.Zero,
		ByTaxType:         make(map[billing.TaxType]*TaxTypeSummary, len(billing.TaxTypes)),
	}
	for _, t := range billing.TaxTypes {
		summary.ByTaxType[t] = &TaxTypeSummary{
			TaxTypeTotals: TaxTypeTotals{
				Count:        decimal.Zero,
				SupplyAmount: decimal.Zero,
				TaxAmount:    decimal.Zero,
				TotalAmount:  decimal.Zero,
			},
		}
	}

	monthTotals := make(map[string]*MonthlySummary)
	monthCompanies := make(map[string]int)

	for idx := range companies {
		c := &companies[idx]
		summary.TotalSupplyAmount = summary.TotalSupplyAmount.Add(c.TotalSupplyAmount)
		summary.TotalTaxAmount = summary.TotalTaxAmount.Add(c.TotalTaxAmount)
		summary.TotalAmount = summary.TotalAmount.Add(c.TotalAmount)

		for _, t := range billing.TaxTypes {
			from := c.ByTaxType[t]
			into := summary.ByTaxType[t]
			into.Count = into.Count.Add(from.Count)
			into.SupplyAmount = into.SupplyAmount.Add(from.SupplyAmount)
			into.TaxAmount = into.TaxAmount.Add(from.TaxAmount)
			into.TotalAmount = into.TotalAmount.Add(from.TotalAmount)
			if !from.TotalAmount.IsZero() {
				into.CompanyCount++
			}
		}

		for _, m := range c.Monthly {
			total, ok := monthTotals[m.Month]
			if !ok {
				total = &MonthlySummary{
					Month:        m.Month,
					SupplyAmount: decimal.Zero,
					TaxAmount:    decimal.Zero,
					TotalAmount:  decimal.Zero,
				}
				monthTotals[m.Month] = total
			}
			total.SupplyAmount = total.SupplyAmount.Add(m.SupplyAmount)
			total.TaxAmount = total.TaxAmount.Add(m.TaxAmount)
			total.TotalAmount = total.TotalAmount.Add(m.TotalAmount)
			monthCompanies[m.Month]++
		}
	}

	// Invoice counts come from re-scanning the filtered list per month key
	for idx := range filtered {
		key := MonthKey(filtered[idx].IssueDate)
		if total, ok := monthTotals[key]; ok {
			total.InvoicesCount++
		}
	}

	months := make([]MonthlySummary, 0, len(monthTotals))
	for key, total := range monthTotals {
		total.CompaniesCount = monthCompanies[key]
		months = append(months, *total)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	summary.Monthly = months

	return summary
}
