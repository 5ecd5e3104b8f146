package persistence

import (
	"github.com/bizmate/backend/internal/domain/billing"
	"github.com/bizmate/backend/internal/domain/finance"
	"github.com/bizmate/backend/internal/domain/partner"
	"github.com/bizmate/backend/internal/domain/trade"
	"github.com/bizmate/backend/internal/infrastructure/storage"
)

// Versioned storage keys. Bumping a suffix abandons the data under the old
// key; there is no in-place migration.
const (
	companiesKey  = "companies_v2"
	invoicesKey   = "invoices_v2"
	deliveriesKey = "deliveries_v1"
	creditsKey    = "credits_v1"
)

// CompanyStore is the entity store for companies
type CompanyStore struct {
	*Collection[partner.Company, *partner.Company]
}

// NewCompanyStore creates the company store. When seed is disabled an absent
// key loads as an empty collection.
func NewCompanyStore(store storage.Store, seed bool) *CompanyStore {
	seedFn := func() []partner.Company { return nil }
	if seed {
		seedFn = seedCompanies
	}
	return &CompanyStore{NewCollection(store, companiesKey, seedFn,
		func(c *partner.Company) []string {
			return []string{c.Name, c.Region, c.ContactName, c.Phone, c.Address}
		})}
}

// InvoiceStore is the entity store for invoices
type InvoiceStore struct {
	*Collection[billing.Invoice, *billing.Invoice]
}

// NewInvoiceStore creates the invoice store
func NewInvoiceStore(store storage.Store) *InvoiceStore {
	return &InvoiceStore{NewCollection(store, invoicesKey,
		func() []billing.Invoice { return nil },
		func(i *billing.Invoice) []string {
			fields := []string{i.InvoiceNumber}
			for idx := range i.Items {
				fields = append(fields, i.Items[idx].Name)
			}
			return fields
		})}
}

// DeliveryStore is the entity store for deliveries
type DeliveryStore struct {
	*Collection[trade.Delivery, *trade.Delivery]
}

// NewDeliveryStore creates the delivery store
func NewDeliveryStore(store storage.Store) *DeliveryStore {
	return &DeliveryStore{NewCollection(store, deliveriesKey,
		func() []trade.Delivery { return nil },
		func(d *trade.Delivery) []string {
			fields := []string{d.Memo}
			for idx := range d.Products {
				fields = append(fields, d.Products[idx].Name)
			}
			return fields
		})}
}

// CreditStore is the entity store for credit records
type CreditStore struct {
	*Collection[finance.CreditRecord, *finance.CreditRecord]
}

// NewCreditStore creates the credit record store
func NewCreditStore(store storage.Store) *CreditStore {
	return &CreditStore{NewCollection(store, creditsKey,
		func() []finance.CreditRecord { return nil },
		func(r *finance.CreditRecord) []string {
			return []string{r.Memo}
		})}
}

// Interface checks
var (
	_ partner.CompanyRepository = (*CompanyStore)(nil)
	_ billing.InvoiceRepository = (*InvoiceStore)(nil)
	_ trade.DeliveryRepository  = (*DeliveryStore)(nil)
	_ finance.CreditRepository  = (*CreditStore)(nil)
)
