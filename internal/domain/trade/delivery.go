package trade

import (
	"fmt"
	"time"

	"github.com/bizmate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryStatus represents the status of a delivery
type DeliveryStatus string

const (
	DeliveryStatusPreparing DeliveryStatus = "준비중"
	DeliveryStatusInTransit DeliveryStatus = "배송중"
	DeliveryStatusCompleted DeliveryStatus = "배송완료"
	DeliveryStatusCancelled DeliveryStatus = "취소"
)

// IsValid checks if the status is a valid DeliveryStatus
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPreparing, DeliveryStatusInTransit, DeliveryStatusCompleted, DeliveryStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of DeliveryStatus
func (s DeliveryStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// Deliveries move 준비중 → 배송중 → 배송완료; cancellation is possible from
// either pre-completed state. 배송완료 and 취소 are terminal.
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	switch s {
	case DeliveryStatusPreparing:
		return target == DeliveryStatusInTransit || target == DeliveryStatusCancelled
	case DeliveryStatusInTransit:
		return target == DeliveryStatusCompleted || target == DeliveryStatusCancelled
	case DeliveryStatusCompleted, DeliveryStatusCancelled:
		return false
	}
	return false
}

// DeliveryProduct is a product line on a delivery
type DeliveryProduct struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// NewDeliveryProduct creates a delivery product line, deriving its amount
func NewDeliveryProduct(name string, quantity, unitPrice decimal.Decimal) (*DeliveryProduct, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &DeliveryProduct{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Amount:    quantity.Mul(unitPrice),
	}, nil
}

// Delivery represents a delivery of products to a company
type Delivery struct {
	shared.BaseEntity
	CompanyID    uuid.UUID         `json:"company_id"`
	Products     []DeliveryProduct `json:"products"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	DeliveryDate time.Time         `json:"delivery_date"`
	Status       DeliveryStatus    `json:"status"`
	Memo         string            `json:"memo,omitempty"`
}

// NewDelivery creates a new delivery in 준비중 status
func NewDelivery(companyID uuid.UUID, products []DeliveryProduct, deliveryDate time.Time) (*Delivery, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if len(products) == 0 {
		return nil, shared.NewDomainError("NO_PRODUCTS", "Cannot create a delivery without products")
	}
	if deliveryDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_DELIVERY_DATE", "Delivery date cannot be empty")
	}

	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Amount)
	}

	return &Delivery{
		BaseEntity:   shared.NewBaseEntity(),
		CompanyID:    companyID,
		Products:     products,
		TotalAmount:  total,
		DeliveryDate: deliveryDate,
		Status:       DeliveryStatusPreparing,
	}, nil
}

// TransitionTo moves the delivery to the target status, rejecting illegal
// transitions
func (d *Delivery) TransitionTo(target DeliveryStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown delivery status")
	}
	if !d.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot transition delivery from %s to %s", d.Status, target))
	}

	d.Status = target
	d.Touch()

	return nil
}

// SetMemo sets the delivery memo
func (d *Delivery) SetMemo(memo string) {
	d.Memo = memo
	d.Touch()
}

// IsTerminal returns true if the delivery is completed or cancelled
func (d *Delivery) IsTerminal() bool {
	return d.Status == DeliveryStatusCompleted || d.Status == DeliveryStatusCancelled
}
