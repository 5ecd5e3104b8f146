package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizmate/backend/internal/domain/trade"
)

// DeliveryProductRequest is one product line on a delivery creation request
type DeliveryProductRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateDeliveryRequest represents a request to schedule a new delivery
type CreateDeliveryRequest struct {
	CompanyID    uuid.UUID                `json:"company_id" binding:"required"`
	DeliveryDate time.Time                `json:"delivery_date" binding:"required"`
	Products     []DeliveryProductRequest `json:"products" binding:"required,min=1,dive"`
	Memo         string                   `json:"memo"`
}

// UpdateDeliveryStatusRequest moves a delivery along its lifecycle
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=준비중 배송중 배송완료 취소"`
}

// DeliveryProductResponse represents a product line in API responses
type DeliveryProductResponse struct {
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// DeliveryResponse represents a delivery in API responses
type DeliveryResponse struct {
	ID           uuid.UUID                 `json:"id"`
	CompanyID    uuid.UUID                 `json:"company_id"`
	Products     []DeliveryProductResponse `json:"products"`
	TotalAmount  decimal.Decimal           `json:"total_amount"`
	DeliveryDate time.Time                 `json:"delivery_date"`
	Status       string                    `json:"status"`
	Memo         string                    `json:"memo"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

// ToDeliveryResponse converts a domain delivery to its response representation
func ToDeliveryResponse(d *trade.Delivery) DeliveryResponse {
	products := make([]DeliveryProductResponse, 0, len(d.Products))
	for _, p := range d.Products {
		products = append(products, DeliveryProductResponse{
			Name:      p.Name,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			Amount:    p.Amount,
		})
	}

	return DeliveryResponse{
		ID:           d.ID,
		CompanyID:    d.CompanyID,
		Products:     products,
		TotalAmount:  d.TotalAmount,
		DeliveryDate: d.DeliveryDate,
		Status:       d.Status.String(),
		Memo:         d.Memo,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// DeliveryListFilter narrows the delivery listing
type DeliveryListFilter struct {
	Search    string     `form:"search"`
	CompanyID *uuid.UUID `form:"company_id"`
	Status    string     `form:"status"`
}
