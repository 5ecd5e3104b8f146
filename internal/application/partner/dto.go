package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizmate/backend/internal/domain/partner"
)

// CreateCompanyRequest represents a request to register a new trading partner
type CreateCompanyRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Region      string `json:"region" binding:"max=100"`
	Type        string `json:"type" binding:"required,oneof=도매 소매 기타"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Address     string `json:"address" binding:"max=500"`
	Memo        string `json:"memo"`
}

// UpdateCompanyRequest represents a request to update a trading partner
type UpdateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Region      *string `json:"region" binding:"omitempty,max=100"`
	Type        *string `json:"type" binding:"omitempty,oneof=도매 소매 기타"`
	ContactName *string `json:"contact_name" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Address     *string `json:"address" binding:"omitempty,max=500"`
	Memo        *string `json:"memo"`
	IsFavorite  *bool   `json:"is_favorite"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Region      string    `json:"region"`
	Type        string    `json:"type"`
	IsFavorite  bool      `json:"is_favorite"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Memo        string    `json:"memo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCompanyResponse converts a domain company to its response representation
func ToCompanyResponse(c *partner.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Region:      c.Region,
		Type:        string(c.Type),
		IsFavorite:  c.IsFavorite,
		ContactName: c.ContactName,
		Phone:       c.Phone,
		Address:     c.Address,
		Memo:        c.Memo,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CompanyListFilter narrows the company listing
type CompanyListFilter struct {
	Search        string `form:"search"`
	FavoritesOnly bool   `form:"favorites_only"`
}
