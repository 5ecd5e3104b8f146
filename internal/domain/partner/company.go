package partner

import (
	"github.com/bizmate/backend/internal/domain/shared"
)

// CompanyType categorizes a trading partner
type CompanyType string

const (
	CompanyTypeWholesale CompanyType = "도매"
	CompanyTypeRetail    CompanyType = "소매"
	CompanyTypeOther     CompanyType = "기타"
)

// IsValid checks if the type is a recognized company type
func (t CompanyType) IsValid() bool {
	switch t {
	case CompanyTypeWholesale, CompanyTypeRetail, CompanyTypeOther:
		return true
	}
	return false
}

// Company represents a trading partner of the business
type Company struct {
	shared.BaseEntity
	Name        string      `json:"name"`
	Region      string      `json:"region"`
	Type        CompanyType `json:"type"`
	IsFavorite  bool        `json:"is_favorite"`
	ContactName string      `json:"contact_name,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	Address     string      `json:"address,omitempty"`
	Memo        string      `json:"memo,omitempty"`
}

// NewCompany creates a new company with required fields
func NewCompany(name, region string, companyType CompanyType) (*Company, error) {
	if err := validateCompanyName(name); err != nil {
		return nil, err
	}
	if !companyType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Company type must be 도매, 소매, or 기타")
	}

	return &Company{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Region:     region,
		Type:       companyType,
	}, nil
}

// Update updates the company's basic information
func (c *Company) Update(name, region string, companyType CompanyType) error {
	if err := validateCompanyName(name); err != nil {
		return err
	}
	if !companyType.IsValid() {
		return shared.NewDomainError("INVALID_TYPE", "Company type must be 도매, 소매, or 기타")
	}

	c.Name = name
	c.Region = region
	c.Type = companyType
	c.Touch()

	return nil
}

// SetContact sets the company's contact information
func (c *Company) SetContact(contactName, phone, address string) error {
	if len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	if len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}

	c.ContactName = contactName
	c.Phone = phone
	c.Address = address
	c.Touch()

	return nil
}

// SetFavorite marks or unmarks the company as a favorite
func (c *Company) SetFavorite(favorite bool) {
	c.IsFavorite = favorite
	c.Touch()
}

// SetMemo sets the free-form memo
func (c *Company) SetMemo(memo string) {
	c.Memo = memo
	c.Touch()
}

func validateCompanyName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}
