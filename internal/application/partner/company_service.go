package partner

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/bizmate/backend/internal/domain/partner"
)

// CompanyService handles trading-partner business operations
type CompanyService struct {
	companyRepo partner.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo partner.CompanyRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
	}
}

// Create registers a new company
func (s *CompanyService) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	company, err := partner.NewCompany(req.Name, req.Region, partner.CompanyType(req.Type))
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Phone != "" || req.Address != "" {
		if err := company.SetContact(req.ContactName, req.Phone, req.Address); err != nil {
			return nil, err
		}
	}
	if req.Memo != "" {
		company.SetMemo(req.Memo)
	}

	if err := s.companyRepo.Add(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// List retrieves companies, optionally filtered by a search query and the
// favorite flag. Favorites sort first, then by name.
func (s *CompanyService) List(ctx context.Context, filter CompanyListFilter) ([]CompanyResponse, error) {
	var companies []partner.Company
	if filter.Search != "" {
		companies = s.companyRepo.Search(filter.Search)
	} else {
		companies = s.companyRepo.All()
	}

	responses := make([]CompanyResponse, 0, len(companies))
	for i := range companies {
		if filter.FavoritesOnly && !companies[i].IsFavorite {
			continue
		}
		responses = append(responses, ToCompanyResponse(&companies[i]))
	}

	sort.SliceStable(responses, func(i, j int) bool {
		if responses[i].IsFavorite != responses[j].IsFavorite {
			return responses[i].IsFavorite
		}
		return responses[i].Name < responses[j].Name
	})

	return responses, nil
}

// Update applies partial changes to a company
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.Update(ctx, id, func(c *partner.Company) error {
		name := c.Name
		region := c.Region
		companyType := c.Type
		if req.Name != nil {
			name = *req.Name
		}
		if req.Region != nil {
			region = *req.Region
		}
		if req.Type != nil {
			companyType = partner.CompanyType(*req.Type)
		}
		if err := c.Update(name, region, companyType); err != nil {
			return err
		}

		contactName := c.ContactName
		phone := c.Phone
		address := c.Address
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Address != nil {
			address = *req.Address
		}
		if err := c.SetContact(contactName, phone, address); err != nil {
			return err
		}

		if req.Memo != nil {
			c.SetMemo(*req.Memo)
		}
		if req.IsFavorite != nil {
			c.SetFavorite(*req.IsFavorite)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// SetFavorite toggles the favorite flag
func (s *CompanyService) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*CompanyResponse, error) {
	company, err := s.companyRepo.Update(ctx, id, func(c *partner.Company) error {
		c.SetFavorite(favorite)
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Delete removes a company
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.companyRepo.Remove(ctx, id)
}
