package persistence

import "github.com/bizmate/backend/internal/domain/partner"

// seedCompanies is the compiled-in fallback used when the companies key has
// never been written
func seedCompanies() []partner.Company {
	seeds := []struct {
		name        string
		region      string
		companyType partner.CompanyType
		contactName string
		phone       string
	}{
		{"한빛유통", "서울 송파구", partner.CompanyTypeWholesale, "김한빛", "02-415-2201"},
		{"미래식자재", "경기 성남시", partner.CompanyTypeWholesale, "박미래", "031-702-8840"},
		{"동네마트 방이점", "서울 송파구", partner.CompanyTypeRetail, "이정후", "02-419-3377"},
	}

	companies := make([]partner.Company, 0, len(seeds))
	for _, s := range seeds {
		company, err := partner.NewCompany(s.name, s.region, s.companyType)
		if err != nil {
			continue
		}
		_ = company.SetContact(s.contactName, s.phone, "")
		companies = append(companies, *company)
	}
	return companies
}
