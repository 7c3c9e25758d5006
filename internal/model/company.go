package model

// CompanyInfo is the singleton business profile printed on tickets and
// included in complete backups. Configuration, not a transactional entity.
type CompanyInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	TaxID       string `json:"taxId"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// DefaultCompanyInfo is used until the profile is edited.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:    "Mi Empresa",
		Address: "Calle Principal, 123, 28001 Madrid",
		Phone:   "+34 123 456 789",
		Email:   "info@miempresa.com",
		TaxID:   "B12345678",
		Website: "www.miempresa.com",
	}
}
