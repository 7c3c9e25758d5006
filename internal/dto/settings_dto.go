package dto

type ThresholdRequest struct {
	LowStockThreshold int `json:"lowStockThreshold" validate:"min=0"`
}

type CompanyInfoRequest struct {
	Name        string `json:"name"  validate:"required,min=1,max=120"`
	Address     string `json:"address"`
	Phone       string `json:"phone" validate:"max=32"`
	Email       string `json:"email" validate:"omitempty,email"`
	TaxID       string `json:"taxId"`
	Website     string `json:"website"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}
