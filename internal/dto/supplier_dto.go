package dto

type SupplierRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=120"`
	ContactName string `json:"contactName" validate:"max=120"`
	Phone       string `json:"phone"       validate:"max=32"`
	Email       string `json:"email"       validate:"omitempty,email"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
}
