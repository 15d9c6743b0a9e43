package v1

type AddCustomerRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Credit string `json:"credit" validate:"required,amount"`
	Note   string `json:"note"`
}

type EditFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// JustificationRequest carries the free-form justification text. Emptiness is
// judged by the editor after trimming, not by the request validator.
type JustificationRequest struct {
	Description string `json:"description"`
}
