package service

type CreateCustomerCommand struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Credit string `json:"credit"`
	Note   string `json:"note"`
}

type ListCustomersQuery struct {
	Page     int
	PageSize int
	Search   string
}

type EditFieldCommand struct {
	Field string `json:"field"`
	Value string `json:"value"`
}
