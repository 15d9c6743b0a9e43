package backend

import "github.com/shopspring/decimal"

// TransactionDescription carries the justification the backend records on the
// ledger entry it appends for a credit-affecting create or update. It is
// omitted entirely on saves that do not change credit.

type CreateCustomerRequest struct {
	Name                   string          `json:"name"`
	Email                  string          `json:"email"`
	Credit                 decimal.Decimal `json:"credit"`
	Note                   string          `json:"note,omitempty"`
	TransactionDescription string          `json:"transaction_description,omitempty"`
}

type UpdateCustomerRequest struct {
	Name                   string          `json:"name"`
	Email                  string          `json:"email"`
	Credit                 decimal.Decimal `json:"credit"`
	Note                   string          `json:"note,omitempty"`
	TransactionDescription string          `json:"transaction_description,omitempty"`
}

type ListQuery struct {
	Page     int
	PageSize int
	Search   string
}
