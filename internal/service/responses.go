package service

import (
	"github.com/Tyler2517/creditkeeper/internal/model"
	"github.com/shopspring/decimal"
)

type EditorState struct {
	CustomerID int64           `json:"customer_id"`
	Phase      Phase           `json:"phase"`
	Loaded     *model.Customer `json:"customer,omitempty"`
	Draft      *model.Customer `json:"draft,omitempty"`
	Prompt     string          `json:"prompt,omitempty"`
}

// SaveOutcome is the result of a save request: either the record was committed
// or the save was suspended pending a justification.
type SaveOutcome struct {
	Saved                 bool           `json:"saved"`
	JustificationRequired bool           `json:"justification_required"`
	Prompt                string         `json:"prompt,omitempty"`
	Customer              model.Customer `json:"customer,omitempty"`
}

type CustomerListResponse struct {
	Customers   []model.Customer `json:"customers"`
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
}

type SelectionSummary struct {
	Customers   []model.Customer `json:"customers"`
	TotalCredit decimal.Decimal  `json:"total_credit"`
}
