package v1

import (
	"github.com/Tyler2517/creditkeeper/internal/model"
	"github.com/Tyler2517/creditkeeper/internal/service"
)

type CustomerDetailResponse struct {
	Editor service.EditorState `json:"editor"`
	Ledger []service.LedgerRow `json:"ledger"`
}

type SelectionResponse struct {
	CustomerID  int64   `json:"customer_id"`
	Selected    bool    `json:"selected"`
	SelectedIDs []int64 `json:"selected_ids"`
}

type SummaryResponse struct {
	Customers   []model.Customer `json:"customers"`
	TotalCredit string           `json:"total_credit"`
}
