package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one append-only ledger entry recording a credit change for a
// customer. Entries are immutable once created and ordered by creation time.
type Transaction struct {
	ID             int64           `json:"id"`
	CreatedAt      time.Time       `json:"created_at"`
	Description    string          `json:"description"`
	PreviousCredit decimal.Decimal `json:"previous_credit"`
	NewCredit      decimal.Decimal `json:"new_credit"`
	CreditChange   decimal.Decimal `json:"credit_change"`
}
