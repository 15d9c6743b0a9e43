package service

import (
	"context"
	"sync"

	"github.com/Tyler2517/creditkeeper/internal/model"
	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"go.uber.org/zap"
)

const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
)

const ledgerTimestampLayout = "2006-01-02 15:04"

// LedgerRow is one rendered ledger entry: balances formatted to two decimals
// and a signed delta with its direction.
type LedgerRow struct {
	ID             int64  `json:"id"`
	Timestamp      string `json:"timestamp"`
	Description    string `json:"description"`
	PreviousCredit string `json:"previous_credit"`
	NewCredit      string `json:"new_credit"`
	Delta          string `json:"delta"`
	Direction      string `json:"direction"`
}

// LedgerView is a strictly read-only projection of a customer's transaction
// history. Every load replaces the row set wholesale. A failed fetch degrades
// to an empty history so the customer record itself stays usable.
type LedgerView struct {
	mu      sync.Mutex
	backend backend.Client
	logger  *zap.Logger

	customerID int64
	epoch      uint64
	rows       []LedgerRow
}

func NewLedgerView(backendClient backend.Client, logger *zap.Logger) *LedgerView {
	return &LedgerView{backend: backendClient, logger: logger}
}

func (v *LedgerView) LoadForCustomer(ctx context.Context, customerID int64) []LedgerRow {
	v.mu.Lock()
	v.epoch++
	epoch := v.epoch
	v.customerID = customerID
	v.mu.Unlock()

	transactions, err := v.backend.ListTransactions(ctx, customerID)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.epoch != epoch {
		v.logger.Warn("Discarding ledger result after navigation",
			zap.Int64("customerID", customerID))
		return v.rows
	}

	if err != nil {
		v.logger.Warn("Ledger fetch failed, showing empty history",
			zap.Int64("customerID", customerID),
			zap.Error(err))
		v.rows = nil
		return nil
	}

	rows := make([]LedgerRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, formatLedgerRow(tx))
	}

	v.rows = rows
	return rows
}

// Reload implements LedgerReloader for the editor's post-commit signal.
func (v *LedgerView) Reload(ctx context.Context, customerID int64) {
	v.LoadForCustomer(ctx, customerID)
}

func (v *LedgerView) Rows() []LedgerRow {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.rows
}

func (v *LedgerView) CustomerID() int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.customerID
}

func formatLedgerRow(tx model.Transaction) LedgerRow {
	row := LedgerRow{
		ID:             tx.ID,
		Timestamp:      tx.CreatedAt.Format(ledgerTimestampLayout),
		Description:    tx.Description,
		PreviousCredit: tx.PreviousCredit.StringFixed(2),
		NewCredit:      tx.NewCredit.StringFixed(2),
	}

	if tx.CreditChange.IsNegative() {
		row.Delta = tx.CreditChange.StringFixed(2)
		row.Direction = DirectionDecrease
	} else {
		row.Delta = "+" + tx.CreditChange.StringFixed(2)
		row.Direction = DirectionIncrease
	}

	return row
}
