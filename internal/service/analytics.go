package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Tyler2517/creditkeeper/internal/model"
	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Analytics holds a per-session selection of customers and derives credit
// totals over it. Selection membership is the only state owned here; customer
// data is always re-fetched from the backend.
type Analytics struct {
	mu      sync.Mutex
	backend backend.Client
	logger  *zap.Logger

	selected map[int64]struct{}
}

func NewAnalytics(backendClient backend.Client, logger *zap.Logger) *Analytics {
	return &Analytics{backend: backendClient, logger: logger, selected: make(map[int64]struct{})}
}

// Toggle flips a customer's selection and reports whether it is now selected.
func (a *Analytics) Toggle(customerID int64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.selected[customerID]; ok {
		delete(a.selected, customerID)
		return false
	}

	a.selected[customerID] = struct{}{}
	return true
}

func (a *Analytics) SelectedIDs() []int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids := make([]int64, 0, len(a.selected))
	for id := range a.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (a *Analytics) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.selected = make(map[int64]struct{})
}

// Summary fetches every selected customer and totals their credit in exact
// decimals. Customers deleted on the backend are dropped from the selection;
// any other backend failure aborts the summary.
func (a *Analytics) Summary(ctx context.Context) (SelectionSummary, error) {
	ids := a.SelectedIDs()

	customers := make([]model.Customer, 0, len(ids))
	total := decimal.Zero

	for _, id := range ids {
		customer, err := a.backend.GetCustomer(ctx, id)
		if err != nil {
			if errors.Is(err, backend.ErrCustomerNotFound) {
				a.logger.Warn("Dropping missing customer from selection",
					zap.Int64("customerID", id))
				a.mu.Lock()
				delete(a.selected, id)
				a.mu.Unlock()
				continue
			}

			a.logger.Error("Failed to fetch selected customer",
				zap.Int64("customerID", id),
				zap.Error(err))
			return SelectionSummary{}, mapBackendError(err)
		}

		customers = append(customers, customer)
		total = total.Add(customer.Credit)
	}

	return SelectionSummary{Customers: customers, TotalCredit: total}, nil
}
