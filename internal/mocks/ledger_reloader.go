package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type LedgerReloader struct {
	mock.Mock
}

func (m *LedgerReloader) Reload(ctx context.Context, customerID int64) {
	m.Called(ctx, customerID)
}
