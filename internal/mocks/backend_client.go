package mocks

import (
	"context"

	"github.com/Tyler2517/creditkeeper/internal/model"
	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"github.com/stretchr/testify/mock"
)

type BackendClient struct {
	mock.Mock
}

func (m *BackendClient) ListCustomers(ctx context.Context, query backend.ListQuery) (backend.CustomerPage, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(backend.CustomerPage), args.Error(1)
}

func (m *BackendClient) GetCustomer(ctx context.Context, customerID int64) (model.Customer, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(model.Customer), args.Error(1)
}

func (m *BackendClient) CreateCustomer(ctx context.Context, request backend.CreateCustomerRequest) (model.Customer, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(model.Customer), args.Error(1)
}

func (m *BackendClient) UpdateCustomer(ctx context.Context, customerID int64, request backend.UpdateCustomerRequest) (model.Customer, error) {
	args := m.Called(ctx, customerID, request)
	return args.Get(0).(model.Customer), args.Error(1)
}

func (m *BackendClient) ListTransactions(ctx context.Context, customerID int64) ([]model.Transaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}
