package service_test

import (
	"context"
	"testing"

	"github.com/Tyler2517/creditkeeper/internal/constants"
	"github.com/Tyler2517/creditkeeper/internal/mocks"
	"github.com/Tyler2517/creditkeeper/internal/model"
	"github.com/Tyler2517/creditkeeper/internal/service"
	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDirectory_Create(t *testing.T) {
	logger := zap.NewNop()

	t.Run("zero initial credit sends no transaction description", func(t *testing.T) {
		mockBackend := &mocks.BackendClient{}
		svc := service.NewDirectoryService(mockBackend, 10, logger)

		created := model.Customer{ID: 7, Name: "Ada", Email: "ada@example.com", Credit: decimal.Zero}

		mockBackend.On("CreateCustomer", context.Background(),
			mock.MatchedBy(func(req backend.CreateCustomerRequest) bool {
				return req.Name == "Ada" && req.Credit.IsZero() && req.TransactionDescription == ""
			})).Return(created, nil).Once()

		customer, err := svc.Create(context.Background(), service.CreateCustomerCommand{
			Name:   "Ada",
			Email:  "ada@example.com",
			Credit: "0",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), customer.ID)
		mockBackend.AssertExpectations(t)
	})

	t.Run("nonzero initial credit gets the default ledger description", func(t *testing.T) {
		mockBackend := &mocks.BackendClient{}
		svc := service.NewDirectoryService(mockBackend, 10, logger)

		created := model.Customer{ID: 8, Name: "Grace", Email: "grace@example.com",
			Credit: decimal.RequireFromString("50.00")}

		mockBackend.On("CreateCustomer", context.Background(),
			mock.MatchedBy(func(req backend.CreateCustomerRequest) bool {
				return req.TransactionDescription == service.InitialCreditDescription &&
					req.Credit.Equal(decimal.RequireFromString("50.00"))
			})).Return(created, nil).Once()

		_, err := svc.Create(context.Background(), service.CreateCustomerCommand{
			Name:   "Grace",
			Email:  "grace@example.com",
			Credit: "50.00",
		})

		require.NoError(t, err)
		mockBackend.AssertExpectations(t)
	})

	t.Run("rejects missing fields before any request", func(t *testing.T) {
		mockBackend := &mocks.BackendClient{}
		svc := service.NewDirectoryService(mockBackend, 10, logger)

		cases := []struct {
			name string
			cmd  service.CreateCustomerCommand
			code string
		}{
			{"empty name", service.CreateCustomerCommand{Email: "a@b.c", Credit: "0"},
				constants.ErrCodeValidationFailed},
			{"bad email", service.CreateCustomerCommand{Name: "Ada", Email: "nope", Credit: "0"},
				constants.ErrCodeValidationFailed},
			{"invalid credit", service.CreateCustomerCommand{Name: "Ada", Email: "a@b.c", Credit: "abc"},
				constants.ErrCodeCreditInvalid},
			{"negative credit", service.CreateCustomerCommand{Name: "Ada", Email: "a@b.c", Credit: "-1"},
				constants.ErrCodeCreditInvalid},
		}

		for _, tc := range cases {
			_, err := svc.Create(context.Background(), tc.cmd)
			assert.Equal(t, tc.code, serviceCode(t, err), tc.name)
		}

		mockBackend.AssertNotCalled(t, "CreateCustomer")
	})

	t.Run("surfaces the backend's duplicate-email message verbatim", func(t *testing.T) {
		mockBackend := &mocks.BackendClient{}
		svc := service.NewDirectoryService(mockBackend, 10, logger)

		mockBackend.On("CreateCustomer", context.Background(), mock.Anything).
			Return(model.Customer{}, &backend.Error{
				Status:  409,
				Message: "email already registered",
				Err:     backend.ErrDuplicateEmail,
			}).Once()

		_, err := svc.Create(context.Background(), service.CreateCustomerCommand{
			Name:   "Ada",
			Email:  "ada@example.com",
			Credit: "0",
		})

		assert.Equal(t, constants.ErrCodeDuplicateEmail, serviceCode(t, err))
		assert.Equal(t, "email already registered", err.Error())
		mockBackend.AssertExpectations(t)
	})
}

func TestDirectory_List(t *testing.T) {
	logger := zap.NewNop()

	t.Run("applies paging defaults and trims search", func(t *testing.T) {
		mockBackend := &mocks.BackendClient{}
		svc := service.NewDirectoryService(mockBackend, 25, logger)

		page := backend.CustomerPage{
			Customers:   []model.Customer{{ID: 1, Name: "Ada"}},
			TotalPages:  3,
			CurrentPage: 1,
		}

		mockBackend.On("ListCustomers", context.Background(),
			backend.ListQuery{Page: 1, PageSize: 25, Search: "ada"}).
			Return(page, nil).Once()

		resp, err := svc.List(context.Background(), service.ListCustomersQuery{Search: "  ada "})

		require.NoError(t, err)
		assert.Len(t, resp.Customers, 1)
		assert.Equal(t, 3, resp.TotalPages)
		mockBackend.AssertExpectations(t)
	})

	t.Run("maps backend failures", func(t *testing.T) {
		mockBackend := &mocks.BackendClient{}
		svc := service.NewDirectoryService(mockBackend, 10, logger)

		mockBackend.On("ListCustomers", context.Background(), mock.Anything).
			Return(backend.CustomerPage{}, backend.ErrServerError).Once()

		_, err := svc.List(context.Background(), service.ListCustomersQuery{})

		assert.Equal(t, constants.ErrCodeBackendError, serviceCode(t, err))
		mockBackend.AssertExpectations(t)
	})
}
