package backend_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"github.com/Tyler2517/creditkeeper/pkg/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testConfig = backend.Config{
	BaseURL: "https://api.credit.test",
	Timeout: 30 * time.Second,
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func matchUpdateRequest(check func(req backend.UpdateCustomerRequest) bool) interface{} {
	return mock.MatchedBy(func(body interface{}) bool {
		buf, ok := body.(*bytes.Buffer)
		if !ok {
			return false
		}

		var req backend.UpdateCustomerRequest
		if err := json.NewDecoder(bytes.NewReader(buf.Bytes())).Decode(&req); err != nil {
			return false
		}

		return check(req)
	})
}

func TestClient_GetCustomer(t *testing.T) {
	headers := map[string]string(nil)
	customerURL := "https://api.credit.test/api/customers/42/"

	t.Run("returns the customer on success", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		body := `{"id": 42, "name": "Ada", "email": "ada@example.com", "credit": "100.00"}`
		mockClient.On("Get", context.Background(), customerURL, headers).
			Return(jsonResponse(200, body), nil)

		customer, err := c.GetCustomer(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), customer.ID)
		assert.Equal(t, "Ada", customer.Name)
		assert.True(t, customer.Credit.Equal(decimal.RequireFromString("100.00")))
		mockClient.AssertExpectations(t)
	})

	t.Run("maps 404 to ErrCustomerNotFound and keeps the backend message", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		mockClient.On("Get", context.Background(), customerURL, headers).
			Return(jsonResponse(404, `{"detail": "customer 42 does not exist"}`), nil)

		_, err := c.GetCustomer(context.Background(), 42)

		assert.ErrorIs(t, err, backend.ErrCustomerNotFound)
		assert.Equal(t, "customer 42 does not exist", err.Error())
		mockClient.AssertExpectations(t)
	})

	t.Run("maps deadline exceeded to ErrTimeout", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		mockClient.On("Get", context.Background(), customerURL, headers).
			Return((*http.Response)(nil), context.DeadlineExceeded)

		_, err := c.GetCustomer(context.Background(), 42)

		assert.ErrorIs(t, err, backend.ErrTimeout)
		mockClient.AssertExpectations(t)
	})

	t.Run("returns decoding error on malformed body", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		mockClient.On("Get", context.Background(), customerURL, headers).
			Return(jsonResponse(200, `{"id": `), nil)

		_, err := c.GetCustomer(context.Background(), 42)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decoding error")
		mockClient.AssertExpectations(t)
	})
}

func TestClient_ListCustomers(t *testing.T) {
	headers := map[string]string(nil)

	t.Run("decodes the pagination envelope", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		listURL := "https://api.credit.test/api/customers/?page=2&page_size=10&search=ada"
		body := `{"customers": [{"id": 1, "name": "Ada", "email": "ada@example.com", "credit": "10.00"}],
			"total_pages": 5, "current_page": 2}`
		mockClient.On("Get", context.Background(), listURL, headers).
			Return(jsonResponse(200, body), nil)

		page, err := c.ListCustomers(context.Background(),
			backend.ListQuery{Page: 2, PageSize: 10, Search: "ada"})

		require.NoError(t, err)
		assert.Len(t, page.Customers, 1)
		assert.Equal(t, 5, page.TotalPages)
		assert.Equal(t, 2, page.CurrentPage)
		mockClient.AssertExpectations(t)
	})

	t.Run("decodes a bare array", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		listURL := "https://api.credit.test/api/customers/"
		body := `[{"id": 1, "name": "Ada", "email": "ada@example.com", "credit": "10.00"},
			{"id": 2, "name": "Grace", "email": "grace@example.com", "credit": "20.00"}]`
		mockClient.On("Get", context.Background(), listURL, headers).
			Return(jsonResponse(200, body), nil)

		page, err := c.ListCustomers(context.Background(), backend.ListQuery{})

		require.NoError(t, err)
		assert.Len(t, page.Customers, 2)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 1, page.CurrentPage)
		mockClient.AssertExpectations(t)
	})

	t.Run("maps server errors", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		listURL := "https://api.credit.test/api/customers/"
		mockClient.On("Get", context.Background(), listURL, headers).
			Return(jsonResponse(500, `{}`), nil)

		_, err := c.ListCustomers(context.Background(), backend.ListQuery{})

		assert.ErrorIs(t, err, backend.ErrServerError)
		mockClient.AssertExpectations(t)
	})
}

func TestClient_CreateCustomer(t *testing.T) {
	headers := map[string]string{"Content-Type": "application/json"}
	createURL := "https://api.credit.test/api/customers/"

	t.Run("returns the created customer", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		request := backend.CreateCustomerRequest{
			Name:   "Ada",
			Email:  "ada@example.com",
			Credit: decimal.RequireFromString("50.00"),
		}

		body := `{"id": 7, "name": "Ada", "email": "ada@example.com", "credit": "50.00"}`
		mockClient.On("Post", context.Background(), createURL, mock.Anything, headers).
			Return(jsonResponse(201, body), nil)

		customer, err := c.CreateCustomer(context.Background(), request)

		require.NoError(t, err)
		assert.Equal(t, int64(7), customer.ID)
		mockClient.AssertExpectations(t)
	})

	t.Run("maps 409 to ErrDuplicateEmail with the backend message", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		mockClient.On("Post", context.Background(), createURL, mock.Anything, headers).
			Return(jsonResponse(409, `{"error": "email already registered"}`), nil)

		_, err := c.CreateCustomer(context.Background(), backend.CreateCustomerRequest{})

		assert.ErrorIs(t, err, backend.ErrDuplicateEmail)
		assert.Equal(t, "email already registered", err.Error())
		mockClient.AssertExpectations(t)
	})
}

func TestClient_UpdateCustomer(t *testing.T) {
	headers := map[string]string{"Content-Type": "application/json"}
	updateURL := "https://api.credit.test/api/customers/42/"

	t.Run("sends transaction_description on credit-affecting updates", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		request := backend.UpdateCustomerRequest{
			Name:                   "Ada",
			Email:                  "ada@example.com",
			Credit:                 decimal.RequireFromString("150.00"),
			TransactionDescription: "Refund",
		}

		body := `{"id": 42, "name": "Ada", "email": "ada@example.com", "credit": "150.00"}`
		mockClient.On("Put", context.Background(), updateURL,
			matchUpdateRequest(func(req backend.UpdateCustomerRequest) bool {
				return req.TransactionDescription == "Refund" &&
					req.Credit.Equal(decimal.RequireFromString("150.00"))
			}), headers).Return(jsonResponse(200, body), nil)

		customer, err := c.UpdateCustomer(context.Background(), 42, request)

		require.NoError(t, err)
		assert.True(t, customer.Credit.Equal(decimal.RequireFromString("150.00")))
		mockClient.AssertExpectations(t)
	})

	t.Run("omits transaction_description when empty", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		request := backend.UpdateCustomerRequest{
			Name:   "Ada",
			Email:  "ada@example.com",
			Credit: decimal.RequireFromString("100.00"),
		}

		body := `{"id": 42, "name": "Ada", "email": "ada@example.com", "credit": "100.00"}`
		mockClient.On("Put", context.Background(), updateURL,
			mock.MatchedBy(func(body interface{}) bool {
				buf, ok := body.(*bytes.Buffer)
				return ok && !bytes.Contains(buf.Bytes(), []byte("transaction_description"))
			}), headers).Return(jsonResponse(200, body), nil)

		_, err := c.UpdateCustomer(context.Background(), 42, request)

		require.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("maps 422 to ErrValidationFailed", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		mockClient.On("Put", context.Background(), updateURL, mock.Anything, headers).
			Return(jsonResponse(422, `{"message": "description must not be empty"}`), nil)

		_, err := c.UpdateCustomer(context.Background(), 42, backend.UpdateCustomerRequest{})

		assert.ErrorIs(t, err, backend.ErrValidationFailed)
		assert.Equal(t, "description must not be empty", err.Error())
		mockClient.AssertExpectations(t)
	})
}

func TestClient_ListTransactions(t *testing.T) {
	headers := map[string]string(nil)
	transactionsURL := "https://api.credit.test/api/customers/42/transactions/"

	t.Run("returns the ordered ledger", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		body := `[{"id": 1, "created_at": "2026-08-01T10:00:00Z", "description": "Initial credit",
			"previous_credit": "0.00", "new_credit": "100.00", "credit_change": "100.00"},
			{"id": 2, "created_at": "2026-08-02T11:00:00Z", "description": "Refund",
			"previous_credit": "100.00", "new_credit": "150.00", "credit_change": "50.00"}]`
		mockClient.On("Get", context.Background(), transactionsURL, headers).
			Return(jsonResponse(200, body), nil)

		transactions, err := c.ListTransactions(context.Background(), 42)

		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, "Initial credit", transactions[0].Description)
		assert.True(t, transactions[1].CreditChange.Equal(decimal.RequireFromString("50.00")))
		mockClient.AssertExpectations(t)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := backend.NewClient(testConfig, mockClient)

		mockClient.On("Get", context.Background(), transactionsURL, headers).
			Return(jsonResponse(500, `{}`), nil)

		_, err := c.ListTransactions(context.Background(), 42)

		assert.ErrorIs(t, err, backend.ErrServerError)
		mockClient.AssertExpectations(t)
	})
}
