package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Tyler2517/creditkeeper/internal/model"
	"github.com/Tyler2517/creditkeeper/pkg/httpclient"
)

const CustomersEndpoint = "/api/customers/"

// Client is the typed surface of the credit-tracker REST backend. The backend
// is the source of truth for all customer and ledger state; nothing returned
// from it is cached or persisted locally.
type Client interface {
	ListCustomers(ctx context.Context, query ListQuery) (CustomerPage, error)
	GetCustomer(ctx context.Context, customerID int64) (model.Customer, error)
	CreateCustomer(ctx context.Context, request CreateCustomerRequest) (model.Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, request UpdateCustomerRequest) (model.Customer, error)
	ListTransactions(ctx context.Context, customerID int64) ([]model.Transaction, error)
}

type client struct {
	client httpclient.HTTPClient
	config Config
}

func NewClient(cfg Config, httpClient httpclient.HTTPClient) Client {
	return &client{config: cfg, client: httpClient}
}

func (c *client) ListCustomers(ctx context.Context, query ListQuery) (CustomerPage, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(query.PageSize))
	}
	if query.Search != "" {
		values.Set("search", query.Search)
	}

	endpoint := c.config.BaseURL + CustomersEndpoint
	if encoded := values.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	resp, err := c.client.Get(ctx, endpoint, nil)
	if err != nil {
		return CustomerPage{}, mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return CustomerPage{}, decodeError(resp)
	}

	return decodeCustomerPage(resp.Body)
}

func (c *client) GetCustomer(ctx context.Context, customerID int64) (model.Customer, error) {
	resp, err := c.client.Get(ctx, c.customerURL(customerID), nil)
	if err != nil {
		return model.Customer{}, mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return model.Customer{}, decodeError(resp)
	}

	var customer model.Customer
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return model.Customer{}, fmt.Errorf("decoding error: %w", err)
	}

	return customer, nil
}

func (c *client) CreateCustomer(ctx context.Context, request CreateCustomerRequest) (model.Customer, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return model.Customer{}, fmt.Errorf("encoding error: %w", err)
	}

	resp, err := c.client.Post(ctx, c.config.BaseURL+CustomersEndpoint, &buf, jsonHeaders())
	if err != nil {
		return model.Customer{}, mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != StatusOK && resp.StatusCode != StatusCreated {
		return model.Customer{}, decodeError(resp)
	}

	var customer model.Customer
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return model.Customer{}, fmt.Errorf("decoding error: %w", err)
	}

	return customer, nil
}

func (c *client) UpdateCustomer(ctx context.Context, customerID int64, request UpdateCustomerRequest) (model.Customer, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return model.Customer{}, fmt.Errorf("encoding error: %w", err)
	}

	resp, err := c.client.Put(ctx, c.customerURL(customerID), &buf, jsonHeaders())
	if err != nil {
		return model.Customer{}, mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return model.Customer{}, decodeError(resp)
	}

	var customer model.Customer
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return model.Customer{}, fmt.Errorf("decoding error: %w", err)
	}

	return customer, nil
}

func (c *client) ListTransactions(ctx context.Context, customerID int64) ([]model.Transaction, error) {
	endpoint := c.customerURL(customerID) + "transactions/"

	resp, err := c.client.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return nil, decodeError(resp)
	}

	var transactions []model.Transaction
	if err := json.NewDecoder(resp.Body).Decode(&transactions); err != nil {
		return nil, fmt.Errorf("decoding error: %w", err)
	}

	return transactions, nil
}

func (c *client) customerURL(customerID int64) string {
	return fmt.Sprintf("%s%s%d/", c.config.BaseURL, CustomersEndpoint, customerID)
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func mapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	return err
}

// The list endpoint answers either a bare array or a pagination envelope; both
// shapes are accepted.
func decodeCustomerPage(body io.Reader) (CustomerPage, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return CustomerPage{}, fmt.Errorf("decoding error: %w", err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var customers []model.Customer
		if err := json.Unmarshal(trimmed, &customers); err != nil {
			return CustomerPage{}, fmt.Errorf("decoding error: %w", err)
		}
		return CustomerPage{Customers: customers, TotalPages: 1, CurrentPage: 1}, nil
	}

	var page CustomerPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return CustomerPage{}, fmt.Errorf("decoding error: %w", err)
	}
	if page.TotalPages == 0 {
		page.TotalPages = 1
	}
	if page.CurrentPage == 0 {
		page.CurrentPage = 1
	}

	return page, nil
}

func decodeError(resp *http.Response) error {
	mapped := MapStatusToError(resp.StatusCode)

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return &Error{Status: resp.StatusCode, Err: mapped}
	}

	return &Error{Status: resp.StatusCode, Message: body.text(), Err: mapped}
}
