package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Tyler2517/creditkeeper/internal/constants"
	"github.com/Tyler2517/creditkeeper/internal/model"
	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"go.uber.org/zap"
)

// InitialCreditDescription is recorded on the ledger entry the backend appends
// when a customer is created with a nonzero starting credit.
const InitialCreditDescription = "Initial credit"

const DefaultPageSize = 10

type DirectoryService interface {
	List(ctx context.Context, query ListCustomersQuery) (CustomerListResponse, error)
	Create(ctx context.Context, cmd CreateCustomerCommand) (model.Customer, error)
}

type directory struct {
	backend         backend.Client
	defaultPageSize int
	logger          *zap.Logger
}

func NewDirectoryService(backendClient backend.Client, defaultPageSize int, logger *zap.Logger) DirectoryService {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	return &directory{backend: backendClient, defaultPageSize: defaultPageSize, logger: logger}
}

func (d *directory) List(ctx context.Context, query ListCustomersQuery) (CustomerListResponse, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.PageSize <= 0 {
		query.PageSize = d.defaultPageSize
	}

	page, err := d.backend.ListCustomers(ctx, backend.ListQuery{
		Page:     query.Page,
		PageSize: query.PageSize,
		Search:   strings.TrimSpace(query.Search),
	})
	if err != nil {
		d.logger.Error("Failed to list customers",
			zap.Int("page", query.Page),
			zap.Error(err))
		return CustomerListResponse{}, mapBackendError(err)
	}

	return CustomerListResponse{
		Customers:   page.Customers,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
	}, nil
}

// Create validates locally before issuing the request; a nonzero initial
// credit gets a default ledger description, a zero one sends none.
func (d *directory) Create(ctx context.Context, cmd CreateCustomerCommand) (model.Customer, error) {
	name := strings.TrimSpace(cmd.Name)
	email := strings.TrimSpace(cmd.Email)

	if name == "" {
		return model.Customer{}, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("name is required"))
	}
	if email == "" || !strings.Contains(email, "@") {
		return model.Customer{}, NewServiceError(constants.ErrCodeValidationFailed,
			errors.New("a valid email is required"))
	}

	credit, err := model.ParseCredit(cmd.Credit)
	if err != nil {
		return model.Customer{}, NewServiceError(constants.ErrCodeCreditInvalid, err)
	}

	request := backend.CreateCustomerRequest{
		Name:   name,
		Email:  email,
		Credit: credit,
		Note:   strings.TrimSpace(cmd.Note),
	}
	if !credit.IsZero() {
		request.TransactionDescription = InitialCreditDescription
	}

	customer, err := d.backend.CreateCustomer(ctx, request)
	if err != nil {
		d.logger.Error("Failed to create customer",
			zap.String("email", email),
			zap.Error(err))
		return model.Customer{}, mapBackendError(err)
	}

	d.logger.Info("Customer created",
		zap.Int64("customerID", customer.ID),
		zap.String("credit", customer.Credit.StringFixed(2)))

	return customer, nil
}
