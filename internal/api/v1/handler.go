package v1

import (
	"errors"
	"fmt"

	"github.com/Tyler2517/creditkeeper/internal/api/middleware"
	"github.com/Tyler2517/creditkeeper/internal/api/validator"
	"github.com/Tyler2517/creditkeeper/internal/config"
	"github.com/Tyler2517/creditkeeper/internal/constants"
	"github.com/Tyler2517/creditkeeper/internal/metrics"
	"github.com/Tyler2517/creditkeeper/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger      *zap.Logger
	directory   service.DirectoryService
	XValidator  validator.IXValidator
	metrics     *metrics.Metrics
	exportSheet string
}

func NewHandler(logger *zap.Logger, directory service.DirectoryService,
	XValidator validator.IXValidator, m *metrics.Metrics, cfg *config.Config) *Handler {
	return &Handler{
		logger:      logger,
		directory:   directory,
		XValidator:  XValidator,
		metrics:     m,
		exportSheet: cfg.UI.ExportSheet,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) ListCustomers(c *fiber.Ctx) error {
	query := service.ListCustomersQuery{
		Page:     c.QueryInt("page"),
		PageSize: c.QueryInt("page_size"),
		Search:   c.Query("search"),
	}

	list, err := h.directory.List(c.UserContext(), query)
	if err != nil {
		return err
	}

	return c.JSON(list)
}

func (h *Handler) AddCustomer(c *fiber.Ctx) error {
	var request AddCustomerRequest

	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		h.logger.Warn("Rejected customer create", zap.Any("request", request))
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	cmd := service.CreateCustomerCommand{
		Name:   request.Name,
		Email:  request.Email,
		Credit: request.Credit,
		Note:   request.Note,
	}

	customer, err := h.directory.Create(c.UserContext(), cmd)
	if err != nil {
		return err
	}

	h.logger.Info("Customer created",
		zap.Int64("customerID", customer.ID),
		zap.String("email", customer.Email))

	return c.Status(fiber.StatusCreated).JSON(customer)
}

func (h *Handler) CustomerDetail(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	customerID, err := customerIDParam(c)
	if err != nil {
		return err
	}

	state, err := sess.Editor.Load(c.UserContext(), customerID)
	if err != nil {
		return err
	}

	ledger := sess.Ledger.LoadForCustomer(c.UserContext(), customerID)

	return c.JSON(CustomerDetailResponse{Editor: state, Ledger: ledger})
}

func (h *Handler) BeginEdit(c *fiber.Ctx) error {
	editor, err := h.loadedEditor(c)
	if err != nil {
		return err
	}

	state, err := editor.BeginEdit()
	if err != nil {
		return err
	}

	return c.JSON(state)
}

func (h *Handler) CancelEdit(c *fiber.Ctx) error {
	editor, err := h.loadedEditor(c)
	if err != nil {
		return err
	}

	state, err := editor.CancelEdit()
	if err != nil {
		return err
	}

	return c.JSON(state)
}

func (h *Handler) EditField(c *fiber.Ctx) error {
	editor, err := h.loadedEditor(c)
	if err != nil {
		return err
	}

	var request EditFieldRequest
	responseError := h.XValidator.Validator(&request, constants.MessageErrorFormat, c)
	if responseError.Code != "" {
		responseError.Code = constants.ErrCodeValidationFailed
		return c.JSON(responseError)
	}

	state, err := editor.EditField(service.EditFieldCommand{Field: request.Field, Value: request.Value})
	if err != nil {
		return err
	}

	return c.JSON(state)
}

func (h *Handler) RequestSave(c *fiber.Ctx) error {
	editor, err := h.loadedEditor(c)
	if err != nil {
		return err
	}

	outcome, err := editor.RequestSave(c.UserContext())
	if err != nil {
		h.metrics.RecordSave("failed")
		return err
	}

	if outcome.JustificationRequired {
		h.metrics.RecordSave("suspended")
		h.metrics.RecordJustificationPrompt()
		return c.Status(fiber.StatusAccepted).JSON(outcome)
	}

	h.metrics.RecordSave("committed")
	return c.JSON(outcome)
}

func (h *Handler) ConfirmJustification(c *fiber.Ctx) error {
	editor, err := h.loadedEditor(c)
	if err != nil {
		return err
	}

	var request JustificationRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    constants.ErrCodeInvalidRequestBody,
			"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
		})
	}

	outcome, err := editor.ConfirmJustification(c.UserContext(), request.Description)
	if err != nil {
		h.metrics.RecordSave("failed")
		return err
	}

	h.metrics.RecordSave("committed")
	return c.JSON(outcome)
}

func (h *Handler) CancelJustification(c *fiber.Ctx) error {
	editor, err := h.loadedEditor(c)
	if err != nil {
		return err
	}

	state, err := editor.CancelJustification()
	if err != nil {
		return err
	}

	h.metrics.RecordJustificationCancel()
	return c.JSON(state)
}

func (h *Handler) ToggleSelection(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	customerID, err := customerIDParam(c)
	if err != nil {
		return err
	}

	selected := sess.Analytics.Toggle(customerID)

	return c.JSON(SelectionResponse{
		CustomerID:  customerID,
		Selected:    selected,
		SelectedIDs: sess.Analytics.SelectedIDs(),
	})
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	summary, err := sess.Analytics.Summary(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(SummaryResponse{
		Customers:   summary.Customers,
		TotalCredit: summary.TotalCredit.StringFixed(2),
	})
}

func (h *Handler) ExportSelection(c *fiber.Ctx) error {
	sess := middleware.SessionFrom(c)

	data, filename, err := sess.Analytics.Export(c.UserContext(), h.exportSheet)
	if err != nil {
		return err
	}

	h.metrics.RecordExport()
	h.logger.Info("Selection exported",
		zap.String("filename", filename),
		zap.Int("bytes", len(data)))

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// loadedEditor resolves the session editor and rejects requests whose path id
// no longer matches the record the editor holds, which happens when the
// browser navigated between issuing the request and it arriving here.
func (h *Handler) loadedEditor(c *fiber.Ctx) (*service.Editor, error) {
	sess := middleware.SessionFrom(c)

	customerID, err := customerIDParam(c)
	if err != nil {
		return nil, err
	}

	if current := sess.Editor.State().CustomerID; current != customerID {
		h.logger.Warn("Rejected request for superseded customer",
			zap.Int64("requested", customerID),
			zap.Int64("current", current))
		return nil, service.NewServiceError(constants.ErrCodeStaleResult,
			errors.New(constants.ErrMsgStaleResult))
	}

	return sess.Editor, nil
}

func customerIDParam(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, service.NewServiceError(constants.ErrCodeInvalidCustomerID,
			errors.New(constants.ErrMsgInvalidCustomerID))
	}
	return int64(id), nil
}
