package middleware

import (
	"errors"

	"github.com/Tyler2517/creditkeeper/internal/constants"
	"github.com/Tyler2517/creditkeeper/internal/service"
	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"github.com/gofiber/fiber/v2"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"code":    constants.ErrCodeInternalError,
				"message": fiberErr.Message,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    constants.ErrCodeInternalError,
			"message": constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	status := constants.GetHTTPStatus(err.Code)

	return c.Status(status).JSON(fiber.Map{
		"code":    err.Code,
		"message": messageFor(err),
	})
}

// messageFor prefers the backend's own rejection text verbatim, then locally
// generated detail for request-shaped failures, then the code's default.
func messageFor(err service.Error) string {
	var backendErr *backend.Error
	if errors.As(err.Cause, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}

	switch err.Code {
	case constants.ErrCodeValidationFailed, constants.ErrCodeCreditInvalid,
		constants.ErrCodeUnknownField:
		if err.Cause != nil {
			return err.Cause.Error()
		}
	}

	return constants.GetErrorMessage(err.Code)
}
