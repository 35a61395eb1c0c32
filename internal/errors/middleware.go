package errors

import (
	"errors"

	"github.com/Behyna/sms-services/messagecloud/internal/api/contract"
	"github.com/Behyna/sms-services/messagecloud/internal/constants"
	"github.com/Behyna/sms-services/messagecloud/internal/service"
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
			return c.Status(fiberErr.Code).JSON(contract.ResponseError{
				Code:    fiberErr.Message,
				Message: fiberErr.Message,
				TrackID: c.GetRespHeader(fiber.HeaderXRequestID),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(contract.ResponseError{
			Code:    constants.ErrCodeInternalError,
			Message: constants.GetErrorMessage(constants.ErrCodeInternalError),
			TrackID: c.GetRespHeader(fiber.HeaderXRequestID),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == fiber.StatusInternalServerError && err.Code != constants.ErrCodeInternalError {
		errorCode = constants.ErrCodeInternalError
	}

	resp := contract.ResponseError{
		Code:    errorCode,
		Message: constants.GetErrorMessage(errorCode),
		TrackID: c.GetRespHeader(fiber.HeaderXRequestID),
	}
	// Only local validation causes are safe to echo back to the caller.
	if errorCode == constants.ErrCodeValidationFailed {
		resp.Error = err.Error()
	}

	return c.Status(status).JSON(resp)
}
