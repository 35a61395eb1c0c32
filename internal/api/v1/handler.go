package v1

import (
	"time"

	"github.com/Behyna/sms-services/messagecloud/internal/api/contract"
	"github.com/Behyna/sms-services/messagecloud/internal/api/validator"
	"github.com/Behyna/sms-services/messagecloud/internal/constants"
	"github.com/Behyna/sms-services/messagecloud/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger     *zap.Logger
	service    service.SendService
	XValidator validator.IXValidator
}

func NewHandler(logger *zap.Logger, service service.SendService, XValidator validator.IXValidator) *Handler {
	return &Handler{logger: logger, service: service, XValidator: XValidator}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) SendMessage(c *fiber.Ctx) error {
	start := time.Now()
	trackID := c.GetRespHeader(fiber.HeaderXRequestID)

	var request SendMessageRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("track_id", trackID))
		return c.Status(fiber.StatusBadRequest).JSON(contract.ResponseError{
			Code:    constants.ErrCodeInvalidRequestBody,
			Message: constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
			TrackID: trackID,
		})
	}

	if errs := h.XValidator.Validate(request); len(errs) > 0 {
		h.logger.Info("Request failed validation",
			zap.String("msisdn", request.MSISDN),
			zap.Int("failed_fields", len(errs)),
			zap.String("track_id", trackID))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(contract.ResponseError{
			Code:    constants.ErrCodeValidationFailed,
			Message: h.XValidator.Message(errs, constants.MessageErrorFormat),
			TrackID: trackID,
		})
	}

	cmd := service.SendMessageCommand{
		MSISDN:   request.MSISDN,
		Body:     request.Body,
		SenderID: request.SenderID,
		ID:       request.ID,
		Network:  request.Network,
		Value:    request.Value,
		Currency: request.Currency,
		Reply:    request.Reply,
		UDH:      request.UDH,
		Binary:   request.Binary,
		Category: request.Category,
		Encoding: request.Encoding,
	}

	resp, err := h.service.SendMessage(c.UserContext(), cmd)
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Error(err),
			zap.String("msisdn", request.MSISDN),
			zap.String("track_id", trackID))
		return err
	}

	result := SendMessageResponse{
		CallbackID:   resp.CallbackID,
		StatusCode:   resp.StatusCode,
		ErrorCode:    resp.ErrorCode,
		ErrorMessage: resp.ErrorMessage,
	}

	if !resp.Succeeded {
		h.logger.Info("Message rejected by gateway",
			zap.String("callback_id", resp.CallbackID),
			zap.String("error_code", resp.ErrorCode),
			zap.Duration("duration", time.Since(start)))
		return c.JSON(contract.Response{
			Code:    resp.ErrorCode,
			Message: constants.MessageRejected,
			TrackID: trackID,
			Result:  result,
		})
	}

	h.logger.Info("Message sent successfully",
		zap.String("callback_id", resp.CallbackID),
		zap.Duration("duration", time.Since(start)))

	return c.JSON(contract.Response{
		Successful: true,
		Code:       "success",
		Message:    constants.MessageSent,
		TrackID:    trackID,
		Result:     result,
	})
}
