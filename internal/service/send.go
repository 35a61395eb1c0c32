package service

import (
	"context"
	"errors"

	"github.com/Behyna/sms-services/messagecloud/internal/config"
	"github.com/Behyna/sms-services/messagecloud/internal/constants"
	"github.com/Behyna/sms-services/messagecloud/pkg/httpclient"
	"github.com/Behyna/sms-services/messagecloud/pkg/messagecloud"
	"go.uber.org/zap"
)

type SendService interface {
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*SendMessageResponse, error)
}

type send struct {
	cfg       *config.Config
	transport httpclient.HTTPClient
	recorder  messagecloud.Recorder
	logger    *zap.Logger
}

func NewSendService(cfg *config.Config, transport httpclient.HTTPClient, recorder messagecloud.Recorder,
	logger *zap.Logger) SendService {
	return &send{cfg: cfg, transport: transport, recorder: recorder, logger: logger}
}

func (s *send) SendMessage(ctx context.Context, cmd SendMessageCommand) (*SendMessageResponse, error) {
	msg, err := s.newMessage().With(fields(cmd)...)
	if err != nil {
		return nil, s.classify(err, cmd)
	}

	result, err := msg.Send(ctx)
	if err != nil {
		return nil, s.classify(err, cmd)
	}

	resp := &SendMessageResponse{
		CallbackID: result.CallbackID(),
		StatusCode: result.StatusCode(),
		Succeeded:  result.Succeeded(),
	}
	if !resp.Succeeded {
		resp.ErrorCode = result.ErrorCode()
		resp.ErrorMessage = result.ErrorMessage()
	}

	return resp, nil
}

func (s *send) newMessage() messagecloud.SMSMessage {
	opts := []messagecloud.Option{
		messagecloud.WithLogger(s.logger),
		messagecloud.WithConfig(s.cfg.Gateway),
		messagecloud.WithTransport(s.transport),
	}
	if s.recorder != nil {
		opts = append(opts, messagecloud.WithRecorder(s.recorder))
	}

	return messagecloud.NewSMSMessage(s.cfg.Credentials.AccountID, s.cfg.Credentials.AccountSecret, opts...)
}

func (s *send) classify(err error, cmd SendMessageCommand) error {
	switch {
	case errors.Is(err, messagecloud.ErrValidation):
		s.logger.Debug("Message rejected locally",
			zap.String("msisdn", cmd.MSISDN),
			zap.Error(err))
		return NewServiceError(constants.ErrCodeValidationFailed, err)

	case errors.Is(err, messagecloud.ErrTimeout):
		return NewServiceError(constants.ErrCodeGatewayTimeout, err)

	case errors.Is(err, messagecloud.ErrTransport):
		return NewServiceError(constants.ErrCodeGatewayUnavailable, err)

	default:
		s.logger.Error("Unexpected send failure", zap.Error(err))
		return NewServiceError(constants.ErrCodeInternalError, err)
	}
}

// fields maps a command onto setter calls. Unset values produce no call so
// that Resolve can fill in its defaults.
func fields(cmd SendMessageCommand) []messagecloud.Field {
	var fs []messagecloud.Field

	if cmd.MSISDN != "" {
		fs = append(fs, messagecloud.SetMSISDN(cmd.MSISDN))
	}
	if cmd.Body != nil {
		fs = append(fs, messagecloud.SetBody(*cmd.Body))
	}
	if cmd.SenderID != "" {
		fs = append(fs, messagecloud.SetSenderID(cmd.SenderID))
	}
	if cmd.ID != "" {
		fs = append(fs, messagecloud.SetID(cmd.ID))
	}
	if cmd.Network != "" {
		fs = append(fs, messagecloud.SetNetwork(cmd.Network))
	}
	if cmd.Value != nil {
		fs = append(fs, messagecloud.SetValue(*cmd.Value))
	}
	if cmd.Currency != "" {
		fs = append(fs, messagecloud.SetCurrency(cmd.Currency))
	}
	if cmd.Reply != nil {
		fs = append(fs, messagecloud.SetReply(*cmd.Reply))
	}
	if cmd.UDH != "" {
		fs = append(fs, messagecloud.SetUDH(cmd.UDH))
	}
	if cmd.Binary {
		fs = append(fs, messagecloud.SetBinary(true))
	}
	if cmd.Category != "" {
		fs = append(fs, messagecloud.SetCategory(cmd.Category))
	}
	if cmd.Encoding != "" {
		fs = append(fs, messagecloud.SetEncoding(cmd.Encoding))
	}

	return fs
}
