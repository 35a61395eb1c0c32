package mocks

import (
	"context"

	"github.com/Behyna/sms-services/messagecloud/internal/service"
	"github.com/stretchr/testify/mock"
)

type SendService struct {
	mock.Mock
}

func (s *SendService) SendMessage(ctx context.Context, cmd service.SendMessageCommand) (*service.SendMessageResponse, error) {
	args := s.Called(ctx, cmd)
	return args.Get(0).(*service.SendMessageResponse), args.Error(1)
}
