package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// Completer sends one prompt to the completion API and returns the reply text.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

type ChatService struct {
	Completer Completer
	Logger    *logrus.Logger
}

// NewChatService takes a nil completer when no API key is configured.
func NewChatService(c Completer, logger *logrus.Logger) *ChatService {
	return &ChatService{Completer: c, Logger: logger}
}

// Relay forwards message upstream. There is no retry, streaming or history.
func (s *ChatService) Relay(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", newError(KindBadRequest, MsgNoMessage, nil)
	}
	if s.Completer == nil {
		return "", newError(KindUnconfigured, MsgCompletionNoKey, nil)
	}

	reply, err := s.Completer.Complete(ctx, message)
	if err != nil {
		chatFailed.Add(1)
		if s.Logger != nil {
			s.Logger.WithError(err).Error("chat completion failed")
		}
		return "", newError(KindUpstream, MsgServerError, err)
	}
	chatRelayed.Add(1)
	return reply, nil
}
