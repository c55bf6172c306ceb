package messages

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"

	"max.ks1230/public24-bot/internal/model/customerr"
)

const somethingWrongMessage = "Sorry, something wrong happened... Try later"

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, userID int64) (string, error)
}

type Service struct {
	tgClient messageSender
	handler  MessageHandler
}

func NewService(tgClient messageSender, fulfiller intentFulfiller) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(fulfiller),
	}
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	err := s.handle(ctx, msg)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		var badRequest *customerr.BadRequestError
		if errors.As(err, &badRequest) {
			return s.tgClient.SendMessage(badRequest.Err, msg.UserID)
		}
		_ = s.tgClient.SendMessage(somethingWrongMessage, msg.UserID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.UserID)
}
