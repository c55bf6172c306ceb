package messages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"max.ks1230/public24-bot/internal/model/customerr"
	"max.ks1230/public24-bot/internal/model/webhook"
)

type senderStub struct {
	lastText   string
	lastUserID int64
}

func (s *senderStub) SendMessage(text string, userID int64) error {
	s.lastText = text
	s.lastUserID = userID
	return nil
}

type fulfillerStub struct {
	lastRequest webhook.Request
	list        webhook.MessageList
	err         error
}

func (f *fulfillerStub) Fulfill(_ context.Context, req webhook.Request) (webhook.MessageList, error) {
	f.lastRequest = req
	return f.list, f.err
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	sender := &senderStub{}
	model := NewService(sender, &fulfillerStub{})

	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		UserID: 123,
	})

	assert.NoError(t, err)
	assert.Equal(t, helloMessage, sender.lastText)
	assert.Equal(t, int64(123), sender.lastUserID)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	sender := &senderStub{}
	model := NewService(sender, &fulfillerStub{})

	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		UserID: 123,
	})

	assert.NoError(t, err)
	assert.Equal(t, dontUnderstandMessage, sender.lastText)
}

func Test_OnRatesCommand_ShouldFulfillCurrentExchangeRate(t *testing.T) {
	sender := &senderStub{}
	fulfiller := &fulfillerStub{list: webhook.MessageList{
		Header:   "Current exchange rate for UAH",
		Messages: []string{"USD: purchase = 27.25 sale = 27.65"},
		Fallback: "No exchange rate found for current date and currency USD.",
	}}
	model := NewService(sender, fulfiller)

	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/rates usd cash",
		UserID: 123,
	})

	assert.NoError(t, err)
	assert.Equal(t, string(webhook.IntentCurrentExchangeRate), fulfiller.lastRequest.Intent)
	assert.Equal(t, "USD", fulfiller.lastRequest.Parameters[webhook.ParamCurrency])
	assert.Equal(t, "cash", fulfiller.lastRequest.Parameters[webhook.ParamExchangeRateType])
	assert.Equal(t, "Current exchange rate for UAH\nUSD: purchase = 27.25 sale = 27.65", sender.lastText)
}

func Test_OnHistoryCommand_ShouldPassDateAndCurrency(t *testing.T) {
	sender := &senderStub{}
	fulfiller := &fulfillerStub{list: webhook.MessageList{
		Header:   "Exchange rate for UAH on 2023-01-15",
		Fallback: "No exchange rate history found for date 2023-01-15.",
	}}
	model := NewService(sender, fulfiller)

	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/history 2023-01-15 eur",
		UserID: 123,
	})

	assert.NoError(t, err)
	assert.Equal(t, string(webhook.IntentExchangeRateHistory), fulfiller.lastRequest.Intent)
	assert.Equal(t, "2023-01-15", fulfiller.lastRequest.Parameters[webhook.ParamDate])
	assert.Equal(t, "EUR", fulfiller.lastRequest.Parameters[webhook.ParamCurrency])
	assert.Equal(t, "No exchange rate history found for date 2023-01-15.", sender.lastText)
}

func Test_OnAtmCommand_ShouldSplitCityAndAddress(t *testing.T) {
	sender := &senderStub{}
	fulfiller := &fulfillerStub{list: webhook.MessageList{
		Header: "ATM locations in Kyiv, Khreshchatyk",
		Links: map[string]string{
			"2: Main st. 2": "maps:2",
			"1: Main st. 1": "maps:1",
		},
		Fallback: "No infrastructure found for location: Kyiv, Khreshchatyk",
	}}
	model := NewService(sender, fulfiller)

	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/atm Kyiv, Khreshchatyk",
		UserID: 123,
	})

	assert.NoError(t, err)
	assert.Equal(t, string(webhook.IntentInfrastructureLocation), fulfiller.lastRequest.Intent)
	assert.Equal(t, "ATM", fulfiller.lastRequest.Parameters[webhook.ParamInfrastructureType])
	assert.Equal(t, "Kyiv", fulfiller.lastRequest.Parameters[webhook.ParamCity])
	assert.Equal(t, "Khreshchatyk", fulfiller.lastRequest.Parameters[webhook.ParamAddress])
	assert.Equal(t,
		"ATM locations in Kyiv, Khreshchatyk\n1: Main st. 1\nmaps:1\n2: Main st. 2\nmaps:2",
		sender.lastText)
}

func Test_OnAtmCommandWithoutCity_ShouldAskForCity(t *testing.T) {
	sender := &senderStub{}
	model := NewService(sender, &fulfillerStub{})

	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/atm",
		UserID: 123,
	})

	assert.NoError(t, err)
	assert.Equal(t, missingCityMessage, sender.lastText)
}

func Test_OnBadRequestFromFulfiller_ShouldAnswerWithReason(t *testing.T) {
	sender := &senderStub{}
	fulfiller := &fulfillerStub{err: &customerr.BadRequestError{Err: "cannot read date parameter: tomorrow"}}
	model := NewService(sender, fulfiller)

	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/history tomorrow",
		UserID: 123,
	})

	assert.NoError(t, err)
	assert.Equal(t, "cannot read date parameter: tomorrow", sender.lastText)
}
