package messages

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"max.ks1230/public24-bot/internal/entity/infra"
	"max.ks1230/public24-bot/internal/entity/rates"
	"max.ks1230/public24-bot/internal/model/webhook"
)

const (
	helloMessage = "Hello! I am Public24 bot 🤖\n" +
		"Try /rates, /history or /atm Kyiv"
	dontUnderstandMessage = "I don't understand you :("
	loveToTalkMessage     = "I would love to talk about it more!"
	missingCityMessage    = "Tell me the city, like: /atm Kyiv, Khreshchatyk"
)

const (
	startCommand   = "/start"
	ratesCommand   = "/rates"
	historyCommand = "/history"
	atmCommand     = "/atm"
	tsoCommand     = "/tso"
)

type intentFulfiller interface {
	Fulfill(ctx context.Context, req webhook.Request) (webhook.MessageList, error)
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	fulfiller   intentFulfiller
}

func newHandler(fulfiller intentFulfiller) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		fulfiller:   fulfiller,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", 2)

	if len(split) == 2 {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[ratesCommand] = s.handleRates
	m[historyCommand] = s.handleHistory
	m[atmCommand] = s.deviceHandler(infra.ATM)
	m[tsoCommand] = s.deviceHandler(infra.TSO)

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

// handleRates answers with live quotes. Arguments may name a currency and
// a rate type in any order, like "/rates usd cash".
func (s *HandlerService) handleRates(ctx context.Context, arg string, _ int64) (string, error) {
	params := webhook.Params{}
	for _, field := range strings.Fields(arg) {
		if ccy, ok := rates.ParseCurrency(field); ok {
			params[webhook.ParamCurrency] = string(ccy)
			continue
		}
		if rateType, ok := rates.ParseExchangeRateType(field); ok {
			params[webhook.ParamExchangeRateType] = string(rateType)
		}
	}
	return s.fulfill(ctx, webhook.IntentCurrentExchangeRate, params)
}

// handleHistory answers with archive rates, like "/history 2023-01-15 usd".
func (s *HandlerService) handleHistory(ctx context.Context, arg string, _ int64) (string, error) {
	params := webhook.Params{}
	for _, field := range strings.Fields(arg) {
		if _, err := time.Parse("2006-01-02", field); err == nil {
			params[webhook.ParamDate] = field
			continue
		}
		if ccy, ok := rates.ParseCurrency(field); ok {
			params[webhook.ParamCurrency] = string(ccy)
		}
	}
	return s.fulfill(ctx, webhook.IntentExchangeRateHistory, params)
}

// deviceHandler builds a locations handler for one device type. The
// argument is "<city>[, <address>]".
func (s *HandlerService) deviceHandler(deviceType infra.DeviceType) handler {
	return func(ctx context.Context, arg string, _ int64) (string, error) {
		city, address := splitLocation(arg)
		if city == "" {
			return missingCityMessage, nil
		}
		params := webhook.Params{
			webhook.ParamInfrastructureType: string(deviceType),
			webhook.ParamCity:               city,
			webhook.ParamAddress:            address,
		}
		return s.fulfill(ctx, webhook.IntentInfrastructureLocation, params)
	}
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) fulfill(ctx context.Context, intent webhook.Intent, params webhook.Params) (string, error) {
	list, err := s.fulfiller.Fulfill(ctx, webhook.Request{
		Intent:     string(intent),
		Parameters: params,
	})
	if err != nil {
		return "", errors.Wrap(err, "fulfill command")
	}
	return renderMessageList(list), nil
}

func splitLocation(arg string) (city, address string) {
	city, address, _ = strings.Cut(arg, ",")
	return strings.TrimSpace(city), strings.TrimSpace(address)
}
