package webhook

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/public24-bot/internal/entity/infra"
	"max.ks1230/public24-bot/internal/entity/rates"
	"max.ks1230/public24-bot/internal/logger"
	"max.ks1230/public24-bot/internal/model/customerr"
)

const defaultMessageLimit = 20

var (
	spaceRunPattern = regexp.MustCompile(` +`)
	commaPattern    = regexp.MustCompile(`,\s*`)
)

type exchangeRates interface {
	HistoryForDate(ctx context.Context, date time.Time) (rates.ExchangeRateHistory, error)
	HistoryForDateAndCurrency(ctx context.Context, date time.Time, ccy rates.Currency) (rates.ExchangeRateHistory, error)
	CurrentRates(ctx context.Context, rateType rates.ExchangeRateType) ([]rates.CurrentExchangeRate, error)
	CurrentRatesForCurrency(ctx context.Context, rateType rates.ExchangeRateType, ccy rates.Currency) ([]rates.CurrentExchangeRate, error)
}

type locator interface {
	InfrastructureLocations(ctx context.Context, deviceType infra.DeviceType, city, address string) (infra.Infrastructure, error)
}

type mapsLinker interface {
	CoordinatesQuery(latitude, longitude string) string
}

type eventProducer interface {
	ProduceMessage(message []byte) error
}

type config interface {
	TimeZone() string
}

// Service maps incoming intents to one of three fixed workflows and
// assembles the chat-facing message list.
type Service struct {
	rates   exchangeRates
	locator locator
	maps    mapsLinker
	events  eventProducer
	loc     *time.Location
}

func NewService(exchangeRates exchangeRates, locator locator, maps mapsLinker, cfg config) *Service {
	return &Service{
		rates:   exchangeRates,
		locator: locator,
		maps:    maps,
		loc:     location(cfg.TimeZone()),
	}
}

// SetEventProducer enables fire-and-forget intent events. Without one the
// service stays silent.
func (s *Service) SetEventProducer(events eventProducer) {
	s.events = events
}

func (s *Service) Fulfill(ctx context.Context, req Request) (MessageList, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "fulfillIntent")
	defer span.Finish()

	start := time.Now()
	list, intent, err := s.dispatch(ctx, req)
	elapsed := time.Since(start)

	observeFulfillment(intent, elapsed, err != nil)
	s.produceEvent(intent, elapsed, err)
	if err != nil {
		ext.Error.Set(span, true)
		return MessageList{}, err
	}
	return list, nil
}

func (s *Service) dispatch(ctx context.Context, req Request) (MessageList, string, error) {
	intent, ok := ParseIntent(req.Intent)
	if !ok {
		return MessageList{}, req.Intent, &customerr.UnsupportedIntentError{Intent: req.Intent}
	}

	var list MessageList
	var err error
	switch intent {
	case IntentCurrentExchangeRate:
		list, err = s.currentExchangeRate(ctx, req.Parameters)
	case IntentExchangeRateHistory:
		list, err = s.exchangeRateHistory(ctx, req.Parameters)
	case IntentInfrastructureLocation:
		list, err = s.infrastructureLocation(ctx, req.Parameters)
	}
	return list, string(intent), err
}

func (s *Service) currentExchangeRate(ctx context.Context, params Params) (MessageList, error) {
	typeName := params.StringOrDefault(ParamExchangeRateType, string(rates.NonCash))
	rateType, ok := rates.ParseExchangeRateType(typeName)
	if !ok {
		return MessageList{}, &customerr.BadRequestError{Err: "unknown exchange rate type: " + typeName}
	}
	ccy, hasCcy := currencyParam(params)

	var current []rates.CurrentExchangeRate
	var err error
	if hasCcy {
		current, err = s.rates.CurrentRatesForCurrency(ctx, rateType, ccy)
	} else {
		current, err = s.rates.CurrentRates(ctx, rateType)
	}
	if err != nil {
		return MessageList{}, errors.Wrap(err, "current exchange rate")
	}

	lines := make([]string, 0, len(current))
	for _, rate := range current {
		lines = append(lines, rateDescription(rate.Currency, rate.Buy, rate.Sale))
	}

	fallback := "No exchange rate found for current date."
	if hasCcy {
		fallback = "No exchange rate found for current date and currency " + string(ccy) + "."
	}
	return MessageList{
		Header:   "Current exchange rate for " + string(rates.UAH),
		Messages: lines,
		Fallback: fallback,
	}, nil
}

func (s *Service) exchangeRateHistory(ctx context.Context, params Params) (MessageList, error) {
	date, err := params.Date(ParamDate, time.Now().In(s.loc))
	if err != nil {
		return MessageList{}, err
	}
	day := now.New(date).BeginningOfDay()
	isoDate := day.Format(isoDateLayout)
	ccy, hasCcy := currencyParam(params)

	logger.Debug("retrieving exchange rate history",
		zap.String("date", isoDate), zap.String("ccy", string(ccy)))

	var history rates.ExchangeRateHistory
	if hasCcy {
		history, err = s.rates.HistoryForDateAndCurrency(ctx, day, ccy)
	} else {
		history, err = s.rates.HistoryForDate(ctx, day)
	}
	if err != nil {
		return MessageList{}, errors.Wrap(err, "exchange rate history")
	}

	lines := make([]string, 0, len(history.ExchangeRates))
	for _, rate := range history.ExchangeRates {
		purchase, _ := rate.Purchase()
		sale, _ := rate.Sale()
		lines = append(lines, rateDescription(rate.Currency, purchase, sale))
	}

	fallback := "No exchange rate history found for date " + isoDate + "."
	if hasCcy {
		fallback = "No exchange rate history found for date " + isoDate +
			" and currency " + string(ccy) + "."
	}
	return MessageList{
		Header:   "Exchange rate for " + string(rates.UAH) + " on " + isoDate,
		Messages: lines,
		Fallback: fallback,
	}, nil
}

func (s *Service) infrastructureLocation(ctx context.Context, params Params) (MessageList, error) {
	deviceType, ok := infra.ParseDeviceType(params.String(ParamInfrastructureType))
	if !ok {
		return MessageList{}, &customerr.BadRequestError{Err: "no supported device type found in request"}
	}
	city := params.String(ParamCity)
	address := params.String(ParamAddress)
	limit := params.Int(ParamLimit, defaultMessageLimit)

	logger.Debug("retrieving infrastructure locations",
		zap.String("deviceType", string(deviceType)),
		zap.String("city", city), zap.String("address", address))

	locations, err := s.locator.InfrastructureLocations(ctx, deviceType, city, address)
	if err != nil {
		return MessageList{}, errors.Wrap(err, "infrastructure location")
	}

	devices := locations.Devices
	if limit >= 0 && len(devices) > limit {
		devices = devices[:limit]
	}

	links := make(map[string]string, len(devices))
	for i, device := range devices {
		label := strconv.Itoa(i+1) + ": " + normalizeAddress(device.FullAddressEn)
		links[label] = s.maps.CoordinatesQuery(device.Latitude, device.Longitude)
	}

	locationDescription := city
	if address != "" {
		locationDescription += ", " + address
	}
	return MessageList{
		Header:   string(deviceType) + " locations in " + locationDescription,
		Links:    links,
		Fallback: "No infrastructure found for location: " + locationDescription,
	}, nil
}

// currencyParam reads the optional ccy parameter. Unresolvable names are
// treated as absent, not as an error.
func currencyParam(params Params) (rates.Currency, bool) {
	name := params.String(ParamCurrency)
	if name == "" {
		return "", false
	}
	return rates.ParseCurrency(name)
}

func rateDescription(currencyCode string, purchase, sale float64) string {
	return fmt.Sprintf("%s: purchase = %s sale = %s",
		currencyCode, formatRate(purchase), formatRate(sale))
}

func formatRate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// normalizeAddress collapses runs of spaces and makes sure every comma is
// followed by exactly one space.
func normalizeAddress(address string) string {
	address = spaceRunPattern.ReplaceAllString(address, " ")
	return commaPattern.ReplaceAllString(address, ", ")
}

func location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
