package rates

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	entity "max.ks1230/public24-bot/internal/entity/rates"
	"max.ks1230/public24-bot/internal/logger"
)

const dateKeyLayout = "2006-01-02"

type ratesProvider interface {
	ExchangeRatesForDate(ctx context.Context, date time.Time) (entity.ExchangeRateHistory, error)
	CurrentRates(ctx context.Context, rateType entity.ExchangeRateType) ([]entity.CurrentExchangeRate, error)
}

type historyCache interface {
	GetHistory(date string) ([]byte, error)
	CacheHistory(date string, payload []byte) error
}

// Service memoizes archive lookups per calendar date for the process
// lifetime. History records are immutable once published, so entries are
// never evicted. Live quotes are never cached.
type Service struct {
	provider ratesProvider
	remote   historyCache

	mu      sync.RWMutex
	history map[string]entity.ExchangeRateHistory
}

// NewService creates a rates service. remote is an optional second-level
// cache of marshaled history records; pass nil to run without one.
func NewService(provider ratesProvider, remote historyCache) *Service {
	return &Service{
		provider: provider,
		remote:   remote,
		history:  make(map[string]entity.ExchangeRateHistory),
	}
}

// HistoryForDate returns the exchange rate history for the calendar day of
// date. The first call for a day fetches upstream, later calls are served
// from memory. The fetch happens outside the lock: two goroutines racing
// on the same unseen date may both fetch, last store wins.
func (s *Service) HistoryForDate(ctx context.Context, date time.Time) (entity.ExchangeRateHistory, error) {
	day := now.New(date).BeginningOfDay()
	key := day.Format(dateKeyLayout)

	s.mu.RLock()
	history, ok := s.history[key]
	s.mu.RUnlock()
	if ok {
		return history, nil
	}

	history, err := s.lookup(ctx, day, key)
	if err != nil {
		return entity.ExchangeRateHistory{}, errors.Wrap(err, "history for date")
	}

	s.mu.Lock()
	s.history[key] = history
	s.mu.Unlock()

	return history, nil
}

// HistoryForDateAndCurrency returns a copy of the day's history with the
// rate list narrowed to the matching currency, possibly empty. The
// narrowed copy is never cached.
func (s *Service) HistoryForDateAndCurrency(ctx context.Context, date time.Time, ccy entity.Currency) (entity.ExchangeRateHistory, error) {
	history, err := s.HistoryForDate(ctx, date)
	if err != nil {
		return entity.ExchangeRateHistory{}, err
	}

	filtered := make([]entity.ExchangeRateHistoryCurrency, 0, 1)
	for _, rate := range history.ExchangeRates {
		if rate.Currency == string(ccy) {
			filtered = append(filtered, rate)
		}
	}
	history.ExchangeRates = filtered
	return history, nil
}

func (s *Service) CurrentRates(ctx context.Context, rateType entity.ExchangeRateType) ([]entity.CurrentExchangeRate, error) {
	current, err := s.provider.CurrentRates(ctx, rateType)
	if err != nil {
		return nil, errors.Wrap(err, "current rates")
	}
	return current, nil
}

// CurrentRatesForCurrency narrows the live quote list to the first entry
// matching the currency, returning an empty list when none match.
func (s *Service) CurrentRatesForCurrency(ctx context.Context, rateType entity.ExchangeRateType, ccy entity.Currency) ([]entity.CurrentExchangeRate, error) {
	current, err := s.CurrentRates(ctx, rateType)
	if err != nil {
		return nil, err
	}
	for _, rate := range current {
		if rate.Currency == string(ccy) {
			return []entity.CurrentExchangeRate{rate}, nil
		}
	}
	return []entity.CurrentExchangeRate{}, nil
}

// lookup consults the remote cache before going upstream. Remote errors
// degrade to a plain fetch.
func (s *Service) lookup(ctx context.Context, day time.Time, key string) (entity.ExchangeRateHistory, error) {
	if s.remote != nil {
		if payload, err := s.remote.GetHistory(key); err == nil {
			var history entity.ExchangeRateHistory
			if err = json.Unmarshal(payload, &history); err == nil {
				return history, nil
			}
			logger.Debug("cannot unmarshal cached history", zap.Error(err), zap.String("date", key))
		}
	}

	history, err := s.provider.ExchangeRatesForDate(ctx, day)
	if err != nil {
		return entity.ExchangeRateHistory{}, err
	}

	if s.remote != nil {
		payload, err := json.Marshal(history)
		if err == nil {
			err = s.remote.CacheHistory(key, payload)
		}
		if err != nil {
			logger.Error("failed to cache history", zap.Error(err), zap.String("date", key))
		}
	}
	return history, nil
}
