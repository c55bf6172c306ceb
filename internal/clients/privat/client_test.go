package privat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"max.ks1230/public24-bot/internal/entity/infra"
	"max.ks1230/public24-bot/internal/entity/rates"
)

type cfgStub struct {
	url string
}

func (c cfgStub) URL() string {
	return c.url
}

func (c cfgStub) Format() string {
	return "json"
}

func (c cfgStub) DateLayout() string {
	return "02.01.2006"
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(cfgStub{url: srv.URL})
}

func Test_OnExchangeRatesForDate_ShouldSendFormattedDate(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exchange_rates", r.URL.Path)
		query, _ = url.ParseQuery(r.URL.RawQuery)
		_, _ = w.Write([]byte(`{
			"date": "15.01.2023",
			"bank": "PB",
			"baseCurrency": 980,
			"baseCurrencyLit": "UAH",
			"exchangeRate": [
				{"currency": "USD", "purchaseRateNB": 7.5, "saleRateNB": 7.9}
			]
		}`))
	})

	history, err := client.ExchangeRatesForDate(context.Background(),
		time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.True(t, query.Has("json"))
	assert.Equal(t, "15.01.2023", query.Get("date"))
	assert.Equal(t, "UAH", history.BaseCurrencyLit)
	assert.Len(t, history.ExchangeRates, 1)

	rate := history.ExchangeRates[0]
	assert.Nil(t, rate.PurchaseRate)
	purchase, ok := rate.Purchase()
	assert.True(t, ok)
	assert.Equal(t, 7.5, purchase)
}

func Test_OnCurrentRates_ShouldQuerySelectedFeed(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pubinfo", r.URL.Path)
		query, _ = url.ParseQuery(r.URL.RawQuery)
		_, _ = w.Write([]byte(`[
			{"ccy": "USD", "base_ccy": "UAH", "buy": "27.25", "sale": "27.65"}
		]`))
	})

	current, err := client.CurrentRates(context.Background(), rates.Cash)

	assert.NoError(t, err)
	assert.True(t, query.Has("exchange"))
	assert.Equal(t, "5", query.Get("coursid"))
	assert.Len(t, current, 1)
	assert.Equal(t, 27.25, current[0].Buy)
	assert.Equal(t, 27.65, current[0].Sale)
}

func Test_OnInfrastructureLocations_ShouldNormalizeQueryParams(t *testing.T) {
	var query url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/infrastructure", r.URL.Path)
		query, _ = url.ParseQuery(r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"devices": [
			{"type": "ATM", "fullAddressEn": "Main st. 1", "latitude": "50.45", "longitude": "30.52"}
		]}`))
	})

	locations, err := client.InfrastructureLocations(context.Background(),
		infra.ATM, "  Kyiv   City ", "")

	assert.NoError(t, err)
	assert.True(t, query.Has("atm"))
	assert.Equal(t, "Kyiv City", query.Get("city"))
	assert.Equal(t, "", query.Get("address"))
	assert.Len(t, locations.Devices, 1)
	assert.Equal(t, "50.45", locations.Devices[0].Latitude)
}

func Test_OnServerError_ShouldFail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CurrentRates(context.Background(), rates.NonCash)
	assert.Error(t, err)
}
