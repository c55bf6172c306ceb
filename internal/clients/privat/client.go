package privat

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/public24-bot/internal/entity/infra"
	"max.ks1230/public24-bot/internal/entity/rates"
	"max.ks1230/public24-bot/internal/logger"
)

const (
	exchangeRatesPath  = "/exchange_rates"
	currentRatesPath   = "/pubinfo"
	infrastructurePath = "/infrastructure"

	dateParam    = "date"
	courseParam  = "coursid"
	cityParam    = "city"
	addressParam = "address"

	exchangeFlag = "exchange"
)

type config interface {
	URL() string
	Format() string
	DateLayout() string
}

type Client struct {
	baseURL    string
	formatFlag string
	dateLayout string
	httpClient *http.Client
}

func New(cfg config) *Client {
	return &Client{
		baseURL:    cfg.URL(),
		formatFlag: cfg.Format(),
		dateLayout: cfg.DateLayout(),
		httpClient: &http.Client{},
	}
}

func (c *Client) ExchangeRatesForDate(ctx context.Context, date time.Time) (rates.ExchangeRateHistory, error) {
	params := url.Values{}
	params.Set(dateParam, date.Format(c.dateLayout))

	var history rates.ExchangeRateHistory
	err := c.getJSON(ctx, exchangeRatesPath, nil, params, &history)
	if err != nil {
		return rates.ExchangeRateHistory{}, errors.Wrap(err, "get exchange rates for date")
	}
	return history, nil
}

func (c *Client) CurrentRates(ctx context.Context, rateType rates.ExchangeRateType) ([]rates.CurrentExchangeRate, error) {
	params := url.Values{}
	params.Set(courseParam, strconv.Itoa(rateType.CourseID()))

	var current []rates.CurrentExchangeRate
	err := c.getJSON(ctx, currentRatesPath, []string{exchangeFlag}, params, &current)
	if err != nil {
		return nil, errors.Wrap(err, "get current rates")
	}
	return current, nil
}

func (c *Client) InfrastructureLocations(ctx context.Context, deviceType infra.DeviceType, city, address string) (infra.Infrastructure, error) {
	params := url.Values{}
	params.Set(cityParam, normalizeQueryParam(city))
	params.Set(addressParam, normalizeQueryParam(address))

	var locations infra.Infrastructure
	err := c.getJSON(ctx, infrastructurePath, []string{deviceType.QueryParam()}, params, &locations)
	if err != nil {
		return infra.Infrastructure{}, errors.Wrap(err, "get infrastructure locations")
	}
	return locations, nil
}

// getJSON issues a GET request and decodes the body. Bare flags are query
// tokens without a value, the way the API selects format and feed.
func (c *Client) getJSON(ctx context.Context, path string, flags []string, params url.Values, out interface{}) error {
	reqURL := c.buildURL(path, flags, params)
	logger.Debug("GET request to p24 api", zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d from p24 api", res.StatusCode)
	}

	err = json.Unmarshal(body, out)
	if err != nil {
		return errors.Wrap(err, "unmarshalling response")
	}
	return nil
}

func (c *Client) buildURL(path string, flags []string, params url.Values) string {
	query := make([]string, 0, len(flags)+2)
	query = append(query, c.formatFlag)
	query = append(query, flags...)
	if encoded := params.Encode(); encoded != "" {
		query = append(query, encoded)
	}
	return c.baseURL + path + "?" + strings.Join(query, "&")
}

// normalizeQueryParam trims the value and collapses internal runs of
// spaces to a single space.
func normalizeQueryParam(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
