package rates

// ExchangeRateHistory is the archive response of the bank API for one
// calendar date. Immutable once fetched.
type ExchangeRateHistory struct {
	Date            string                        `json:"date"`
	Bank            string                        `json:"bank"`
	BaseCurrency    int                           `json:"baseCurrency"`
	BaseCurrencyLit string                        `json:"baseCurrencyLit"`
	ExchangeRates   []ExchangeRateHistoryCurrency `json:"exchangeRate"`
}

// ExchangeRateHistoryCurrency carries two tiers of rates: the commercial
// one and the national bank ("NB") fallback. At least one of each pair is
// present in API responses.
type ExchangeRateHistoryCurrency struct {
	BaseCurrency   string   `json:"baseCurrency"`
	Currency       string   `json:"currency"`
	SaleRateNB     *float64 `json:"saleRateNB,omitempty"`
	PurchaseRateNB *float64 `json:"purchaseRateNB,omitempty"`
	SaleRate       *float64 `json:"saleRate,omitempty"`
	PurchaseRate   *float64 `json:"purchaseRate,omitempty"`
}

// Purchase resolves the purchase rate, preferring the commercial rate and
// falling back to the national bank one.
func (c ExchangeRateHistoryCurrency) Purchase() (float64, bool) {
	return resolveRate(c.PurchaseRate, c.PurchaseRateNB)
}

// Sale resolves the sale rate with the same precedence as Purchase.
func (c ExchangeRateHistoryCurrency) Sale() (float64, bool) {
	return resolveRate(c.SaleRate, c.SaleRateNB)
}

func resolveRate(primary, fallback *float64) (float64, bool) {
	if primary != nil {
		return *primary, true
	}
	if fallback != nil {
		return *fallback, true
	}
	return 0, false
}

// CurrentExchangeRate is a single live quote. The API encodes the values
// as JSON strings.
type CurrentExchangeRate struct {
	Currency     string  `json:"ccy"`
	BaseCurrency string  `json:"base_ccy"`
	Buy          float64 `json:"buy,string"`
	Sale         float64 `json:"sale,string"`
}
