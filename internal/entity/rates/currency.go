package rates

import "strings"

type Currency string

const (
	UAH Currency = "UAH"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	CHF Currency = "CHF"
	PLZ Currency = "PLZ"
	RUB Currency = "RUB"
)

var Currencies = []Currency{UAH, USD, EUR, GBP, CHF, PLZ, RUB}

// ParseCurrency resolves free text to a known currency, case-insensitively.
func ParseCurrency(name string) (Currency, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, ccy := range Currencies {
		if string(ccy) == name {
			return ccy, true
		}
	}
	return "", false
}
