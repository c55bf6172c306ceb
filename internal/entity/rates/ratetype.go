package rates

import "strings"

// ExchangeRateType selects one of the two live-quote feeds of the bank API.
type ExchangeRateType string

const (
	Cash    ExchangeRateType = "cash"
	NonCash ExchangeRateType = "non-cash"
)

// CourseID is the feed identifier the API expects in the coursid parameter.
func (t ExchangeRateType) CourseID() int {
	if t == Cash {
		return 5
	}
	return 11
}

func ParseExchangeRateType(name string) (ExchangeRateType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Cash):
		return Cash, true
	case string(NonCash):
		return NonCash, true
	}
	return "", false
}
