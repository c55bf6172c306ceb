package webhook

import "strings"

// Intent is a named category of user request recognized by the
// conversational layer.
type Intent string

const (
	IntentCurrentExchangeRate    Intent = "CURRENT_EXCHANGE_RATE"
	IntentExchangeRateHistory    Intent = "EXCHANGE_RATE_HISTORY"
	IntentInfrastructureLocation Intent = "INFRASTRUCTURE_LOCATION"
)

var intents = []Intent{
	IntentCurrentExchangeRate,
	IntentExchangeRateHistory,
	IntentInfrastructureLocation,
}

// ParseIntent resolves a free-text intent name, tolerating case and
// space/hyphen separators.
func ParseIntent(name string) (Intent, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	for _, intent := range intents {
		if string(intent) == normalized {
			return intent, true
		}
	}
	return "", false
}

// Names of the parameters delivered in the request parameter bag. They
// are part of the transport contract with the conversational layer.
const (
	ParamDate               = "date"
	ParamCurrency           = "ccy"
	ParamExchangeRateType   = "exchange-rate-type"
	ParamInfrastructureType = "infrastructure-type"
	ParamCity               = "city"
	ParamAddress            = "address"
	ParamLimit              = "limit"
)
