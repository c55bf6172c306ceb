package webhook

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"max.ks1230/public24-bot/internal/model/customerr"
)

func Test_OnAbsentOrBlankParam_ShouldResolveToDefault(t *testing.T) {
	params := Params{ParamCity: "  ", ParamAddress: " Khreshchatyk "}

	assert.Equal(t, "", params.String(ParamCity))
	assert.Equal(t, "Khreshchatyk", params.String(ParamAddress))
	assert.Equal(t, "non-cash", params.StringOrDefault(ParamExchangeRateType, "non-cash"))
}

func Test_OnIntParam_ShouldFallBackOnGarbage(t *testing.T) {
	params := Params{ParamLimit: "7"}
	assert.Equal(t, 7, params.Int(ParamLimit, 20))

	params[ParamLimit] = "many"
	assert.Equal(t, 20, params.Int(ParamLimit, 20))

	assert.Equal(t, 20, Params{}.Int(ParamLimit, 20))
}

func Test_OnDateParam_ShouldParseISOOrDefault(t *testing.T) {
	def := time.Date(2023, 1, 20, 12, 0, 0, 0, time.UTC)

	d, err := Params{ParamDate: "2023-01-15"}.Date(ParamDate, def)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = Params{}.Date(ParamDate, def)
	assert.NoError(t, err)
	assert.Equal(t, def, d)
}

func Test_OnMalformedDateParam_ShouldFailWithBadRequest(t *testing.T) {
	_, err := Params{ParamDate: "tomorrow"}.Date(ParamDate, time.Now())

	var badRequest *customerr.BadRequestError
	assert.True(t, errors.As(err, &badRequest))
}
