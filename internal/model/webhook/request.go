package webhook

import (
	"strconv"
	"strings"
	"time"

	"max.ks1230/public24-bot/internal/model/customerr"
)

const isoDateLayout = "2006-01-02"

// Request is one fulfillment request: an intent name plus a bag of named
// parameters.
type Request struct {
	Intent     string `json:"intent"`
	Parameters Params `json:"parameters"`
}

// Params is the caller-supplied parameter bag. Accessors are null-safe:
// absent or blank values resolve to the default instead of failing.
type Params map[string]string

func (p Params) String(name string) string {
	return strings.TrimSpace(p[name])
}

func (p Params) StringOrDefault(name, def string) string {
	if v := p.String(name); v != "" {
		return v
	}
	return def
}

func (p Params) Int(name string, def int) int {
	v := p.String(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Date reads an ISO date parameter. Absent resolves to def; a malformed
// value is a caller error.
func (p Params) Date(name string, def time.Time) (time.Time, error) {
	v := p.String(name)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseInLocation(isoDateLayout, v, def.Location())
	if err != nil {
		return time.Time{}, &customerr.BadRequestError{Err: "cannot read date parameter: " + v}
	}
	return d, nil
}
