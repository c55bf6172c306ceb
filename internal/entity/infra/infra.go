package infra

import "strings"

// Infrastructure is the device listing response of the bank API.
type Infrastructure struct {
	City    string   `json:"city"`
	Address string   `json:"address"`
	Devices []Device `json:"devices"`
}

// Device is a single ATM or self-service terminal. Coordinates come from
// the API as strings and are passed through verbatim.
type Device struct {
	TypeCode      string `json:"type"`
	FullAddressEn string `json:"fullAddressEn"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
}

// DeviceType is a kind of bank infrastructure the API can list.
type DeviceType string

const (
	ATM DeviceType = "ATM"
	TSO DeviceType = "TSO"
)

var DeviceTypes = []DeviceType{ATM, TSO}

func ParseDeviceType(name string) (DeviceType, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, t := range DeviceTypes {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// QueryParam is the bare query flag selecting this device type.
func (t DeviceType) QueryParam() string {
	return strings.ToLower(string(t))
}
