package gmaps

import "net/url"

const searchURL = "https://www.google.com/maps/search/?api=1&query="

// Maps builds Google Maps queries for coordinates.
type Maps struct{}

func New() *Maps {
	return &Maps{}
}

func (m *Maps) CoordinatesQuery(latitude, longitude string) string {
	return searchURL + url.QueryEscape(latitude+","+longitude)
}
