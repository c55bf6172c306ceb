package gmaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnCoordinatesQuery_ShouldBuildSearchLink(t *testing.T) {
	maps := New()

	link := maps.CoordinatesQuery("50.45", "30.52")

	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=50.45%2C30.52", link)
}
