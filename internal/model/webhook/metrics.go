package webhook

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramFulfillmentTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "public24",
		Subsystem: "webhook",
		Name:      "histogram_fulfillment_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"intent", "error"},
)

func observeFulfillment(intent string, elapsed time.Duration, err bool) {
	histogramFulfillmentTime.
		WithLabelValues(intent, strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}
