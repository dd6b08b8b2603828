package metrics

import "github.com/prometheus/client_golang/prometheus"

// Parse Prometheus metrics.
var (
	ParsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "qparse",
			Name:      "parses_total",
			Help:      "Total number of parse operations by outcome",
		},
		[]string{"intent", "urgency", "budget"},
	)

	ParseDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "qparse",
			Name:      "parse_duration_seconds",
			Help:      "Parse pipeline duration in seconds",
			Buckets:   []float64{0.000005, 0.00001, 0.000025, 0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025},
		},
	)
)

var parseMetricsRegistered bool

// RegisterParseMetrics registers Prometheus parse metrics. Must be called once from main.
func RegisterParseMetrics() {
	if parseMetricsRegistered {
		return
	}
	prometheus.MustRegister(ParsesTotal)
	prometheus.MustRegister(ParseDuration)
	parseMetricsRegistered = true
}
