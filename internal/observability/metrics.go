package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Datagram outcomes recorded by the server loop.
const (
	OutcomeServed         = "served"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeEncodeOverflow = "encode_overflow"
	OutcomeSendFailed     = "send_failed"
	OutcomeReadFailed     = "read_failed"
	OutcomeRateLimited    = "rate_limited"
)

var (
	registerOnce sync.Once

	serverDatagrams = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dtclock",
			Subsystem: "server",
			Name:      "datagrams_total",
			Help:      "Datagrams handled by the server, by language channel and outcome.",
		},
		[]string{"language", "outcome"},
	)
	serverResponseBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dtclock",
			Subsystem: "server",
			Name:      "response_bytes",
			Help:      "Size of dt-response packets sent.",
			Buckets:   prometheus.LinearBuckets(13, 16, 17),
		},
		[]string{"language"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(serverDatagrams, serverResponseBytes)
	})
}

func RecordDatagram(language, outcome string) {
	RegisterMetrics()
	serverDatagrams.WithLabelValues(language, outcome).Inc()
}

func RecordResponse(language string, size int) {
	RegisterMetrics()
	serverDatagrams.WithLabelValues(language, OutcomeServed).Inc()
	serverResponseBytes.WithLabelValues(language).Observe(float64(size))
}

// Handler exposes the default registry for scraping.
func Handler() http.Handler {
	RegisterMetrics()
	return promhttp.Handler()
}
