// Package metrics exports MEFrp client call outcomes as Prometheus metrics.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/s0up4200/mefrp-go/mefrp"
)

const namespace = "mefrp"

// Collector implements mefrp.Observer.
type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

var _ mefrp.Observer = (*Collector)(nil)

// New creates the client metrics and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of API calls by endpoint and outcome",
			},
			[]string{"method", "path", "outcome"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "API call latency including decoding",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
			},
			[]string{"method", "path"},
		),
	}
}

// ObserveRequest records one finished call.
func (c *Collector) ObserveRequest(method, path string, kind mefrp.ErrorKind, elapsed time.Duration) {
	c.RequestsTotal.WithLabelValues(method, path, kind.String()).Inc()
	c.RequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// WriteText writes everything g has gathered in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
