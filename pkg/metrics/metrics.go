// Package metrics exports native call outcomes to Prometheus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/griddyn/griddyn-go/pkg/log"
)

const namespace = "griddyn"

// Status label values for calls that have no status name.
const (
	LabelUnknown = "unknown"
	LabelSkipped = "skipped"
)

// Collector counts native calls by call name and status. It implements
// log.Logger so it can sit next to other tracers in a log.MultiLogger.
type Collector struct {
	CallsTotal   *prometheus.CounterVec
	UnknownTotal *prometheus.CounterVec
	CallDuration *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them with reg. Metrics
// already registered by an earlier Collector are reused.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		CallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "native",
				Name:      "calls_total",
				Help:      "Native library calls by call name and returned status",
			},
			[]string{"call", "status"},
		),
		UnknownTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "native",
				Name:      "unknown_status_total",
				Help:      "Native calls that returned a code outside the status table",
			},
			[]string{"call"},
		),
		CallDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "native",
				Name:      "call_duration_seconds",
				Help:      "Duration of native library calls",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"call"},
		),
	}

	var err error
	if c.CallsTotal, err = register(reg, c.CallsTotal); err != nil {
		return nil, err
	}
	if c.UnknownTotal, err = register(reg, c.UnknownTotal); err != nil {
		return nil, err
	}
	if c.CallDuration, err = register(reg, c.CallDuration); err != nil {
		return nil, err
	}
	return c, nil
}

// Log records a call event.
func (c *Collector) Log(event log.Event) {
	label := LabelSkipped
	switch event.Outcome {
	case log.OutcomeSuccess, log.OutcomeFailure:
		if s, err := event.Status(); err == nil {
			label = s.String()
		} else {
			label = LabelUnknown
		}
	case log.OutcomeUnknown:
		label = LabelUnknown
		c.UnknownTotal.WithLabelValues(event.Call).Inc()
	}

	c.CallsTotal.WithLabelValues(event.Call, label).Inc()
	if event.Outcome != log.OutcomeSkipped {
		c.CallDuration.WithLabelValues(event.Call).Observe(event.Duration.Seconds())
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Compile-time interface satisfaction check.
var _ log.Logger = (*Collector)(nil)
