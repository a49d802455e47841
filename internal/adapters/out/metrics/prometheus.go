// Package metrics records dispatch telemetry in Prometheus collectors.
package metrics

import (
	"courierdispatch/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

// PromDispatchMetrics implements ports.DispatchMetrics.
type PromDispatchMetrics struct {
	dispatches *prometheus.CounterVec
	eta        *prometheus.HistogramVec
	deliveries prometheus.Counter
}

// NewPromDispatchMetrics registers the collectors on reg, or on the default registerer
// when reg is nil. Collectors that are already registered are reused.
func NewPromDispatchMetrics(reg prometheus.Registerer) (*PromDispatchMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	dispatches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "courier_dispatch_attempts_total",
		Help: "Assignment attempts by outcome",
	}, []string{"outcome"})
	eta := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "courier_dispatch_eta_ticks",
		Help:    "Estimated ticks for the chosen courier to reach the order",
		Buckets: []float64{1, 2, 3, 5, 8, 13, 18},
	}, []string{"transport"})
	deliveries := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "courier_deliveries_total",
		Help: "Orders completed by couriers reaching their location",
	})

	var err error
	if dispatches, err = register(reg, dispatches); err != nil {
		return nil, err
	}
	if eta, err = register(reg, eta); err != nil {
		return nil, err
	}
	if deliveries, err = register(reg, deliveries); err != nil {
		return nil, err
	}

	return &PromDispatchMetrics{dispatches: dispatches, eta: eta, deliveries: deliveries}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, collector C) (C, error) {
	if err := reg.Register(collector); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return collector, err
		}
		existing, ok := are.ExistingCollector.(C)
		if !ok {
			return collector, err
		}
		return existing, nil
	}
	return collector, nil
}

// ObserveDispatch counts one assignment attempt under its outcome label.
func (m *PromDispatchMetrics) ObserveDispatch(outcome ports.DispatchOutcome) {
	m.dispatches.WithLabelValues(string(outcome)).Inc()
}

// ObserveETA records the winner's ETA in ticks, labelled by transport name.
func (m *PromDispatchMetrics) ObserveETA(transport string, ticks float64) {
	m.eta.WithLabelValues(transport).Observe(ticks)
}

// ObserveDelivery counts one completed order.
func (m *PromDispatchMetrics) ObserveDelivery() {
	m.deliveries.Inc()
}
