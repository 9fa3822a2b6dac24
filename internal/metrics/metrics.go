// Package metrics exposes Prometheus metrics for ad surface activity.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the ad surface Prometheus collectors.
type Metrics struct {
	ContainersCreated   *prometheus.CounterVec
	ContainersActive    prometheus.Gauge
	ContainersDestroyed prometheus.Counter
	ScriptLoads         *prometheus.CounterVec
	Resizes             prometheus.Counter
}

// New creates a metrics collector registered with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ContainersCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adsurface_containers_created_total",
				Help: "Total number of ad containers created",
			},
			[]string{"variant"},
		),
		ContainersActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "adsurface_containers_active",
				Help: "Number of ad containers not yet destroyed",
			},
		),
		ContainersDestroyed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "adsurface_containers_destroyed_total",
				Help: "Total number of ad containers destroyed",
			},
		),
		ScriptLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adsurface_script_loads_total",
				Help: "Total number of ad script load attempts",
			},
			[]string{"result"},
		),
		Resizes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "adsurface_resizes_total",
				Help: "Total number of size synchronization passes",
			},
		),
	}
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the process-wide metrics collector registered with the
// default Prometheus registry.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = New(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}
