// metrics exposes counters for buffer churn. They are registered on the
// default prometheus registry so a host process only needs to mount promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Allocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "framebuffer_allocations_total",
		Help: "Buffers allocated, by kind.",
	}, []string{"kind"})

	Releases = promauto.NewCounter(prometheus.CounterOpts{
		Name: "framebuffer_releases_total",
		Help: "Buffers whose last reference was released.",
	})

	Conversions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "framebuffer_conversions_total",
		Help: "Format conversions performed, by source and destination kind.",
	}, []string{"from", "to"})

	LiveBuffers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "framebuffer_live_buffers",
		Help: "Buffers currently holding plane memory.",
	})
)
