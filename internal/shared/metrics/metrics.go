// Package metrics exposes Prometheus metrics for figure generation and HTTP traffic.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jobboard"

// Custom registry to avoid default Go metrics.
var registry = prometheus.NewRegistry() //nolint:gochecknoglobals // process-wide metrics registry

var (
	auto = promauto.With(registry)

	figuresGenerated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "figures",
		Name:      "generated_total",
		Help:      "Total figures fitted, rendered and stored",
	}, []string{"kind"})

	figuresFailed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "figures",
		Name:      "failed_total",
		Help:      "Total figure generations that failed",
	}, []string{"kind"})

	figureDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "figures",
		Name:      "duration_milliseconds",
		Help:      "Fit, render and store duration in milliseconds",
		Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"kind"})

	httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})
)

// ObserveFigure records the outcome and duration of one figure generation.
func ObserveFigure(kind string, started time.Time, err error) {
	if err != nil {
		figuresFailed.WithLabelValues(kind).Inc()
		return
	}
	figuresGenerated.WithLabelValues(kind).Inc()
	figureDuration.WithLabelValues(kind).Observe(float64(time.Since(started).Microseconds()) / 1000.0)
}

// Middleware counts requests by matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Gatherer returns the registry backing Handler.
func Gatherer() prometheus.Gatherer {
	return registry
}
