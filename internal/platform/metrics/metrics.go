// Package metrics bundles the Prometheus collectors for the HTTP surface and
// provides helpers to wire them into the gin engine.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the HTTP metrics and the gatherer backing /metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	WheelsGenerated prometheus.Counter
}

// NewCollector registers the service metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by method, route, and status code.",
	}, []string{"method", "route", "code"})
	requests, err := registerCounterVec(reg, requests, "http_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"method", "route"})
	durations, err = registerHistogramVec(reg, durations, "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	generated, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wheels_generated_total",
		Help: "Number of wheel meshes successfully generated and streamed.",
	}), "wheels_generated_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		HTTPRequests:    requests,
		HTTPDurations:   durations,
		WheelsGenerated: generated,
	}, nil
}

// Middleware records request counts and durations for every handled route.
// Successful generate responses also bump the wheel counter.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		if c == nil {
			return
		}
		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		code := strconv.Itoa(ctx.Writer.Status())

		if c.HTTPRequests != nil {
			c.HTTPRequests.WithLabelValues(method, route, code).Inc()
		}
		if c.HTTPDurations != nil {
			c.HTTPDurations.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		}
		if c.WheelsGenerated != nil && method == http.MethodPost && ctx.Writer.Status() == http.StatusOK {
			if route == "/generate" || route == "/" {
				c.WheelsGenerated.Inc()
			}
		}
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
