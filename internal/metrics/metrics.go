package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/dota-bot-discord/internal/discord/v2/middleware"
)

var (
	interactionLabels = []string{"interaction_type", "command"}
	errorLabels       = []string{"interaction_type", "command", "error_code"}
)

// Collector records interaction metrics for the middleware
type Collector struct {
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec
}

// NewCollector creates the bot's metrics and registers them with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	interactions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: middleware.MetricInteractionsTotal,
		Help: "Total number of interactions handled",
	}, interactionLabels)

	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: middleware.MetricInteractionErrors,
		Help: "Total number of interactions whose handler returned an error",
	}, errorLabels)

	limited := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: middleware.MetricRateLimited,
		Help: "Total number of interactions rejected by rate limiting",
	}, interactionLabels)

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    middleware.MetricInteractionDuration,
		Help:    "Time spent handling an interaction",
		Buckets: prometheus.DefBuckets,
	}, interactionLabels)

	reg.MustRegister(interactions, failures, limited, duration)

	return &Collector{
		counters: map[string]*prometheus.CounterVec{
			middleware.MetricInteractionsTotal: interactions,
			middleware.MetricInteractionErrors: failures,
			middleware.MetricRateLimited:       limited,
		},
		histograms: map[string]*prometheus.HistogramVec{
			middleware.MetricInteractionDuration: duration,
		},
	}
}

func (c *Collector) IncrementCounter(name string, labels map[string]string) {
	vec, ok := c.counters[name]
	if !ok {
		log.WithField("metric", name).Warn("Unknown counter")
		return
	}

	counter, err := vec.GetMetricWith(labels)
	if err != nil {
		log.WithError(err).WithField("metric", name).Warn("Bad counter labels")
		return
	}
	counter.Inc()
}

func (c *Collector) ObserveHistogram(name string, value float64, labels map[string]string) {
	vec, ok := c.histograms[name]
	if !ok {
		log.WithField("metric", name).Warn("Unknown histogram")
		return
	}

	observer, err := vec.GetMetricWith(labels)
	if err != nil {
		log.WithError(err).WithField("metric", name).Warn("Bad histogram labels")
		return
	}
	observer.Observe(value)
}

// Serve exposes /metrics on addr until ctx is done
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("Metrics server shutdown failed")
		}
	}()

	log.WithField("addr", addr).Info("Serving metrics")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
