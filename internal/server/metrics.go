// Package server exposes an optional Prometheus /metrics endpoint for
// observing long simulation runs in flight.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/coinflip/internal/logging"
)

// Metrics bundles the simulation's Prometheus instruments behind a dedicated
// registry, so repeated construction (e.g. in tests) never trips the global
// duplicate-registration panic.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	flipsTotal    prometheus.Counter
	activeWorkers prometheus.Gauge
	runDuration   prometheus.Gauge
}

// NewMetrics creates the metric instruments and their HTTP handler.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		flipsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coinflip_flips_total",
			Help: "Total coin flips completed across all workers.",
		}),
		activeWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coinflip_active_workers",
			Help: "Number of trial workers currently running.",
		}),
		runDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "coinflip_run_duration_seconds",
			Help: "Wall-clock duration of the current run so far.",
		}),
	}

	reg.MustRegister(m.flipsTotal, m.activeWorkers, m.runDuration)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m.handler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	return m
}

// ObserveFlips records completed flips. Implements orchestration.FlipObserver.
func (m *Metrics) ObserveFlips(n uint64) {
	m.flipsTotal.Add(float64(n))
}

// SetActiveWorkers records the number of running workers.
func (m *Metrics) SetActiveWorkers(n int) {
	m.activeWorkers.Set(float64(n))
}

// SetRunDuration records the elapsed wall-clock time of the run.
func (m *Metrics) SetRunDuration(d time.Duration) {
	m.runDuration.Set(d.Seconds())
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// Serve runs an HTTP server exposing /metrics on addr until ctx is done.
// It is best-effort observability: failures are logged, never fatal to the
// simulation.
func (m *Metrics) Serve(ctx context.Context, addr string, log logging.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", m.WritePrometheus)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("metrics endpoint listening", logging.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("metrics endpoint failed", err, logging.String("addr", addr))
	}
}
