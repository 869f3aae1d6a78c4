// Package metrics exposes game counters in the Prometheus text format.
// A nil *Recorder is valid and records nothing, so local play can skip it.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mines"

// Recorder owns a private registry with the game metrics.
type Recorder struct {
	registry *prometheus.Registry
	started  *prometheus.CounterVec
	finished *prometheus.CounterVec
	duration *prometheus.HistogramVec
	sessions prometheus.Gauge
}

// New creates a Recorder with all metrics registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Games started, by preset.",
		}, []string{"game"}),
		finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Games finished, by preset, outcome and loss reason.",
		}, []string{"game", "outcome", "reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "game_duration_seconds",
			Help:      "Game clock at the end of a game.",
			Buckets:   []float64{10, 30, 60, 120, 180, 300, 660},
		}, []string{"game", "outcome"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ssh_sessions",
			Help:      "Open SSH sessions.",
		}),
	}
	r.registry.MustRegister(r.started, r.finished, r.duration, r.sessions)
	return r
}

// GameStarted counts a new round.
func (r *Recorder) GameStarted(gameID string) {
	if r == nil {
		return
	}
	r.started.WithLabelValues(gameID).Inc()
}

// GameFinished counts a finished round and observes its clock.
func (r *Recorder) GameFinished(gameID, outcome, reason string, elapsedSecs int) {
	if r == nil {
		return
	}
	r.finished.WithLabelValues(gameID, outcome, reason).Inc()
	r.duration.WithLabelValues(gameID, outcome).Observe(float64(elapsedSecs))
}

// SessionOpened increments the open session gauge.
func (r *Recorder) SessionOpened() {
	if r == nil {
		return
	}
	r.sessions.Inc()
}

// SessionClosed decrements the open session gauge.
func (r *Recorder) SessionClosed() {
	if r == nil {
		return
	}
	r.sessions.Dec()
}

// Handler serves the registry for scraping.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
