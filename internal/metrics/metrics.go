package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "table_tennis"

// Result kinds for ResultsRecorded
const (
	ResultFreestyle  = "freestyle"
	ResultTournament = "tournament"
)

// Metrics holds the application collectors on a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	TournamentsCreated   prometheus.Counter
	TournamentsCompleted prometheus.Counter
	ResultsRecorded      *prometheus.CounterVec
	RejectedResults      prometheus.Counter
	PlayersAdded         prometheus.Counter
	LiveConnections      prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		TournamentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tournaments_created_total",
			Help:      "Tournaments created.",
		}),
		TournamentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tournaments_completed_total",
			Help:      "Tournaments that produced a winner.",
		}),
		ResultsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_recorded_total",
			Help:      "Match results recorded, by kind.",
		}, []string{"kind"}),
		RejectedResults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_rejected_total",
			Help:      "Tournament results refused by the bracket.",
		}),
		PlayersAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "players_added_total",
			Help:      "Players added to the roster.",
		}),
		LiveConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_connections",
			Help:      "Open websocket connections following a tournament.",
		}),
	}

	registry.MustRegister(
		m.TournamentsCreated,
		m.TournamentsCompleted,
		m.ResultsRecorded,
		m.RejectedResults,
		m.PlayersAdded,
		m.LiveConnections,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) TournamentCreated() {
	if m != nil {
		m.TournamentsCreated.Inc()
	}
}

func (m *Metrics) TournamentCompleted() {
	if m != nil {
		m.TournamentsCompleted.Inc()
	}
}

func (m *Metrics) ResultRecorded(kind string) {
	if m != nil {
		m.ResultsRecorded.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) ResultRejected() {
	if m != nil {
		m.RejectedResults.Inc()
	}
}

func (m *Metrics) PlayerAdded() {
	if m != nil {
		m.PlayersAdded.Inc()
	}
}

func (m *Metrics) ConnectionOpened() {
	if m != nil {
		m.LiveConnections.Inc()
	}
}

func (m *Metrics) ConnectionClosed() {
	if m != nil {
		m.LiveConnections.Dec()
	}
}
