package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RefreshRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchday_refresh_runs_total",
			Help: "The total number of full collection refreshes.",
		}),
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchday_searches_total",
			Help: "The total number of server-side search calls issued.",
		}),
		OptimisticCreates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchday_optimistic_creates_total",
			Help: "The total number of optimistic create attempts.",
		}),
		OptimisticRollbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchday_optimistic_rollbacks_total",
			Help: "The total number of optimistic inserts rolled back after a failed remote create.",
		}),
		SyncRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchday_sync_runs_total",
			Help: "The total number of association sync runs.",
		}),
		PartialSyncs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchday_partial_syncs_total",
			Help: "The total number of sync runs that stopped partway, leaving a prefix of the desired state.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchday_notifications_sent_total",
			Help: "The total number of notifications sent successfully.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matchday_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		SyncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "matchday_sync_duration_seconds",
			Help:    "The duration of individual association sync runs.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "matchday_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RefreshRuns,
		s.Searches,
		s.OptimisticCreates,
		s.OptimisticRollbacks,
		s.SyncRuns,
		s.PartialSyncs,
		s.NotifSent,
		s.NotifFailed,
		s.SyncDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRefreshRuns() {
	s.RefreshRuns.Inc()
}

func (s *Service) IncSearches() {
	s.Searches.Inc()
}

func (s *Service) IncOptimisticCreates() {
	s.OptimisticCreates.Inc()
}

func (s *Service) IncOptimisticRollbacks() {
	s.OptimisticRollbacks.Inc()
}

func (s *Service) IncSyncRuns() {
	s.SyncRuns.Inc()
}

func (s *Service) IncPartialSyncs() {
	s.PartialSyncs.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) ObserveSyncDuration(duration float64) {
	s.SyncDuration.Observe(duration)
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
