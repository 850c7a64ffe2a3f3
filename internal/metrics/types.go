package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	RefreshRuns         prometheus.Counter
	Searches            prometheus.Counter
	OptimisticCreates   prometheus.Counter
	OptimisticRollbacks prometheus.Counter
	SyncRuns            prometheus.Counter
	PartialSyncs        prometheus.Counter
	NotifSent           prometheus.Counter
	NotifFailed         prometheus.Counter
	SyncDuration        prometheus.Histogram
	StartupTimeSeconds  prometheus.Gauge
}
