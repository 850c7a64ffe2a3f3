package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	refreshRuns         int
	searches            int
	optimisticCreates   int
	optimisticRollbacks int
	syncRuns            int
	partialSyncs        int
	notifSent           int
	notifFailed         int
	syncDurations       []float64
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		syncDurations: make([]float64, 0),
	}
}

func (m *Mock) IncRefreshRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshRuns++
}

func (m *Mock) IncSearches() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches++
}

func (m *Mock) IncOptimisticCreates() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.optimisticCreates++
}

func (m *Mock) IncOptimisticRollbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.optimisticRollbacks++
}

func (m *Mock) IncSyncRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncRuns++
}

func (m *Mock) IncPartialSyncs() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.partialSyncs++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) ObserveSyncDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.syncDurations = append(m.syncDurations, duration)
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// RefreshRuns returns the number of times IncRefreshRuns was called.
func (m *Mock) RefreshRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshRuns
}

// Searches returns the number of times IncSearches was called.
func (m *Mock) Searches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.searches
}

// OptimisticCreates returns the number of times IncOptimisticCreates was called.
func (m *Mock) OptimisticCreates() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.optimisticCreates
}

// OptimisticRollbacks returns the number of times IncOptimisticRollbacks was called.
func (m *Mock) OptimisticRollbacks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.optimisticRollbacks
}

// SyncRuns returns the number of times IncSyncRuns was called.
func (m *Mock) SyncRuns() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.syncRuns
}

// PartialSyncs returns the number of times IncPartialSyncs was called.
func (m *Mock) PartialSyncs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.partialSyncs
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}

// SyncDurations returns the recorded sync durations.
func (m *Mock) SyncDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.syncDurations))
	copy(out, m.syncDurations)
	return out
}
