package notifier

import (
	"sync"

	"github.com/everolfe/matchday/internal/syncer"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Call records
	SendMatchScheduledCalls []MatchNotice
	SendCreateFailureCalls  []struct {
		Entity string
		Detail string
		Cause  error
	}
	SendSyncFailureCalls []*syncer.PartialSyncFailure

	// Spies
	SendMatchScheduledFunc func(notice *MatchNotice, dryRun bool) error
	SendCreateFailureFunc  func(entity, detail string, cause error, dryRun bool) error
	SendSyncFailureFunc    func(failure *syncer.PartialSyncFailure, dryRun bool) error
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMatchScheduledCalls = nil
	m.SendCreateFailureCalls = nil
	m.SendSyncFailureCalls = nil
}

func (m *Mock) SendMatchScheduled(notice *MatchNotice, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if notice != nil {
		m.SendMatchScheduledCalls = append(m.SendMatchScheduledCalls, *notice)
	}
	if m.SendMatchScheduledFunc != nil {
		return m.SendMatchScheduledFunc(notice, dryRun)
	}
	return nil
}

func (m *Mock) SendCreateFailure(entity, detail string, cause error, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendCreateFailureCalls = append(m.SendCreateFailureCalls, struct {
		Entity string
		Detail string
		Cause  error
	}{entity, detail, cause})
	if m.SendCreateFailureFunc != nil {
		return m.SendCreateFailureFunc(entity, detail, cause, dryRun)
	}
	return nil
}

func (m *Mock) SendSyncFailure(failure *syncer.PartialSyncFailure, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendSyncFailureCalls = append(m.SendSyncFailureCalls, failure)
	if m.SendSyncFailureFunc != nil {
		return m.SendSyncFailureFunc(failure, dryRun)
	}
	return nil
}
