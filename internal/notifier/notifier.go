package notifier

import (
	"time"

	"github.com/everolfe/matchday/internal/syncer"
)

// MatchNotice carries the resolved, human-readable details of a match for
// notification purposes. Callers resolve IDs to names before sending so the
// notifier stays independent of the cache.
type MatchNotice struct {
	MatchID    string
	Tournament string
	Kickoff    time.Time
	ArenaCity  string
	HomeTeam   string
	AwayTeam   string
}

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For newly scheduled matches
	SendMatchScheduled(notice *MatchNotice, dryRun bool) error
	// For optimistic creates that had to be rolled back
	SendCreateFailure(entity, detail string, cause error, dryRun bool) error
	// For edits that stopped partway through their remote call sequence
	SendSyncFailure(failure *syncer.PartialSyncFailure, dryRun bool) error
}
