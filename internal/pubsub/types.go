package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchCreated EventType = "match-created"
	EventMatchSynced  EventType = "match-synced"
	EventSyncFailed   EventType = "sync-failed"
)

// MatchEvent is the payload published for match lifecycle events.
type MatchEvent struct {
	MatchID    string `msgpack:"matchId"`
	Tournament string `msgpack:"tournamentName"`
	Kickoff    string `msgpack:"dateTime"`
	ArenaID    string `msgpack:"arenaId"`
	HomeTeamID string `msgpack:"homeTeamId"`
	AwayTeamID string `msgpack:"awayTeamId"`
}

// SyncFailedEvent is the payload published when a match edit stops partway.
type SyncFailedEvent struct {
	MatchID    string   `msgpack:"matchId"`
	Applied    []string `msgpack:"applied"`
	FailedStep string   `msgpack:"failedStep"`
	Reason     string   `msgpack:"reason"`
}
