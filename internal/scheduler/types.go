package scheduler

import (
	"errors"

	"github.com/everolfe/matchday/internal/cache"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/matchapi"
	"github.com/everolfe/matchday/internal/metrics"
	"github.com/everolfe/matchday/internal/notifier"
	"github.com/everolfe/matchday/internal/pubsub"
	"github.com/everolfe/matchday/internal/snapshot"
	"github.com/everolfe/matchday/internal/syncer"
)

// Errors returned when an operation references an entity that is not in the
// currently loaded collections. These are caught before any remote call.
var (
	ErrUnknownArena  = errors.New("arena not found in loaded collections")
	ErrUnknownTeam   = errors.New("team not found in loaded collections")
	ErrUnknownPlayer = errors.New("player not found in loaded collections")
	ErrUnknownMatch  = errors.New("match not found in loaded collections")
)

// Scheduler orchestrates the in-memory collections, the remote backend, the
// local snapshot and the outbound notification channels. All entity state
// shown to callers flows through it.
type Scheduler struct {
	client   matchapi.Client
	snapshot snapshot.Store
	notifier notifier.Notifier
	metrics  metrics.Metrics
	events   pubsub.PubSubClient

	arenas  *cache.Collection[domain.Arena]
	teams   *cache.Collection[domain.Team]
	players *cache.Collection[domain.Player]
	matches *cache.Collection[domain.Match]
}

// EditResult reports the outcome of an EditMatch call. In dry-run mode Plan
// holds the steps that would have been applied and Match the unchanged
// current state.
type EditResult struct {
	Match  domain.Match  `json:"match"`
	Plan   []syncer.Step `json:"plan,omitempty"`
	DryRun bool          `json:"dryRun,omitempty"`
}

// New creates a Scheduler with empty collections. Call Refresh to load the
// authoritative state before serving listings.
func New(client matchapi.Client, snap snapshot.Store, notif notifier.Notifier, m metrics.Metrics, events pubsub.PubSubClient) *Scheduler {
	return &Scheduler{
		client:   client,
		snapshot: snap,
		notifier: notif,
		metrics:  m,
		events:   events,
		arenas:   cache.NewCollection(func(a domain.Arena) string { return a.ID }),
		teams:    cache.NewCollection(func(t domain.Team) string { return t.ID }),
		players:  cache.NewCollection(func(p domain.Player) string { return p.ID }),
		matches:  cache.NewCollection(func(m domain.Match) string { return m.ID }),
	}
}

// Arenas returns the current ordered arena listing.
func (s *Scheduler) Arenas() []domain.Arena { return s.arenas.List() }

// Teams returns the current ordered team listing.
func (s *Scheduler) Teams() []domain.Team { return s.teams.List() }

// Players returns the current ordered player listing.
func (s *Scheduler) Players() []domain.Player { return s.players.List() }

// Matches returns the current ordered match listing. An unfiltered listing is
// the explicit reset after any filtered view.
func (s *Scheduler) Matches() []domain.Match { return s.matches.List() }

// FilterMatchesLocal applies the client-side text filter over the loaded
// matches, matching tournament label, arena city and team names.
func (s *Scheduler) FilterMatchesLocal(term string) []domain.Match {
	arenaByID := make(map[string]domain.Arena)
	for _, a := range s.arenas.List() {
		arenaByID[a.ID] = a
	}
	teamByID := make(map[string]domain.Team)
	for _, t := range s.teams.List() {
		teamByID[t.ID] = t
	}
	return domain.FilterMatches(s.matches.List(), term, arenaByID, teamByID)
}
