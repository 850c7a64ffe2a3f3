package snapshot

import (
	"time"

	"github.com/everolfe/matchday/internal/domain"
)

// Store defines the interface for persisting the last authoritative state
// fetched from the backend. Each Replace call swaps a whole collection; the
// snapshot never holds provisional entries.
type Store interface {
	ReplaceArenas(arenas []domain.Arena) error
	ReplaceTeams(teams []domain.Team) error
	ReplacePlayers(players []domain.Player) error
	ReplaceMatches(matches []domain.Match) error
	GetArenas() ([]domain.Arena, error)
	GetTeams() ([]domain.Team, error)
	GetPlayers() ([]domain.Player, error)
	GetMatches() ([]domain.Match, error)
	SetRefreshedAt(at time.Time) error
	RefreshedAt() (time.Time, bool, error)
	Clear() error
}
