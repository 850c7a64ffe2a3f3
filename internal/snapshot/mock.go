package snapshot

import (
	"sync"
	"time"

	"github.com/everolfe/matchday/internal/domain"
)

// Mock is an in-memory implementation of the Store interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	Arenas      []domain.Arena
	Teams       []domain.Team
	Players     []domain.Player
	Matches     []domain.Match
	refreshedAt time.Time
	hasRefresh  bool

	// Spies
	ReplaceArenasFunc  func(arenas []domain.Arena) error
	ReplaceTeamsFunc   func(teams []domain.Team) error
	ReplacePlayersFunc func(players []domain.Player) error
	ReplaceMatchesFunc func(matches []domain.Match) error
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) ReplaceArenas(arenas []domain.Arena) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Arenas = arenas
	if m.ReplaceArenasFunc != nil {
		return m.ReplaceArenasFunc(arenas)
	}
	return nil
}

func (m *Mock) ReplaceTeams(teams []domain.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Teams = teams
	if m.ReplaceTeamsFunc != nil {
		return m.ReplaceTeamsFunc(teams)
	}
	return nil
}

func (m *Mock) ReplacePlayers(players []domain.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Players = players
	if m.ReplacePlayersFunc != nil {
		return m.ReplacePlayersFunc(players)
	}
	return nil
}

func (m *Mock) ReplaceMatches(matches []domain.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Matches = matches
	if m.ReplaceMatchesFunc != nil {
		return m.ReplaceMatchesFunc(matches)
	}
	return nil
}

func (m *Mock) GetArenas() ([]domain.Arena, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Arenas, nil
}

func (m *Mock) GetTeams() ([]domain.Team, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Teams, nil
}

func (m *Mock) GetPlayers() ([]domain.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Players, nil
}

func (m *Mock) GetMatches() ([]domain.Match, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Matches, nil
}

func (m *Mock) SetRefreshedAt(at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshedAt = at
	m.hasRefresh = true
	return nil
}

func (m *Mock) RefreshedAt() (time.Time, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshedAt, m.hasRefresh, nil
}

func (m *Mock) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Arenas = nil
	m.Teams = nil
	m.Players = nil
	m.Matches = nil
	m.refreshedAt = time.Time{}
	m.hasRefresh = false
	return nil
}
