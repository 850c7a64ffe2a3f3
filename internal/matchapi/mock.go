package matchapi

import (
	"context"
	"sync"
)

// MockClient is a hand-rolled mock of the Client interface for tests. It is
// safe for concurrent use. Journal records every call in invocation order so
// tests can assert cross-method ordering.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	ListArenasFunc             func(ctx context.Context) ([]Arena, error)
	SearchArenasByCapacityFunc func(ctx context.Context, minCapacity, maxCapacity int) ([]Arena, error)
	CreateArenaFunc            func(ctx context.Context, req ArenaRequest) (Arena, error)
	UpdateArenaFunc            func(ctx context.Context, id string, req ArenaRequest) (Arena, error)
	DeleteArenaFunc            func(ctx context.Context, id string) error

	ListTeamsFunc            func(ctx context.Context) ([]Team, error)
	CreateTeamFunc           func(ctx context.Context, req TeamRequest) (Team, error)
	CreateTeamsBulkFunc      func(ctx context.Context, reqs []TeamRequest) ([]Team, error)
	UpdateTeamFunc           func(ctx context.Context, id string, req TeamRequest) (Team, error)
	DeleteTeamFunc           func(ctx context.Context, id string) error
	AddPlayerToTeamFunc      func(ctx context.Context, teamID, playerID string) (Team, error)
	RemovePlayerFromTeamFunc func(ctx context.Context, teamID, playerID string) (Team, error)

	ListPlayersFunc        func(ctx context.Context) ([]Player, error)
	SearchPlayersByAgeFunc func(ctx context.Context, age int) ([]Player, error)
	CreatePlayerFunc       func(ctx context.Context, req PlayerRequest) (Player, error)
	UpdatePlayerFunc       func(ctx context.Context, id string, req PlayerRequest) (Player, error)
	DeletePlayerFunc       func(ctx context.Context, id string) error

	ListMatchesFunc               func(ctx context.Context) ([]Match, error)
	SearchMatchesByTournamentFunc func(ctx context.Context, tournament string) ([]Match, error)
	SearchMatchesByDateRangeFunc  func(ctx context.Context, startDate, endDate string) ([]Match, error)
	CreateMatchFunc               func(ctx context.Context, req MatchRequest) (Match, error)
	UpdateMatchFunc               func(ctx context.Context, id string, req MatchUpdateRequest) (Match, error)
	DeleteMatchFunc               func(ctx context.Context, id string) error
	SetMatchArenaFunc             func(ctx context.Context, matchID, arenaID string) (Match, error)
	SetMatchTimeFunc              func(ctx context.Context, matchID, localDateTime string) (Match, error)
	AddTeamToMatchFunc            func(ctx context.Context, matchID, teamID string) (Match, error)
	RemoveTeamFromMatchFunc       func(ctx context.Context, matchID, teamID string) (Match, error)

	// Call records
	Journal []string

	CreateArenaCalls            []ArenaRequest
	SearchArenasByCapacityCalls []CapacityRangeCall
	CreateMatchCalls            []MatchRequest
	UpdateMatchCalls            []MatchUpdateCall
	SetMatchArenaCalls          []PairCall
	SetMatchTimeCalls           []TimeCall
	AddTeamToMatchCalls         []PairCall
	RemoveTeamFromMatchCalls    []PairCall
	AddPlayerToTeamCalls        []PairCall
	RemovePlayerFromTeamCalls   []PairCall
	SearchTournamentCalls       []string
	SearchDateRangeCalls        []DateRangeCall
	SearchPlayersByAgeCalls     []int
}

// CapacityRangeCall records a capacity-range search.
type CapacityRangeCall struct {
	Min int
	Max int
}

// PairCall records a call binding two identifiers.
type PairCall struct {
	ID      string
	OtherID string
}

// TimeCall records a time-update call.
type TimeCall struct {
	MatchID string
	Time    string
}

// DateRangeCall records a date-range search.
type DateRangeCall struct {
	Start string
	End   string
}

// MatchUpdateCall records a field-replace match update.
type MatchUpdateCall struct {
	ID  string
	Req MatchUpdateRequest
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Journal = nil
	m.CreateArenaCalls = nil
	m.SearchArenasByCapacityCalls = nil
	m.CreateMatchCalls = nil
	m.UpdateMatchCalls = nil
	m.SetMatchArenaCalls = nil
	m.SetMatchTimeCalls = nil
	m.AddTeamToMatchCalls = nil
	m.RemoveTeamFromMatchCalls = nil
	m.AddPlayerToTeamCalls = nil
	m.RemovePlayerFromTeamCalls = nil
	m.SearchTournamentCalls = nil
	m.SearchDateRangeCalls = nil
	m.SearchPlayersByAgeCalls = nil
}

func (m *MockClient) record(entry string) {
	m.Journal = append(m.Journal, entry)
}

var _ Client = (*MockClient)(nil)

func (m *MockClient) ListArenas(ctx context.Context) ([]Arena, error) {
	m.mu.Lock()
	m.record("ListArenas")
	m.mu.Unlock()
	if m.ListArenasFunc != nil {
		return m.ListArenasFunc(ctx)
	}
	return []Arena{}, nil
}

func (m *MockClient) SearchArenasByCapacity(ctx context.Context, minCapacity, maxCapacity int) ([]Arena, error) {
	m.mu.Lock()
	m.record("SearchArenasByCapacity")
	m.SearchArenasByCapacityCalls = append(m.SearchArenasByCapacityCalls, CapacityRangeCall{Min: minCapacity, Max: maxCapacity})
	m.mu.Unlock()
	if m.SearchArenasByCapacityFunc != nil {
		return m.SearchArenasByCapacityFunc(ctx, minCapacity, maxCapacity)
	}
	return []Arena{}, nil
}

func (m *MockClient) CreateArena(ctx context.Context, req ArenaRequest) (Arena, error) {
	m.mu.Lock()
	m.record("CreateArena")
	m.CreateArenaCalls = append(m.CreateArenaCalls, req)
	m.mu.Unlock()
	if m.CreateArenaFunc != nil {
		return m.CreateArenaFunc(ctx, req)
	}
	return Arena{}, nil
}

func (m *MockClient) UpdateArena(ctx context.Context, id string, req ArenaRequest) (Arena, error) {
	m.mu.Lock()
	m.record("UpdateArena")
	m.mu.Unlock()
	if m.UpdateArenaFunc != nil {
		return m.UpdateArenaFunc(ctx, id, req)
	}
	return Arena{}, nil
}

func (m *MockClient) DeleteArena(ctx context.Context, id string) error {
	m.mu.Lock()
	m.record("DeleteArena")
	m.mu.Unlock()
	if m.DeleteArenaFunc != nil {
		return m.DeleteArenaFunc(ctx, id)
	}
	return nil
}

func (m *MockClient) ListTeams(ctx context.Context) ([]Team, error) {
	m.mu.Lock()
	m.record("ListTeams")
	m.mu.Unlock()
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx)
	}
	return []Team{}, nil
}

func (m *MockClient) CreateTeam(ctx context.Context, req TeamRequest) (Team, error) {
	m.mu.Lock()
	m.record("CreateTeam")
	m.mu.Unlock()
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, req)
	}
	return Team{}, nil
}

func (m *MockClient) CreateTeamsBulk(ctx context.Context, reqs []TeamRequest) ([]Team, error) {
	m.mu.Lock()
	m.record("CreateTeamsBulk")
	m.mu.Unlock()
	if m.CreateTeamsBulkFunc != nil {
		return m.CreateTeamsBulkFunc(ctx, reqs)
	}
	return []Team{}, nil
}

func (m *MockClient) UpdateTeam(ctx context.Context, id string, req TeamRequest) (Team, error) {
	m.mu.Lock()
	m.record("UpdateTeam")
	m.mu.Unlock()
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, id, req)
	}
	return Team{}, nil
}

func (m *MockClient) DeleteTeam(ctx context.Context, id string) error {
	m.mu.Lock()
	m.record("DeleteTeam")
	m.mu.Unlock()
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, id)
	}
	return nil
}

func (m *MockClient) AddPlayerToTeam(ctx context.Context, teamID, playerID string) (Team, error) {
	m.mu.Lock()
	m.record("AddPlayerToTeam")
	m.AddPlayerToTeamCalls = append(m.AddPlayerToTeamCalls, PairCall{ID: teamID, OtherID: playerID})
	m.mu.Unlock()
	if m.AddPlayerToTeamFunc != nil {
		return m.AddPlayerToTeamFunc(ctx, teamID, playerID)
	}
	return Team{}, nil
}

func (m *MockClient) RemovePlayerFromTeam(ctx context.Context, teamID, playerID string) (Team, error) {
	m.mu.Lock()
	m.record("RemovePlayerFromTeam")
	m.RemovePlayerFromTeamCalls = append(m.RemovePlayerFromTeamCalls, PairCall{ID: teamID, OtherID: playerID})
	m.mu.Unlock()
	if m.RemovePlayerFromTeamFunc != nil {
		return m.RemovePlayerFromTeamFunc(ctx, teamID, playerID)
	}
	return Team{}, nil
}

func (m *MockClient) ListPlayers(ctx context.Context) ([]Player, error) {
	m.mu.Lock()
	m.record("ListPlayers")
	m.mu.Unlock()
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(ctx)
	}
	return []Player{}, nil
}

func (m *MockClient) SearchPlayersByAge(ctx context.Context, age int) ([]Player, error) {
	m.mu.Lock()
	m.record("SearchPlayersByAge")
	m.SearchPlayersByAgeCalls = append(m.SearchPlayersByAgeCalls, age)
	m.mu.Unlock()
	if m.SearchPlayersByAgeFunc != nil {
		return m.SearchPlayersByAgeFunc(ctx, age)
	}
	return []Player{}, nil
}

func (m *MockClient) CreatePlayer(ctx context.Context, req PlayerRequest) (Player, error) {
	m.mu.Lock()
	m.record("CreatePlayer")
	m.mu.Unlock()
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(ctx, req)
	}
	return Player{}, nil
}

func (m *MockClient) UpdatePlayer(ctx context.Context, id string, req PlayerRequest) (Player, error) {
	m.mu.Lock()
	m.record("UpdatePlayer")
	m.mu.Unlock()
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(ctx, id, req)
	}
	return Player{}, nil
}

func (m *MockClient) DeletePlayer(ctx context.Context, id string) error {
	m.mu.Lock()
	m.record("DeletePlayer")
	m.mu.Unlock()
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(ctx, id)
	}
	return nil
}

func (m *MockClient) ListMatches(ctx context.Context) ([]Match, error) {
	m.mu.Lock()
	m.record("ListMatches")
	m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(ctx)
	}
	return []Match{}, nil
}

func (m *MockClient) SearchMatchesByTournament(ctx context.Context, tournament string) ([]Match, error) {
	m.mu.Lock()
	m.record("SearchMatchesByTournament")
	m.SearchTournamentCalls = append(m.SearchTournamentCalls, tournament)
	m.mu.Unlock()
	if m.SearchMatchesByTournamentFunc != nil {
		return m.SearchMatchesByTournamentFunc(ctx, tournament)
	}
	return []Match{}, nil
}

func (m *MockClient) SearchMatchesByDateRange(ctx context.Context, startDate, endDate string) ([]Match, error) {
	m.mu.Lock()
	m.record("SearchMatchesByDateRange")
	m.SearchDateRangeCalls = append(m.SearchDateRangeCalls, DateRangeCall{Start: startDate, End: endDate})
	m.mu.Unlock()
	if m.SearchMatchesByDateRangeFunc != nil {
		return m.SearchMatchesByDateRangeFunc(ctx, startDate, endDate)
	}
	return []Match{}, nil
}

func (m *MockClient) CreateMatch(ctx context.Context, req MatchRequest) (Match, error) {
	m.mu.Lock()
	m.record("CreateMatch")
	m.CreateMatchCalls = append(m.CreateMatchCalls, req)
	m.mu.Unlock()
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(ctx, req)
	}
	return Match{}, nil
}

func (m *MockClient) UpdateMatch(ctx context.Context, id string, req MatchUpdateRequest) (Match, error) {
	m.mu.Lock()
	m.record("UpdateMatch")
	m.UpdateMatchCalls = append(m.UpdateMatchCalls, MatchUpdateCall{ID: id, Req: req})
	m.mu.Unlock()
	if m.UpdateMatchFunc != nil {
		return m.UpdateMatchFunc(ctx, id, req)
	}
	return Match{}, nil
}

func (m *MockClient) DeleteMatch(ctx context.Context, id string) error {
	m.mu.Lock()
	m.record("DeleteMatch")
	m.mu.Unlock()
	if m.DeleteMatchFunc != nil {
		return m.DeleteMatchFunc(ctx, id)
	}
	return nil
}

func (m *MockClient) SetMatchArena(ctx context.Context, matchID, arenaID string) (Match, error) {
	m.mu.Lock()
	m.record("SetMatchArena")
	m.SetMatchArenaCalls = append(m.SetMatchArenaCalls, PairCall{ID: matchID, OtherID: arenaID})
	m.mu.Unlock()
	if m.SetMatchArenaFunc != nil {
		return m.SetMatchArenaFunc(ctx, matchID, arenaID)
	}
	return Match{}, nil
}

func (m *MockClient) SetMatchTime(ctx context.Context, matchID, localDateTime string) (Match, error) {
	m.mu.Lock()
	m.record("SetMatchTime")
	m.SetMatchTimeCalls = append(m.SetMatchTimeCalls, TimeCall{MatchID: matchID, Time: localDateTime})
	m.mu.Unlock()
	if m.SetMatchTimeFunc != nil {
		return m.SetMatchTimeFunc(ctx, matchID, localDateTime)
	}
	return Match{}, nil
}

func (m *MockClient) AddTeamToMatch(ctx context.Context, matchID, teamID string) (Match, error) {
	m.mu.Lock()
	m.record("AddTeamToMatch:" + teamID)
	m.AddTeamToMatchCalls = append(m.AddTeamToMatchCalls, PairCall{ID: matchID, OtherID: teamID})
	m.mu.Unlock()
	if m.AddTeamToMatchFunc != nil {
		return m.AddTeamToMatchFunc(ctx, matchID, teamID)
	}
	return Match{}, nil
}

func (m *MockClient) RemoveTeamFromMatch(ctx context.Context, matchID, teamID string) (Match, error) {
	m.mu.Lock()
	m.record("RemoveTeamFromMatch:" + teamID)
	m.RemoveTeamFromMatchCalls = append(m.RemoveTeamFromMatchCalls, PairCall{ID: matchID, OtherID: teamID})
	m.mu.Unlock()
	if m.RemoveTeamFromMatchFunc != nil {
		return m.RemoveTeamFromMatchFunc(ctx, matchID, teamID)
	}
	return Match{}, nil
}
