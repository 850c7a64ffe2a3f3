package matchapi

import "context"

// Client defines the calls the fixtures backend exposes. Every call is an
// independent request/response exchange; there is no transaction spanning two
// calls. Mock implementations are used in tests.
type Client interface {
	ListArenas(ctx context.Context) ([]Arena, error)
	SearchArenasByCapacity(ctx context.Context, minCapacity, maxCapacity int) ([]Arena, error)
	CreateArena(ctx context.Context, req ArenaRequest) (Arena, error)
	UpdateArena(ctx context.Context, id string, req ArenaRequest) (Arena, error)
	DeleteArena(ctx context.Context, id string) error

	ListTeams(ctx context.Context) ([]Team, error)
	CreateTeam(ctx context.Context, req TeamRequest) (Team, error)
	CreateTeamsBulk(ctx context.Context, reqs []TeamRequest) ([]Team, error)
	UpdateTeam(ctx context.Context, id string, req TeamRequest) (Team, error)
	DeleteTeam(ctx context.Context, id string) error
	AddPlayerToTeam(ctx context.Context, teamID, playerID string) (Team, error)
	RemovePlayerFromTeam(ctx context.Context, teamID, playerID string) (Team, error)

	ListPlayers(ctx context.Context) ([]Player, error)
	SearchPlayersByAge(ctx context.Context, age int) ([]Player, error)
	CreatePlayer(ctx context.Context, req PlayerRequest) (Player, error)
	UpdatePlayer(ctx context.Context, id string, req PlayerRequest) (Player, error)
	DeletePlayer(ctx context.Context, id string) error

	ListMatches(ctx context.Context) ([]Match, error)
	SearchMatchesByTournament(ctx context.Context, tournament string) ([]Match, error)
	SearchMatchesByDateRange(ctx context.Context, startDate, endDate string) ([]Match, error)
	CreateMatch(ctx context.Context, req MatchRequest) (Match, error)
	UpdateMatch(ctx context.Context, id string, req MatchUpdateRequest) (Match, error)
	DeleteMatch(ctx context.Context, id string) error
	SetMatchArena(ctx context.Context, matchID, arenaID string) (Match, error)
	SetMatchTime(ctx context.Context, matchID, localDateTime string) (Match, error)
	AddTeamToMatch(ctx context.Context, matchID, teamID string) (Match, error)
	RemoveTeamFromMatch(ctx context.Context, matchID, teamID string) (Match, error)
}
