package domain

import "time"

// DefaultTournament is the label assigned to matches whose tournament name is
// blank after normalization.
const DefaultTournament = "Friendly Match"

// Arena is a venue a match can be scheduled at.
type Arena struct {
	ID       string `json:"id"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

// Team holds a roster of player identifiers. Order is irrelevant and the
// roster never contains duplicates.
type Team struct {
	ID        string   `json:"id"`
	Name      string   `json:"teamName"`
	Country   string   `json:"country"`
	PlayerIDs []string `json:"playerIds"`
}

// Player belongs to at most one team at a time. An empty TeamID means the
// player is unaffiliated.
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Country string `json:"country,omitempty"`
	TeamID  string `json:"teamId,omitempty"`
}

// Match binds two distinct teams, one arena, a kickoff time and a tournament
// label. Kickoff is a naive local instant; it is formatted without an offset
// when it crosses the wire.
type Match struct {
	ID         string    `json:"id"`
	Kickoff    time.Time `json:"dateTime"`
	Tournament string    `json:"tournamentName"`
	ArenaID    string    `json:"arenaId"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
}

// ArenaDraft is the user intent to create or replace an arena.
type ArenaDraft struct {
	City     string `json:"city"`
	Capacity *int   `json:"capacity"`
}

// TeamDraft is the user intent to create or replace a team.
type TeamDraft struct {
	Name    string `json:"teamName"`
	Country string `json:"country"`
}

// PlayerDraft is the user intent to create or replace a player.
type PlayerDraft struct {
	Name    string `json:"name"`
	Age     *int   `json:"age"`
	Country string `json:"country,omitempty"`
	TeamID  string `json:"teamId,omitempty"`
}

// MatchDraft is the user intent for a match's desired associated state. The
// tournament label is normalized during validation.
type MatchDraft struct {
	Kickoff    *time.Time `json:"dateTime"`
	Tournament string     `json:"tournamentName"`
	ArenaID    string     `json:"arenaId"`
	HomeTeamID string     `json:"homeTeamId"`
	AwayTeamID string     `json:"awayTeamId"`
}
