package matchapi

// Wire types for the fixtures backend. Field names mirror the backend's
// response shapes verbatim; mapping to domain entities happens in the
// scheduler.

// Arena is the wire representation of a venue.
type Arena struct {
	ID       string `json:"id"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

// Player is the wire representation of a player.
type Player struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Country string `json:"country,omitempty"`
	TeamID  string `json:"teamId,omitempty"`
}

// Team is the wire representation of a team, roster included.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"teamName"`
	Country string   `json:"country"`
	Players []Player `json:"playerDtoList,omitempty"`
}

// Match is the wire representation of a fixture. The backend nests the arena
// and a two-element team list: slot 0 is the home team, slot 1 the away team.
type Match struct {
	ID         string `json:"id"`
	DateTime   string `json:"dateTime"`
	Tournament string `json:"tournamentName"`
	Arena      *Arena `json:"arenaDto,omitempty"`
	Teams      []Team `json:"teamDtoWithPlayersList,omitempty"`
}

// ArenaRequest is the create/update payload for an arena.
type ArenaRequest struct {
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

// TeamRequest is the create/update payload for a team.
type TeamRequest struct {
	Name    string `json:"teamName"`
	Country string `json:"country"`
}

// PlayerRequest is the create/update payload for a player. TeamID travels as
// a query parameter, not in the body.
type PlayerRequest struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Country string `json:"country,omitempty"`
	TeamID  string `json:"-"`
}

// MatchRequest is the create payload for a match. DateTime is a naive local
// timestamp string.
type MatchRequest struct {
	DateTime   string `json:"dateTime"`
	Tournament string `json:"tournamentName"`
	ArenaID    string `json:"arenaId"`
	HomeTeamID string `json:"homeTeamId"`
	AwayTeamID string `json:"awayTeamId"`
}

// MatchUpdateRequest is the field-replace payload for a match. Only the
// tournament label is mutated this way; every other association has its own
// call.
type MatchUpdateRequest struct {
	Tournament string `json:"tournamentName"`
}
