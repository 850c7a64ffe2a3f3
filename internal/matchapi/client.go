package matchapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// HTTPClient talks to the fixtures backend over its REST surface.
type HTTPClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) Client {
	return &HTTPClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

var _ Client = (*HTTPClient)(nil)

// apiError is the backend's error envelope.
type apiError struct {
	Message string `json:"message"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug("Calling fixtures backend", "method", method, "url", u)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		var envelope apiError
		if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
			return fmt.Errorf("backend returned %d: %s", resp.StatusCode, envelope.Message)
		}
		log.Error("Received non-OK HTTP status from fixtures backend", "status", resp.StatusCode, "body", string(raw))
		return fmt.Errorf("backend returned %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// --- Arenas ---

func (c *HTTPClient) ListArenas(ctx context.Context) ([]Arena, error) {
	var arenas []Arena
	if err := c.do(ctx, http.MethodGet, "/arenas", nil, nil, &arenas); err != nil {
		return nil, fmt.Errorf("error listing arenas: %w", err)
	}
	return arenas, nil
}

func (c *HTTPClient) SearchArenasByCapacity(ctx context.Context, minCapacity, maxCapacity int) ([]Arena, error) {
	query := url.Values{
		"minCapacity": {strconv.Itoa(minCapacity)},
		"maxCapacity": {strconv.Itoa(maxCapacity)},
	}
	var arenas []Arena
	if err := c.do(ctx, http.MethodGet, "/arenas/search", query, nil, &arenas); err != nil {
		return nil, fmt.Errorf("error searching arenas by capacity: %w", err)
	}
	return arenas, nil
}

func (c *HTTPClient) CreateArena(ctx context.Context, req ArenaRequest) (Arena, error) {
	var arena Arena
	if err := c.do(ctx, http.MethodPost, "/arenas/create", nil, req, &arena); err != nil {
		return Arena{}, fmt.Errorf("error creating arena: %w", err)
	}
	return arena, nil
}

func (c *HTTPClient) UpdateArena(ctx context.Context, id string, req ArenaRequest) (Arena, error) {
	var arena Arena
	if err := c.do(ctx, http.MethodPut, "/arenas/"+id, nil, req, &arena); err != nil {
		return Arena{}, fmt.Errorf("error updating arena %s: %w", id, err)
	}
	return arena, nil
}

func (c *HTTPClient) DeleteArena(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/arenas/"+id, nil, nil, nil); err != nil {
		return fmt.Errorf("error deleting arena %s: %w", id, err)
	}
	return nil
}

// --- Teams ---

func (c *HTTPClient) ListTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := c.do(ctx, http.MethodGet, "/teams", nil, nil, &teams); err != nil {
		return nil, fmt.Errorf("error listing teams: %w", err)
	}
	return teams, nil
}

func (c *HTTPClient) CreateTeam(ctx context.Context, req TeamRequest) (Team, error) {
	var team Team
	if err := c.do(ctx, http.MethodPost, "/teams/create", nil, req, &team); err != nil {
		return Team{}, fmt.Errorf("error creating team: %w", err)
	}
	return team, nil
}

func (c *HTTPClient) CreateTeamsBulk(ctx context.Context, reqs []TeamRequest) ([]Team, error) {
	var teams []Team
	if err := c.do(ctx, http.MethodPost, "/teams/bulk", nil, reqs, &teams); err != nil {
		return nil, fmt.Errorf("error creating teams in bulk: %w", err)
	}
	return teams, nil
}

func (c *HTTPClient) UpdateTeam(ctx context.Context, id string, req TeamRequest) (Team, error) {
	var team Team
	if err := c.do(ctx, http.MethodPut, "/teams/"+id, nil, req, &team); err != nil {
		return Team{}, fmt.Errorf("error updating team %s: %w", id, err)
	}
	return team, nil
}

func (c *HTTPClient) DeleteTeam(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/teams/"+id, nil, nil, nil); err != nil {
		return fmt.Errorf("error deleting team %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) AddPlayerToTeam(ctx context.Context, teamID, playerID string) (Team, error) {
	query := url.Values{"playerId": {playerID}}
	var team Team
	if err := c.do(ctx, http.MethodPatch, "/teams/"+teamID+"/add-player", query, nil, &team); err != nil {
		return Team{}, fmt.Errorf("error adding player %s to team %s: %w", playerID, teamID, err)
	}
	return team, nil
}

func (c *HTTPClient) RemovePlayerFromTeam(ctx context.Context, teamID, playerID string) (Team, error) {
	query := url.Values{"playerId": {playerID}}
	var team Team
	if err := c.do(ctx, http.MethodPatch, "/teams/"+teamID+"/remove-player", query, nil, &team); err != nil {
		return Team{}, fmt.Errorf("error removing player %s from team %s: %w", playerID, teamID, err)
	}
	return team, nil
}

// --- Players ---

func (c *HTTPClient) ListPlayers(ctx context.Context) ([]Player, error) {
	var players []Player
	if err := c.do(ctx, http.MethodGet, "/players", nil, nil, &players); err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
	}
	return players, nil
}

func (c *HTTPClient) SearchPlayersByAge(ctx context.Context, age int) ([]Player, error) {
	query := url.Values{"age": {strconv.Itoa(age)}}
	var players []Player
	if err := c.do(ctx, http.MethodGet, "/players/search", query, nil, &players); err != nil {
		return nil, fmt.Errorf("error searching players by age: %w", err)
	}
	return players, nil
}

func (c *HTTPClient) CreatePlayer(ctx context.Context, req PlayerRequest) (Player, error) {
	// Team affiliation travels as a query parameter, not in the body.
	var query url.Values
	if req.TeamID != "" {
		query = url.Values{"teamId": {req.TeamID}}
	}
	var player Player
	if err := c.do(ctx, http.MethodPost, "/players/create", query, req, &player); err != nil {
		return Player{}, fmt.Errorf("error creating player: %w", err)
	}
	return player, nil
}

func (c *HTTPClient) UpdatePlayer(ctx context.Context, id string, req PlayerRequest) (Player, error) {
	var query url.Values
	if req.TeamID != "" {
		query = url.Values{"teamId": {req.TeamID}}
	}
	var player Player
	if err := c.do(ctx, http.MethodPut, "/players/"+id, query, req, &player); err != nil {
		return Player{}, fmt.Errorf("error updating player %s: %w", id, err)
	}
	return player, nil
}

func (c *HTTPClient) DeletePlayer(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/players/"+id, nil, nil, nil); err != nil {
		return fmt.Errorf("error deleting player %s: %w", id, err)
	}
	return nil
}

// --- Matches ---

func (c *HTTPClient) ListMatches(ctx context.Context) ([]Match, error) {
	var matches []Match
	if err := c.do(ctx, http.MethodGet, "/matches", nil, nil, &matches); err != nil {
		return nil, fmt.Errorf("error listing matches: %w", err)
	}
	log.Debug("Fetched matches", "count", len(matches))
	return matches, nil
}

func (c *HTTPClient) SearchMatchesByTournament(ctx context.Context, tournament string) ([]Match, error) {
	query := url.Values{"tournament": {tournament}}
	var matches []Match
	if err := c.do(ctx, http.MethodGet, "/matches/search", query, nil, &matches); err != nil {
		return nil, fmt.Errorf("error searching matches by tournament: %w", err)
	}
	return matches, nil
}

// SearchMatchesByDateRange accepts naive local timestamp strings; an empty
// bound leaves that side unconstrained.
func (c *HTTPClient) SearchMatchesByDateRange(ctx context.Context, startDate, endDate string) ([]Match, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}
	var matches []Match
	if err := c.do(ctx, http.MethodGet, "/matches/search/by-date", query, nil, &matches); err != nil {
		return nil, fmt.Errorf("error searching matches by date range: %w", err)
	}
	return matches, nil
}

func (c *HTTPClient) CreateMatch(ctx context.Context, req MatchRequest) (Match, error) {
	var match Match
	if err := c.do(ctx, http.MethodPost, "/matches/create", nil, req, &match); err != nil {
		return Match{}, fmt.Errorf("error creating match: %w", err)
	}
	return match, nil
}

func (c *HTTPClient) UpdateMatch(ctx context.Context, id string, req MatchUpdateRequest) (Match, error) {
	var match Match
	if err := c.do(ctx, http.MethodPut, "/matches/"+id, nil, req, &match); err != nil {
		return Match{}, fmt.Errorf("error updating match %s: %w", id, err)
	}
	return match, nil
}

func (c *HTTPClient) DeleteMatch(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/matches/"+id, nil, nil, nil); err != nil {
		return fmt.Errorf("error deleting match %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) SetMatchArena(ctx context.Context, matchID, arenaID string) (Match, error) {
	query := url.Values{"arenaId": {arenaID}}
	var match Match
	if err := c.do(ctx, http.MethodPatch, "/matches/"+matchID+"/set-arena", query, nil, &match); err != nil {
		return Match{}, fmt.Errorf("error setting arena for match %s: %w", matchID, err)
	}
	return match, nil
}

func (c *HTTPClient) SetMatchTime(ctx context.Context, matchID, localDateTime string) (Match, error) {
	query := url.Values{"time": {localDateTime}}
	var match Match
	if err := c.do(ctx, http.MethodPatch, "/matches/"+matchID+"/set-time", query, nil, &match); err != nil {
		return Match{}, fmt.Errorf("error setting time for match %s: %w", matchID, err)
	}
	return match, nil
}

func (c *HTTPClient) AddTeamToMatch(ctx context.Context, matchID, teamID string) (Match, error) {
	query := url.Values{"teamId": {teamID}}
	var match Match
	if err := c.do(ctx, http.MethodPatch, "/matches/"+matchID+"/add-team", query, nil, &match); err != nil {
		return Match{}, fmt.Errorf("error adding team %s to match %s: %w", teamID, matchID, err)
	}
	return match, nil
}

func (c *HTTPClient) RemoveTeamFromMatch(ctx context.Context, matchID, teamID string) (Match, error) {
	query := url.Values{"teamId": {teamID}}
	var match Match
	if err := c.do(ctx, http.MethodPatch, "/matches/"+matchID+"/remove-team", query, nil, &match); err != nil {
		return Match{}, fmt.Errorf("error removing team %s from match %s: %w", teamID, matchID, err)
	}
	return match, nil
}
