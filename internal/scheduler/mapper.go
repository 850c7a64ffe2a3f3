package scheduler

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/matchapi"
)

// Mapping from the backend's wire shapes to domain entities. The backend
// nests the arena and a two-element team list on a match: slot 0 is the home
// team, slot 1 the away team.

func mapArena(w matchapi.Arena) domain.Arena {
	return domain.Arena{
		ID:       w.ID,
		City:     w.City,
		Capacity: w.Capacity,
	}
}

func mapArenas(ws []matchapi.Arena) []domain.Arena {
	out := make([]domain.Arena, 0, len(ws))
	for _, w := range ws {
		out = append(out, mapArena(w))
	}
	return out
}

func mapPlayer(w matchapi.Player) domain.Player {
	return domain.Player{
		ID:      w.ID,
		Name:    w.Name,
		Age:     w.Age,
		Country: w.Country,
		TeamID:  w.TeamID,
	}
}

func mapPlayers(ws []matchapi.Player) []domain.Player {
	out := make([]domain.Player, 0, len(ws))
	for _, w := range ws {
		out = append(out, mapPlayer(w))
	}
	return out
}

func mapTeam(w matchapi.Team) domain.Team {
	team := domain.Team{
		ID:      w.ID,
		Name:    w.Name,
		Country: w.Country,
	}
	for _, p := range w.Players {
		team.PlayerIDs = append(team.PlayerIDs, p.ID)
	}
	return team
}

func mapTeams(ws []matchapi.Team) []domain.Team {
	out := make([]domain.Team, 0, len(ws))
	for _, w := range ws {
		out = append(out, mapTeam(w))
	}
	return out
}

func mapMatch(w matchapi.Match) (domain.Match, error) {
	kickoff, err := domain.ParseLocalTime(w.DateTime)
	if err != nil {
		return domain.Match{}, fmt.Errorf("match %s has unparseable dateTime %q: %w", w.ID, w.DateTime, err)
	}
	match := domain.Match{
		ID:         w.ID,
		Kickoff:    kickoff,
		Tournament: domain.NormalizeTournament(w.Tournament),
	}
	if w.Arena != nil {
		match.ArenaID = w.Arena.ID
	}
	if len(w.Teams) > 0 {
		match.HomeTeamID = w.Teams[0].ID
	}
	if len(w.Teams) > 1 {
		match.AwayTeamID = w.Teams[1].ID
	}
	return match, nil
}

// mapMatches drops records it cannot map rather than failing the whole
// listing.
func mapMatches(ws []matchapi.Match) []domain.Match {
	out := make([]domain.Match, 0, len(ws))
	for _, w := range ws {
		match, err := mapMatch(w)
		if err != nil {
			log.Error("Skipping unmappable match", "error", err)
			continue
		}
		out = append(out, match)
	}
	return out
}
