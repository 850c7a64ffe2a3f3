package scheduler

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
)

// Roster moves. A player belongs to at most one team, so moving an already
// affiliated player issues a removal from the old team strictly before the
// addition to the new one. The two calls share no transaction: if the add
// fails after the remove, the player is left unaffiliated server-side and the
// error says so; no compensating re-add is attempted.

// AssignPlayerToTeam puts a player on a team, detaching them from their
// current team first when needed.
func (s *Scheduler) AssignPlayerToTeam(ctx context.Context, playerID, teamID string) (domain.Team, error) {
	player, ok := s.players.Get(playerID)
	if !ok {
		return domain.Team{}, ErrUnknownPlayer
	}
	team, ok := s.teams.Get(teamID)
	if !ok {
		return domain.Team{}, ErrUnknownTeam
	}
	if player.TeamID == teamID {
		return team, nil
	}

	if player.TeamID != "" {
		if _, err := s.client.RemovePlayerFromTeam(ctx, player.TeamID, playerID); err != nil {
			return domain.Team{}, &domain.RemoteOpError{Op: "update", Entity: "team", Err: err}
		}
	}

	updated, err := s.client.AddPlayerToTeam(ctx, teamID, playerID)
	if err != nil {
		return domain.Team{}, &domain.RemoteOpError{Op: "update", Entity: "team", Err: err}
	}

	authoritative := mapTeam(updated)
	s.applyRosterMove(playerID, player.TeamID, authoritative)
	return authoritative, nil
}

// RemovePlayerFromTeam detaches a player from a team, leaving them
// unaffiliated.
func (s *Scheduler) RemovePlayerFromTeam(ctx context.Context, teamID, playerID string) (domain.Team, error) {
	player, ok := s.players.Get(playerID)
	if !ok {
		return domain.Team{}, ErrUnknownPlayer
	}
	if _, ok := s.teams.Get(teamID); !ok {
		return domain.Team{}, ErrUnknownTeam
	}

	updated, err := s.client.RemovePlayerFromTeam(ctx, teamID, playerID)
	if err != nil {
		return domain.Team{}, &domain.RemoteOpError{Op: "update", Entity: "team", Err: err}
	}

	authoritative := mapTeam(updated)
	s.teams.Upsert(authoritative)
	player.TeamID = ""
	s.players.Upsert(player)
	return authoritative, nil
}

// applyRosterMove patches the local collections after a confirmed move: the
// new team record is authoritative, the old team loses the player, and the
// player's back-reference flips.
func (s *Scheduler) applyRosterMove(playerID, oldTeamID string, newTeam domain.Team) {
	s.teams.Upsert(newTeam)

	if oldTeamID != "" {
		if old, ok := s.teams.Get(oldTeamID); ok {
			kept := old.PlayerIDs[:0:0]
			for _, id := range old.PlayerIDs {
				if id != playerID {
					kept = append(kept, id)
				}
			}
			old.PlayerIDs = kept
			s.teams.Upsert(old)
		}
	}

	player, ok := s.players.Get(playerID)
	if !ok {
		log.Warn("Moved player missing from collection", "playerID", playerID)
		return
	}
	player.TeamID = newTeam.ID
	s.players.Upsert(player)
}
