package scheduler

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/matchapi"
	"github.com/everolfe/matchday/internal/pubsub"
)

// Optimistic creation. Every create follows the same discipline: validate
// locally (no remote call on failure), insert a provisional record, issue the
// remote create, then resolve the provisional entry with the authoritative
// record or drop it so the collection returns to its exact pre-call state.

// CreateArena creates an arena optimistically.
func (s *Scheduler) CreateArena(ctx context.Context, draft domain.ArenaDraft) (domain.Arena, error) {
	arena, err := domain.ValidateArenaDraft(draft)
	if err != nil {
		return domain.Arena{}, err
	}

	s.metrics.IncOptimisticCreates()
	provID := s.arenas.InsertProvisional(arena)

	created, err := s.client.CreateArena(ctx, matchapi.ArenaRequest{City: arena.City, Capacity: arena.Capacity})
	if err != nil {
		s.arenas.Drop(provID)
		s.metrics.IncOptimisticRollbacks()
		s.notifyCreateFailure("arena", arena.City, err)
		return domain.Arena{}, &domain.RemoteOpError{Op: "create", Entity: "arena", Err: err}
	}

	authoritative := mapArena(created)
	s.arenas.Resolve(provID, authoritative)
	return authoritative, nil
}

// CreateTeam creates a team optimistically.
func (s *Scheduler) CreateTeam(ctx context.Context, draft domain.TeamDraft) (domain.Team, error) {
	team, err := domain.ValidateTeamDraft(draft)
	if err != nil {
		return domain.Team{}, err
	}

	s.metrics.IncOptimisticCreates()
	provID := s.teams.InsertProvisional(team)

	created, err := s.client.CreateTeam(ctx, matchapi.TeamRequest{Name: team.Name, Country: team.Country})
	if err != nil {
		s.teams.Drop(provID)
		s.metrics.IncOptimisticRollbacks()
		s.notifyCreateFailure("team", team.Name, err)
		return domain.Team{}, &domain.RemoteOpError{Op: "create", Entity: "team", Err: err}
	}

	authoritative := mapTeam(created)
	s.teams.Resolve(provID, authoritative)
	return authoritative, nil
}

// CreateTeamsBulk creates several teams in one backend call. All drafts are
// validated before any remote call; one bad draft fails the whole batch.
func (s *Scheduler) CreateTeamsBulk(ctx context.Context, drafts []domain.TeamDraft) ([]domain.Team, error) {
	teams := make([]domain.Team, 0, len(drafts))
	reqs := make([]matchapi.TeamRequest, 0, len(drafts))
	for _, draft := range drafts {
		team, err := domain.ValidateTeamDraft(draft)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
		reqs = append(reqs, matchapi.TeamRequest{Name: team.Name, Country: team.Country})
	}

	provIDs := make([]string, len(teams))
	for i, team := range teams {
		s.metrics.IncOptimisticCreates()
		provIDs[i] = s.teams.InsertProvisional(team)
	}

	created, err := s.client.CreateTeamsBulk(ctx, reqs)
	if err != nil {
		for _, provID := range provIDs {
			s.teams.Drop(provID)
			s.metrics.IncOptimisticRollbacks()
		}
		s.notifyCreateFailure("team", fmt.Sprintf("%d teams", len(teams)), err)
		return nil, &domain.RemoteOpError{Op: "create", Entity: "team", Err: err}
	}

	// The backend returns created teams in request order.
	out := make([]domain.Team, 0, len(created))
	for i, wire := range created {
		authoritative := mapTeam(wire)
		if i < len(provIDs) {
			s.teams.Resolve(provIDs[i], authoritative)
		} else {
			s.teams.Upsert(authoritative)
		}
		out = append(out, authoritative)
	}
	if len(created) < len(provIDs) {
		log.Warn("Bulk create returned fewer teams than requested",
			"requested", len(provIDs), "returned", len(created))
		for _, provID := range provIDs[len(created):] {
			s.teams.Drop(provID)
		}
	}
	return out, nil
}

// CreatePlayer creates a player optimistically. The target team, when named,
// must be loaded.
func (s *Scheduler) CreatePlayer(ctx context.Context, draft domain.PlayerDraft) (domain.Player, error) {
	player, err := domain.ValidatePlayerDraft(draft)
	if err != nil {
		return domain.Player{}, err
	}
	if player.TeamID != "" {
		if _, ok := s.teams.Get(player.TeamID); !ok {
			return domain.Player{}, ErrUnknownTeam
		}
	}

	s.metrics.IncOptimisticCreates()
	provID := s.players.InsertProvisional(player)

	created, err := s.client.CreatePlayer(ctx, matchapi.PlayerRequest{
		Name:    player.Name,
		Age:     player.Age,
		Country: player.Country,
		TeamID:  player.TeamID,
	})
	if err != nil {
		s.players.Drop(provID)
		s.metrics.IncOptimisticRollbacks()
		s.notifyCreateFailure("player", player.Name, err)
		return domain.Player{}, &domain.RemoteOpError{Op: "create", Entity: "player", Err: err}
	}

	authoritative := mapPlayer(created)
	s.players.Resolve(provID, authoritative)
	return authoritative, nil
}

// CreateMatch creates a match optimistically. The referenced arena and teams
// must exist in the loaded collections before any remote call is issued.
func (s *Scheduler) CreateMatch(ctx context.Context, draft domain.MatchDraft) (domain.Match, error) {
	match, err := domain.ValidateMatchDraft(draft)
	if err != nil {
		return domain.Match{}, err
	}
	if _, ok := s.arenas.Get(match.ArenaID); !ok {
		return domain.Match{}, ErrUnknownArena
	}
	if _, ok := s.teams.Get(match.HomeTeamID); !ok {
		return domain.Match{}, ErrUnknownTeam
	}
	if _, ok := s.teams.Get(match.AwayTeamID); !ok {
		return domain.Match{}, ErrUnknownTeam
	}

	s.metrics.IncOptimisticCreates()
	provID := s.matches.InsertProvisional(match)

	created, err := s.client.CreateMatch(ctx, matchapi.MatchRequest{
		DateTime:   domain.FormatLocalTime(match.Kickoff),
		Tournament: match.Tournament,
		ArenaID:    match.ArenaID,
		HomeTeamID: match.HomeTeamID,
		AwayTeamID: match.AwayTeamID,
	})
	if err != nil {
		s.matches.Drop(provID)
		s.metrics.IncOptimisticRollbacks()
		s.notifyCreateFailure("match", matchLabel(s, match), err)
		return domain.Match{}, &domain.RemoteOpError{Op: "create", Entity: "match", Err: err}
	}

	authoritative, mapErr := mapMatch(created)
	if mapErr != nil {
		// Keep the optimistic record in place; the next refresh reconciles.
		log.Error("Created match has unmappable response", "error", mapErr)
		authoritative = match
		authoritative.ID = created.ID
	}
	s.matches.Resolve(provID, authoritative)
	s.publish(pubsub.EventMatchCreated, matchEvent(authoritative))
	s.notifyMatchScheduled(authoritative)
	return authoritative, nil
}

// matchLabel renders a human-readable identity for a match draft, used in
// failure notifications.
func matchLabel(s *Scheduler, m domain.Match) string {
	home, away := m.HomeTeamID, m.AwayTeamID
	if team, ok := s.teams.Get(m.HomeTeamID); ok {
		home = team.Name
	}
	if team, ok := s.teams.Get(m.AwayTeamID); ok {
		away = team.Name
	}
	return fmt.Sprintf("%s vs %s", home, away)
}
