package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/matchapi"
	"github.com/everolfe/matchday/internal/pubsub"
	"github.com/everolfe/matchday/internal/syncer"
)

// EditMatch reconciles a match's associated state with the draft. The draft
// is validated like a create; the plan is the minimal ordered call sequence
// that moves the match from its current state to the desired one. In dry-run
// mode the plan is returned without touching the backend.
//
// After a fully applied plan the collections are reloaded from the backend;
// the multi-call result is never patched together locally. A partially
// applied plan leaves the server holding a prefix of the desired state: the
// failure is reported as a *syncer.PartialSyncFailure, published on the
// sync-failed topic and surfaced via the notifier, and the collections are
// reloaded so callers see exactly what was committed. No compensating calls
// are issued.
func (s *Scheduler) EditMatch(ctx context.Context, matchID string, draft domain.MatchDraft, dryRun bool) (EditResult, error) {
	current, ok := s.matches.Get(matchID)
	if !ok {
		return EditResult{}, ErrUnknownMatch
	}

	desired, err := domain.ValidateMatchDraft(draft)
	if err != nil {
		return EditResult{}, err
	}
	if _, ok := s.arenas.Get(desired.ArenaID); !ok {
		return EditResult{}, ErrUnknownArena
	}
	if _, ok := s.teams.Get(desired.HomeTeamID); !ok {
		return EditResult{}, ErrUnknownTeam
	}
	if _, ok := s.teams.Get(desired.AwayTeamID); !ok {
		return EditResult{}, ErrUnknownTeam
	}
	desired.ID = matchID

	plan := syncer.Plan(current, desired)
	if dryRun {
		log.Info("[Dry Run] Computed sync plan", "matchID", matchID, "steps", len(plan))
		return EditResult{Match: current, Plan: plan, DryRun: true}, nil
	}
	if len(plan) == 0 {
		return EditResult{Match: current}, nil
	}

	s.metrics.IncSyncRuns()
	start := time.Now()
	err = syncer.Apply(ctx, s.client, matchID, plan)
	s.metrics.ObserveSyncDuration(time.Since(start).Seconds())

	if err != nil {
		var partial *syncer.PartialSyncFailure
		if errors.As(err, &partial) {
			s.metrics.IncPartialSyncs()
			s.notifySyncFailure(partial)
			s.publish(pubsub.EventSyncFailed, syncFailedEvent(partial))
		}
		// Reload so callers see the committed prefix rather than stale state.
		if rerr := s.Refresh(ctx); rerr != nil {
			log.Error("Refresh after partial sync failed", "matchID", matchID, "error", rerr)
		}
		return EditResult{Plan: plan}, err
	}

	if err := s.Refresh(ctx); err != nil {
		return EditResult{Plan: plan}, err
	}
	updated, _ := s.matches.Get(matchID)
	s.publish(pubsub.EventMatchSynced, matchEvent(updated))
	return EditResult{Match: updated, Plan: plan}, nil
}

// UpdateArena replaces an arena's fields directly.
func (s *Scheduler) UpdateArena(ctx context.Context, id string, draft domain.ArenaDraft) (domain.Arena, error) {
	arena, err := domain.ValidateArenaDraft(draft)
	if err != nil {
		return domain.Arena{}, err
	}
	if _, ok := s.arenas.Get(id); !ok {
		return domain.Arena{}, ErrUnknownArena
	}

	updated, err := s.client.UpdateArena(ctx, id, matchapi.ArenaRequest{City: arena.City, Capacity: arena.Capacity})
	if err != nil {
		return domain.Arena{}, &domain.RemoteOpError{Op: "update", Entity: "arena", Err: err}
	}
	authoritative := mapArena(updated)
	s.arenas.Upsert(authoritative)
	return authoritative, nil
}

// UpdateTeam replaces a team's fields directly. The roster is managed through
// roster moves, not through this call.
func (s *Scheduler) UpdateTeam(ctx context.Context, id string, draft domain.TeamDraft) (domain.Team, error) {
	team, err := domain.ValidateTeamDraft(draft)
	if err != nil {
		return domain.Team{}, err
	}
	if _, ok := s.teams.Get(id); !ok {
		return domain.Team{}, ErrUnknownTeam
	}

	updated, err := s.client.UpdateTeam(ctx, id, matchapi.TeamRequest{Name: team.Name, Country: team.Country})
	if err != nil {
		return domain.Team{}, &domain.RemoteOpError{Op: "update", Entity: "team", Err: err}
	}
	authoritative := mapTeam(updated)
	s.teams.Upsert(authoritative)
	return authoritative, nil
}

// UpdatePlayer replaces a player's fields directly.
func (s *Scheduler) UpdatePlayer(ctx context.Context, id string, draft domain.PlayerDraft) (domain.Player, error) {
	player, err := domain.ValidatePlayerDraft(draft)
	if err != nil {
		return domain.Player{}, err
	}
	if _, ok := s.players.Get(id); !ok {
		return domain.Player{}, ErrUnknownPlayer
	}

	updated, err := s.client.UpdatePlayer(ctx, id, matchapi.PlayerRequest{
		Name:    player.Name,
		Age:     player.Age,
		Country: player.Country,
		TeamID:  player.TeamID,
	})
	if err != nil {
		return domain.Player{}, &domain.RemoteOpError{Op: "update", Entity: "player", Err: err}
	}
	authoritative := mapPlayer(updated)
	s.players.Upsert(authoritative)
	return authoritative, nil
}

// DeleteArena deletes an arena. Referential conflicts are the backend's call;
// a rejection is surfaced as a RemoteOpError.
func (s *Scheduler) DeleteArena(ctx context.Context, id string) error {
	if err := s.client.DeleteArena(ctx, id); err != nil {
		return &domain.RemoteOpError{Op: "delete", Entity: "arena", Err: err}
	}
	s.arenas.Remove(id)
	return nil
}

// DeleteTeam deletes a team.
func (s *Scheduler) DeleteTeam(ctx context.Context, id string) error {
	if err := s.client.DeleteTeam(ctx, id); err != nil {
		return &domain.RemoteOpError{Op: "delete", Entity: "team", Err: err}
	}
	s.teams.Remove(id)
	return nil
}

// DeletePlayer deletes a player.
func (s *Scheduler) DeletePlayer(ctx context.Context, id string) error {
	if err := s.client.DeletePlayer(ctx, id); err != nil {
		return &domain.RemoteOpError{Op: "delete", Entity: "player", Err: err}
	}
	s.players.Remove(id)
	return nil
}

// DeleteMatch deletes a match.
func (s *Scheduler) DeleteMatch(ctx context.Context, id string) error {
	if err := s.client.DeleteMatch(ctx, id); err != nil {
		return &domain.RemoteOpError{Op: "delete", Entity: "match", Err: err}
	}
	s.matches.Remove(id)
	return nil
}
