package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/everolfe/matchday/internal/matchapi"
	"golang.org/x/sync/errgroup"
)

// Refresh reloads every collection from the backend. The four list calls run
// concurrently; the swap only happens once all four have succeeded, so a
// failed refresh leaves the previous state intact. Unresolved provisional
// entries survive the swap.
func (s *Scheduler) Refresh(ctx context.Context) error {
	var (
		wireArenas  []matchapi.Arena
		wireTeams   []matchapi.Team
		wirePlayers []matchapi.Player
		wireMatches []matchapi.Match
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		wireArenas, err = s.client.ListArenas(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		wireTeams, err = s.client.ListTeams(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		wirePlayers, err = s.client.ListPlayers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		wireMatches, err = s.client.ListMatches(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}

	arenas := mapArenas(wireArenas)
	teams := mapTeams(wireTeams)
	players := mapPlayers(wirePlayers)
	matches := mapMatches(wireMatches)

	s.arenas.ReplaceAll(arenas)
	s.teams.ReplaceAll(teams)
	s.players.ReplaceAll(players)
	s.matches.ReplaceAll(matches)

	s.persistSnapshot(arenas, teams, players, matches)
	s.metrics.IncRefreshRuns()
	log.Info("Collections refreshed",
		"arenas", len(arenas), "teams", len(teams), "players", len(players), "matches", len(matches))
	return nil
}

// persistSnapshot writes the authoritative lists to the local snapshot store.
// Persistence is best effort: the in-memory collections are already current,
// so a write failure is logged and the refresh still counts.
func (s *Scheduler) persistSnapshot(arenas []domain.Arena, teams []domain.Team, players []domain.Player, matches []domain.Match) {
	if s.snapshot == nil {
		return
	}
	// Insert order follows the foreign keys on the snapshot tables.
	if err := s.snapshot.ReplaceArenas(arenas); err != nil {
		log.Error("Failed to persist arenas snapshot", "error", err)
		return
	}
	if err := s.snapshot.ReplaceTeams(teams); err != nil {
		log.Error("Failed to persist teams snapshot", "error", err)
		return
	}
	if err := s.snapshot.ReplacePlayers(players); err != nil {
		log.Error("Failed to persist players snapshot", "error", err)
		return
	}
	if err := s.snapshot.ReplaceMatches(matches); err != nil {
		log.Error("Failed to persist matches snapshot", "error", err)
		return
	}
	if err := s.snapshot.SetRefreshedAt(time.Now()); err != nil {
		log.Error("Failed to record snapshot timestamp", "error", err)
	}
}

// ClearSnapshot wipes the persisted snapshot. The in-memory collections are
// untouched; the next refresh repopulates the store.
func (s *Scheduler) ClearSnapshot() error {
	if s.snapshot == nil {
		return nil
	}
	return s.snapshot.Clear()
}

// LoadFromSnapshot seeds the collections from the local snapshot store.
// Used at startup so listings are available before the first backend refresh
// completes, and as a fallback when the backend is unreachable.
func (s *Scheduler) LoadFromSnapshot() error {
	if s.snapshot == nil {
		return nil
	}
	_, ok, err := s.snapshot.RefreshedAt()
	if err != nil {
		return fmt.Errorf("read snapshot timestamp: %w", err)
	}
	if !ok {
		return nil
	}

	arenas, err := s.snapshot.GetArenas()
	if err != nil {
		return fmt.Errorf("load arenas snapshot: %w", err)
	}
	teams, err := s.snapshot.GetTeams()
	if err != nil {
		return fmt.Errorf("load teams snapshot: %w", err)
	}
	players, err := s.snapshot.GetPlayers()
	if err != nil {
		return fmt.Errorf("load players snapshot: %w", err)
	}
	matches, err := s.snapshot.GetMatches()
	if err != nil {
		return fmt.Errorf("load matches snapshot: %w", err)
	}

	s.arenas.ReplaceAll(arenas)
	s.teams.ReplaceAll(teams)
	s.players.ReplaceAll(players)
	s.matches.ReplaceAll(matches)
	log.Info("Collections loaded from snapshot",
		"arenas", len(arenas), "teams", len(teams), "players", len(players), "matches", len(matches))
	return nil
}
