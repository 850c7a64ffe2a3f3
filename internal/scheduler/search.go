package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/everolfe/matchday/internal/domain"
)

// Default capacity bounds applied when a capacity search omits one side.
const (
	defaultMinCapacity = 0
	defaultMaxCapacity = 100000
)

// SearchMatchesByTournament runs a server-side case-insensitive substring
// search over tournament labels. A blank query is rejected before any remote
// call.
func (s *Scheduler) SearchMatchesByTournament(ctx context.Context, query string) ([]domain.Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	s.metrics.IncSearches()
	wire, err := s.client.SearchMatchesByTournament(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("tournament search: %w", err)
	}
	return mapMatches(wire), nil
}

// SearchMatchesByDateRange runs a server-side date-range search. At least one
// bound is required. The start bound is widened to the first instant of its
// calendar day, the end bound to the last; both are inclusive. A missing
// bound leaves that side unconstrained.
func (s *Scheduler) SearchMatchesByDateRange(ctx context.Context, from, to *time.Time) ([]domain.Match, error) {
	if from == nil && to == nil {
		return nil, domain.ErrEmptyRange
	}
	var start, end string
	if from != nil {
		start = domain.FormatLocalTime(domain.DayStart(*from))
	}
	if to != nil {
		end = domain.FormatLocalTime(domain.DayEnd(*to))
	}
	s.metrics.IncSearches()
	wire, err := s.client.SearchMatchesByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("date-range search: %w", err)
	}
	return mapMatches(wire), nil
}

// SearchArenasByCapacity returns arenas whose capacity lies in the inclusive
// range. Omitted bounds default to 0 and 100000.
func (s *Scheduler) SearchArenasByCapacity(ctx context.Context, minCapacity, maxCapacity *int) ([]domain.Arena, error) {
	lo, hi := defaultMinCapacity, defaultMaxCapacity
	if minCapacity != nil {
		lo = *minCapacity
	}
	if maxCapacity != nil {
		hi = *maxCapacity
	}
	s.metrics.IncSearches()
	wire, err := s.client.SearchArenasByCapacity(ctx, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("capacity search: %w", err)
	}
	return mapArenas(wire), nil
}

// SearchPlayersByAge returns players of exactly the given age.
func (s *Scheduler) SearchPlayersByAge(ctx context.Context, age int) ([]domain.Player, error) {
	if age <= 0 {
		return nil, &domain.InvalidValueError{Field: "age", Reason: "must be a positive integer"}
	}
	s.metrics.IncSearches()
	wire, err := s.client.SearchPlayersByAge(ctx, age)
	if err != nil {
		return nil, fmt.Errorf("age search: %w", err)
	}
	return mapPlayers(wire), nil
}
