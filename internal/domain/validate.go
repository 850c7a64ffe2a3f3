package domain

import "strings"

// ValidateMatchDraft checks a match draft before any remote call is issued.
// The returned match carries the normalized tournament label and no ID.
func ValidateMatchDraft(draft MatchDraft) (Match, error) {
	if draft.Kickoff == nil {
		return Match{}, &MissingFieldError{Field: "dateTime"}
	}
	if draft.ArenaID == "" {
		return Match{}, &MissingFieldError{Field: "arenaId"}
	}
	if draft.HomeTeamID == "" {
		return Match{}, &MissingFieldError{Field: "homeTeamId"}
	}
	if draft.AwayTeamID == "" {
		return Match{}, &MissingFieldError{Field: "awayTeamId"}
	}
	if draft.HomeTeamID == draft.AwayTeamID {
		return Match{}, ErrDuplicateTeamSlot
	}
	return Match{
		Kickoff:    *draft.Kickoff,
		Tournament: NormalizeTournament(draft.Tournament),
		ArenaID:    draft.ArenaID,
		HomeTeamID: draft.HomeTeamID,
		AwayTeamID: draft.AwayTeamID,
	}, nil
}

// ValidateArenaDraft checks an arena draft.
func ValidateArenaDraft(draft ArenaDraft) (Arena, error) {
	if strings.TrimSpace(draft.City) == "" {
		return Arena{}, &MissingFieldError{Field: "city"}
	}
	if draft.Capacity == nil {
		return Arena{}, &MissingFieldError{Field: "capacity"}
	}
	if *draft.Capacity < 0 {
		return Arena{}, &InvalidValueError{Field: "capacity", Reason: "must not be negative"}
	}
	return Arena{City: strings.TrimSpace(draft.City), Capacity: *draft.Capacity}, nil
}

// ValidateTeamDraft checks a team draft.
func ValidateTeamDraft(draft TeamDraft) (Team, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return Team{}, &MissingFieldError{Field: "teamName"}
	}
	if strings.TrimSpace(draft.Country) == "" {
		return Team{}, &MissingFieldError{Field: "country"}
	}
	return Team{Name: strings.TrimSpace(draft.Name), Country: strings.TrimSpace(draft.Country)}, nil
}

// ValidatePlayerDraft checks a player draft.
func ValidatePlayerDraft(draft PlayerDraft) (Player, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return Player{}, &MissingFieldError{Field: "name"}
	}
	if draft.Age == nil {
		return Player{}, &MissingFieldError{Field: "age"}
	}
	if *draft.Age <= 0 {
		return Player{}, &InvalidValueError{Field: "age", Reason: "must be a positive integer"}
	}
	return Player{
		Name:    strings.TrimSpace(draft.Name),
		Age:     *draft.Age,
		Country: strings.TrimSpace(draft.Country),
		TeamID:  draft.TeamID,
	}, nil
}
