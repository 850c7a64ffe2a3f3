package domain

import "strings"

// Local text filters. These run client-side after retrieval, are additive
// with any server-side filter already applied and are never persisted.

func containsFold(field, term string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(term))
}

// FilterArenas keeps arenas whose city contains term, case-insensitively.
// A blank term keeps everything.
func FilterArenas(arenas []Arena, term string) []Arena {
	if strings.TrimSpace(term) == "" {
		return arenas
	}
	var out []Arena
	for _, a := range arenas {
		if containsFold(a.City, term) {
			out = append(out, a)
		}
	}
	return out
}

// FilterTeams keeps teams whose name or country contains term.
func FilterTeams(teams []Team, term string) []Team {
	if strings.TrimSpace(term) == "" {
		return teams
	}
	var out []Team
	for _, t := range teams {
		if containsFold(t.Name, term) || containsFold(t.Country, term) {
			out = append(out, t)
		}
	}
	return out
}

// FilterPlayers keeps players whose name or country contains term.
func FilterPlayers(players []Player, term string) []Player {
	if strings.TrimSpace(term) == "" {
		return players
	}
	var out []Player
	for _, p := range players {
		if containsFold(p.Name, term) || containsFold(p.Country, term) {
			out = append(out, p)
		}
	}
	return out
}

// FilterMatches keeps matches whose tournament label contains term, or whose
// arena city or either team name does according to the supplied lookups. Nil
// lookups are skipped.
func FilterMatches(matches []Match, term string, arenaByID map[string]Arena, teamByID map[string]Team) []Match {
	if strings.TrimSpace(term) == "" {
		return matches
	}
	var out []Match
	for _, m := range matches {
		if containsFold(m.Tournament, term) {
			out = append(out, m)
			continue
		}
		if arenaByID != nil {
			if a, ok := arenaByID[m.ArenaID]; ok && containsFold(a.City, term) {
				out = append(out, m)
				continue
			}
		}
		if teamByID != nil {
			home, hasHome := teamByID[m.HomeTeamID]
			away, hasAway := teamByID[m.AwayTeamID]
			if (hasHome && containsFold(home.Name, term)) || (hasAway && containsFold(away.Name, term)) {
				out = append(out, m)
			}
		}
	}
	return out
}
