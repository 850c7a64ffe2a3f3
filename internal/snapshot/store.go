package snapshot

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
)

const refreshedAtKey = "refreshed_at"

// New creates a new snapshot Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

// nullable maps an empty string to NULL so optional references satisfy the
// foreign keys on the snapshot tables.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (s *store) ReplaceArenas(arenas []domain.Arena) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM arenas"); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO arenas (id, city, capacity) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, arena := range arenas {
		if _, err := stmt.Exec(arena.ID, arena.City, arena.Capacity); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *store) ReplaceTeams(teams []domain.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM teams"); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO teams (id, name, country, player_ids_json) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, team := range teams {
		playerIDsJSON, err := json.Marshal(team.PlayerIDs)
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err := stmt.Exec(team.ID, team.Name, team.Country, string(playerIDsJSON)); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *store) ReplacePlayers(players []domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM players"); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO players (id, name, age, country, team_id) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, player := range players {
		if _, err := stmt.Exec(player.ID, player.Name, player.Age, player.Country, nullable(player.TeamID)); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *store) ReplaceMatches(matches []domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO matches (id, kickoff, tournament_name, arena_id, home_team_id, away_team_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, match := range matches {
		_, err := stmt.Exec(
			match.ID,
			domain.FormatLocalTime(match.Kickoff),
			match.Tournament,
			nullable(match.ArenaID),
			nullable(match.HomeTeamID),
			nullable(match.AwayTeamID),
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *store) GetArenas() ([]domain.Arena, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, city, capacity FROM arenas")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var arenas []domain.Arena
	for rows.Next() {
		var arena domain.Arena
		if err := rows.Scan(&arena.ID, &arena.City, &arena.Capacity); err != nil {
			log.Error("Failed to scan arena row", "error", err)
			continue
		}
		arenas = append(arenas, arena)
	}
	return arenas, rows.Err()
}

func (s *store) GetTeams() ([]domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, country, player_ids_json FROM teams")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		var playerIDsJSON sql.NullString
		if err := rows.Scan(&team.ID, &team.Name, &team.Country, &playerIDsJSON); err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		if playerIDsJSON.Valid && playerIDsJSON.String != "" {
			if err := json.Unmarshal([]byte(playerIDsJSON.String), &team.PlayerIDs); err != nil {
				log.Error("Failed to unmarshal player_ids_json", "error", err, "teamID", team.ID)
			}
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

func (s *store) GetPlayers() ([]domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, age, country, team_id FROM players")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var player domain.Player
		var teamID sql.NullString
		if err := rows.Scan(&player.ID, &player.Name, &player.Age, &player.Country, &teamID); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		player.TeamID = teamID.String
		players = append(players, player)
	}
	return players, rows.Err()
}

func (s *store) GetMatches() ([]domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, kickoff, tournament_name, arena_id, home_team_id, away_team_id FROM matches")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var match domain.Match
		var kickoff string
		var arenaID, homeTeamID, awayTeamID sql.NullString
		if err := rows.Scan(&match.ID, &kickoff, &match.Tournament, &arenaID, &homeTeamID, &awayTeamID); err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		parsed, err := domain.ParseLocalTime(kickoff)
		if err != nil {
			log.Error("Failed to parse kickoff", "error", err, "matchID", match.ID)
			continue
		}
		match.Kickoff = parsed
		match.ArenaID = arenaID.String
		match.HomeTeamID = homeTeamID.String
		match.AwayTeamID = awayTeamID.String
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func (s *store) SetRefreshedAt(at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, refreshedAtKey, domain.FormatLocalTime(at))
	return err
}

func (s *store) RefreshedAt() (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM snapshot_meta WHERE key = ?", refreshedAtKey).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	at, err := domain.ParseLocalTime(value)
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}

func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, table := range []string{"matches", "players", "teams", "arenas", "snapshot_meta"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
