package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/everolfe/matchday/internal/domain"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

var tournaments = []string{
	"La Liga", "Copa Del Rey", "Champions League", "Friendly Match", "Supercup",
}

func main() {
	log.Info("Starting snapshot seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	arenaIDs := seedArenas(db)
	teamIDs := seedTeams(db)
	log.Info("Ensured dummy arenas and teams exist.")

	const batchSize = 100
	const numMatches = 5000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*6)

	for i := 0; i < numMatches; i++ {
		kickoff := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)
		home := teamIDs[rand.Intn(len(teamIDs))]
		away := teamIDs[rand.Intn(len(teamIDs))]
		for away == home {
			away = teamIDs[rand.Intn(len(teamIDs))]
		}

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(),
			domain.FormatLocalTime(kickoff),
			tournaments[rand.Intn(len(tournaments))],
			arenaIDs[rand.Intn(len(arenaIDs))],
			home,
			away,
		)

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			stmt := fmt.Sprintf(
				"INSERT OR IGNORE INTO matches (id, kickoff, tournament_name, arena_id, home_team_id, away_team_id) VALUES %s",
				strings.Join(valueStrings, ","))
			if _, err := tx.Exec(stmt, valueArgs...); err != nil {
				tx.Rollback()
				log.Fatalf("Failed to insert match batch: %s", err)
			}
			valueStrings = valueStrings[:0]
			valueArgs = valueArgs[:0]
		}
	}

	// The snapshot store reads this back with the naive local-time layout.
	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO snapshot_meta (key, value) VALUES ('refreshed_at', ?)",
		domain.FormatLocalTime(time.Now())); err != nil {
		tx.Rollback()
		log.Fatalf("Failed to stamp snapshot timestamp: %s", err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	log.Info("Seeding complete.", "matches", numMatches, "duration", time.Since(startTime))
}

func seedArenas(db *sql.DB) []string {
	arenas := []struct {
		city     string
		capacity int
	}{
		{"Madrid", 81044},
		{"Barcelona", 99354},
		{"Sevilla", 42714},
		{"Valencia", 49430},
	}

	ids := make([]string, 0, len(arenas))
	for _, a := range arenas {
		id := "seed-arena-" + strings.ToLower(a.city)
		if _, err := db.Exec("INSERT OR IGNORE INTO arenas (id, city, capacity) VALUES (?, ?, ?)", id, a.city, a.capacity); err != nil {
			log.Fatalf("Failed to insert dummy arena %s: %s", a.city, err)
		}
		ids = append(ids, id)
	}
	return ids
}

func seedTeams(db *sql.DB) []string {
	names := []string{"Seeder FC", "Dummy United", "Test City", "Placeholder CF"}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		id := "seed-team-" + strings.ToLower(strings.ReplaceAll(name, " ", "-"))
		roster, _ := json.Marshal([]string{})
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO teams (id, name, country, player_ids_json) VALUES (?, ?, ?, ?)",
			id, name, "Spain", string(roster)); err != nil {
			log.Fatalf("Failed to insert dummy team %s: %s", name, err)
		}
		ids = append(ids, id)
	}
	return ids
}
