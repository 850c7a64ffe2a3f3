package snapshot

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the snapshot.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
