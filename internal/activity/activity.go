package activity

import (
	"context"
	"database/sql"
	"time"

	"github.com/briangreenhill/ftracker/internal/training"
)

type Split struct {
	Distance  float64
	SplitTime float64
	Elevation float64
}

// Workout is a computed training summary together with the readings it
// was computed from.
type Workout struct {
	ID      string               `json:"id"`
	Code    training.Code        `json:"code"`
	Data    []float64            `json:"data"`
	Info    training.InfoMessage `json:"info"`
	Message string               `json:"message"`
	Splits  []Split              `json:"splits,omitempty"`
	GPX     []byte               `json:"-"`
	Created time.Time            `json:"created"`
}

const schema = `
        CREATE TABLE IF NOT EXISTS workouts (
        id TEXT PRIMARY KEY,
        code TEXT NOT NULL,
        training_type TEXT NOT NULL,
        data BLOB,
        duration REAL,
        distance REAL,
        speed REAL,
        calories REAL,
        splits BLOB,
        gpx BLOB,
        input_hash TEXT UNIQUE,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)`

// Migrate creates the workouts table when it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
