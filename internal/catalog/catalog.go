// Package catalog provides SQLite-based storage for generated satellite
// realizations.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/stacykim/disSat/internal/halo"
	"github.com/stacykim/disSat/internal/population"
)

// DB wraps a SQLite connection for realization storage.
type DB struct {
	conn *sqlx.DB
}

// Run records one stored realization.
type Run struct {
	ID         string    `db:"id"`
	CreatedAt  time.Time `db:"created_at"`
	Seed       uint64    `db:"seed"`
	Satellites int       `db:"satellites"`
	Luminous   int       `db:"luminous"`
	Parameters string    `db:"parameters"` // JSON of Population.Parameters
}

// Open opens or creates a SQLite catalog at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		seed INTEGER NOT NULL,
		satellites INTEGER NOT NULL,
		luminous INTEGER NOT NULL,
		parameters TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS satellites (
		run_id TEXT NOT NULL REFERENCES runs(id),
		idx INTEGER NOT NULL,
		mass REAL NOT NULL,
		c200 REAL NOT NULL,
		mstar REAL NOT NULL,
		rhalf2d REAL NOT NULL,
		profile TEXT NOT NULL,
		sigma_los REAL NOT NULL,
		PRIMARY KEY (run_id, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_satellites_run ON satellites(run_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun stores a realization and returns its run ID.
func (db *DB) SaveRun(p *population.Population, seed uint64) (string, error) {
	id := uuid.NewString()
	props := p.Properties

	params, err := json.Marshal(p.Parameters())
	if err != nil {
		return "", fmt.Errorf("encode parameters: %w", err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO runs
		(id, created_at, seed, satellites, luminous, parameters)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC(), seed, props.Count(), props.Luminous(), string(params),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(`INSERT INTO satellites
		(run_id, idx, mass, c200, mstar, rhalf2d, profile, sigma_los)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i := 0; i < props.Count(); i++ {
		_, err := stmt.Exec(
			id, i, props.Mass[i], props.C200[i], props.MStar[i],
			props.RHalf2D[i], props.Profiles[i].String(), props.SigmaLOS[i],
		)
		if err != nil {
			return "", fmt.Errorf("insert satellite %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("realization saved", "run", id, "satellites", props.Count(), "luminous", props.Luminous())
	return id, nil
}

// LoadRun restores the properties of a stored realization.
func (db *DB) LoadRun(id string) (population.Properties, error) {
	var rows []struct {
		Mass     float64 `db:"mass"`
		C200     float64 `db:"c200"`
		MStar    float64 `db:"mstar"`
		RHalf2D  float64 `db:"rhalf2d"`
		Profile  string  `db:"profile"`
		SigmaLOS float64 `db:"sigma_los"`
	}
	err := db.conn.Select(&rows,
		"SELECT mass, c200, mstar, rhalf2d, profile, sigma_los FROM satellites WHERE run_id = ? ORDER BY idx",
		id,
	)
	if err != nil {
		return population.Properties{}, fmt.Errorf("load run %s: %w", id, err)
	}
	if len(rows) == 0 {
		return population.Properties{}, fmt.Errorf("load run %s: no such run", id)
	}

	props := population.Properties{
		Mass:     make([]float64, len(rows)),
		C200:     make([]float64, len(rows)),
		MStar:    make([]float64, len(rows)),
		RHalf2D:  make([]float64, len(rows)),
		Profiles: make([]halo.Profile, len(rows)),
		SigmaLOS: make([]float64, len(rows)),
	}
	for i, r := range rows {
		prof, err := halo.ProfileFromString(r.Profile)
		if err != nil {
			return population.Properties{}, fmt.Errorf("load run %s: %w", id, err)
		}
		props.Mass[i] = r.Mass
		props.C200[i] = r.C200
		props.MStar[i] = r.MStar
		props.RHalf2D[i] = r.RHalf2D
		props.Profiles[i] = prof
		props.SigmaLOS[i] = r.SigmaLOS
	}
	return props, nil
}

// ListRuns returns stored runs, most recent first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs,
		"SELECT id, created_at, seed, satellites, luminous, parameters FROM runs ORDER BY created_at DESC LIMIT ?",
		limit,
	)
	return runs, err
}
