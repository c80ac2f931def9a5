package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect selects the driver and placeholder style of the Store.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// ParseDialect maps a configured driver name to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", s)
	}
}

func (d Dialect) driverName() string {
	if d == Postgres {
		return "pgx"
	}
	return "sqlite"
}

// Rebind rewrites '?' placeholders into the dialect's style.
// Queries in this module never contain a literal '?'.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var (
		b strings.Builder
		n int
	)
	b.Grow(len(query) + 8)
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Open connects to the Store, ensures tables exist and seeds default rows.
func Open(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(d.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d, err)
	}

	if d == SQLite {
		if err := configureSQLite(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	// Fail fast if the DB cannot be reached
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", d, err)
	}

	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := Seed(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func configureSQLite(ctx context.Context, db *sql.DB) error {
	// SQLite is not great with many writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("set %s: %w", strings.TrimSuffix(pragma, ";"), err)
		}
	}
	return nil
}

// Column types below are accepted by both SQLite and PostgreSQL.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS temp_hum_log (
    recorded_at TIMESTAMP PRIMARY KEY,
    temperature DOUBLE PRECISION NOT NULL,
    humidity DOUBLE PRECISION NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS relay_on_log (
    relay INTEGER NOT NULL,
    occurred_at TIMESTAMP NOT NULL,
    PRIMARY KEY (relay, occurred_at)
)`,
	`CREATE TABLE IF NOT EXISTS relay_off_log (
    relay INTEGER NOT NULL,
    occurred_at TIMESTAMP NOT NULL,
    PRIMARY KEY (relay, occurred_at)
)`,
	`CREATE TABLE IF NOT EXISTS thresholds (
    kind TEXT PRIMARY KEY,
    min_val DOUBLE PRECISION NOT NULL,
    max_val DOUBLE PRECISION NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS relay_schedule (
    relay INTEGER PRIMARY KEY,
    on_time TEXT NOT NULL,
    duration_s INTEGER NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS relay_status (
    relay INTEGER PRIMARY KEY,
    status INTEGER NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS relay_mode (
    relay INTEGER PRIMARY KEY,
    mode INTEGER NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS over_temp_log (
    occurred_at TIMESTAMP PRIMARY KEY,
    value DOUBLE PRECISION NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS over_hum_log (
    occurred_at TIMESTAMP PRIMARY KEY,
    value DOUBLE PRECISION NOT NULL
)`,
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
