package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const (
	seedThresholdSQL = `INSERT INTO thresholds (kind, min_val, max_val) VALUES (?, 0, 0) ON CONFLICT (kind) DO NOTHING`
	seedStatusSQL    = `INSERT INTO relay_status (relay, status, updated_at) VALUES (?, 0, ?) ON CONFLICT (relay) DO NOTHING`
	seedModeSQL      = `INSERT INTO relay_mode (relay, mode, updated_at) VALUES (?, 0, ?) ON CONFLICT (relay) DO NOTHING`
	seedScheduleSQL  = `INSERT INTO relay_schedule (relay, on_time, duration_s) VALUES (?, '00:00:00', 0) ON CONFLICT (relay) DO NOTHING`
)

// seededRelays is the number of relays that get default rows.
const seededRelays = 4

// Seed inserts the default threshold, status, mode and schedule rows.
// Existing rows are left untouched, so it is safe to run on every start.
func Seed(ctx context.Context, db *sql.DB, d Dialect) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, kind := range []string{"temp", "hum"} {
		if _, err := tx.ExecContext(ctx, d.Rebind(seedThresholdSQL), kind); err != nil {
			return fmt.Errorf("seed threshold %q: %w", kind, err)
		}
	}

	now := time.Now().UTC()
	for relay := 1; relay <= seededRelays; relay++ {
		if _, err := tx.ExecContext(ctx, d.Rebind(seedStatusSQL), relay, now); err != nil {
			return fmt.Errorf("seed status of relay %d: %w", relay, err)
		}
		if _, err := tx.ExecContext(ctx, d.Rebind(seedModeSQL), relay, now); err != nil {
			return fmt.Errorf("seed mode of relay %d: %w", relay, err)
		}
		if _, err := tx.ExecContext(ctx, d.Rebind(seedScheduleSQL), relay); err != nil {
			return fmt.Errorf("seed schedule of relay %d: %w", relay, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
