package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"home_relay/internal/models"
	"home_relay/internal/repository/db"
)

// RelayLogSQL stores relay transitions in two logs, one per action.
type RelayLogSQL struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewRelayLogSQL(conn *sql.DB, d db.Dialect) *RelayLogSQL {
	return &RelayLogSQL{db: conn, dialect: d}
}

var _ RelayLogRepo = (*RelayLogSQL)(nil)

const (
	insertRelayOnSQL  = `INSERT INTO relay_on_log (relay, occurred_at) VALUES (?, ?)`
	insertRelayOffSQL = `INSERT INTO relay_off_log (relay, occurred_at) VALUES (?, ?)`

	selectRelayOnRangeSQL  = `SELECT relay, occurred_at FROM relay_on_log WHERE occurred_at >= ? AND occurred_at <= ?`
	selectRelayOffRangeSQL = `SELECT relay, occurred_at FROM relay_off_log WHERE occurred_at >= ? AND occurred_at <= ?`
)

type relayLogQueries struct {
	insert, selectRange string
}

var relayLogs = map[string]relayLogQueries{
	models.ActionOn:  {insert: insertRelayOnSQL, selectRange: selectRelayOnRangeSQL},
	models.ActionOff: {insert: insertRelayOffSQL, selectRange: selectRelayOffRangeSQL},
}

func relayLogFor(action string) (relayLogQueries, error) {
	q, ok := relayLogs[strings.ToUpper(strings.TrimSpace(action))]
	if !ok {
		return relayLogQueries{}, fmt.Errorf("unknown relay action %q", action)
	}
	return q, nil
}

// Append writes e to the log matching e.Action.
func (r *RelayLogSQL) Append(ctx context.Context, e models.RelayEvent) error {
	q, err := relayLogFor(e.Action)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, r.dialect.Rebind(q.insert), e.Relay, stamp(e.Time)); err != nil {
		return fmt.Errorf("insert relay %d %s event: %w", e.Relay, e.Action, err)
	}
	return nil
}

// ListRange tags every row with the action of the log it was read from.
func (r *RelayLogSQL) ListRange(ctx context.Context, action string, from, to time.Time) ([]models.RelayEvent, error) {
	q, err := relayLogFor(action)
	if err != nil {
		return nil, err
	}
	action = strings.ToUpper(strings.TrimSpace(action))

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(q.selectRange), from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("select relay %s events: %w", action, err)
	}
	defer rows.Close()

	out := make([]models.RelayEvent, 0, 16)
	for rows.Next() {
		ev := models.RelayEvent{Action: action}
		if err := rows.Scan(&ev.Relay, &ev.Time); err != nil {
			return nil, fmt.Errorf("scan relay %s event: %w", action, err)
		}
		ev.Time = ev.Time.UTC()
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate relay %s events: %w", action, err)
	}
	return out, nil
}
