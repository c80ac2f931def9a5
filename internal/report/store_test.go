package report

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"home_relay/internal/models"
	"home_relay/internal/repository"
	"home_relay/internal/repository/db"
)

func TestBuild_SQLiteStoreKeepsOnlyTheRequestedDay(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, db.SQLite, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	env := repository.NewEnvSQL(conn, db.SQLite)
	relays := repository.NewRelayLogSQL(conn, db.SQLite)

	lastMicro := 59*time.Second + 999999*time.Microsecond
	readings := []models.SensorReading{
		{Time: at(9, 23, 59).Add(lastMicro), Temperature: 1, Humidity: 1},
		{Time: at(10, 0, 0), Temperature: 21, Humidity: 62},
		{Time: at(10, 8, 0), Temperature: 22.5, Humidity: 60},
		{Time: at(10, 9, 0), Temperature: 24, Humidity: 58},
		{Time: at(10, 23, 59).Add(59 * time.Second), Temperature: 20, Humidity: 63},
		{Time: at(10, 23, 59).Add(lastMicro), Temperature: 19.5, Humidity: 64},
		{Time: at(11, 0, 0), Temperature: 2, Humidity: 2},
	}
	for _, r := range readings {
		require.NoError(t, env.Append(ctx, r))
	}
	for _, e := range []models.RelayEvent{
		{Relay: 2, Action: models.ActionOff, Time: at(10, 20, 10)},
		{Relay: 2, Action: models.ActionOn, Time: at(10, 8, 5)},
		{Relay: 2, Action: models.ActionOn, Time: at(11, 0, 0)},
	} {
		require.NoError(t, relays.Append(ctx, e))
	}

	art, err := NewBuilder(env, relays).Build(ctx, at(10, 0, 0), t.TempDir())
	require.NoError(t, err)

	f, err := excelize.OpenFile(art.SpreadsheetPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	envRows, err := f.GetRows(EnvSheet)
	require.NoError(t, err)
	require.Len(t, envRows, 6, "header plus the five readings of 10-01-2024")
	temps := make([]string, 0, 5)
	for _, row := range envRows[1:] {
		temps = append(temps, row[1])
	}
	assert.Equal(t, []string{"21", "22.5", "24", "20", "19.5"}, temps)

	relayRows, err := f.GetRows(RelaySheet)
	require.NoError(t, err)
	require.Len(t, relayRows, 3)
	assert.Equal(t, []string{"2", "ON"}, relayRows[1][:2])
	assert.Equal(t, []string{"2", "OFF"}, relayRows[2][:2])
}

func TestBuild_SQLiteStoreWithoutReadingsIsNoData(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, db.SQLite, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer func() { _ = conn.Close() }()

	env := repository.NewEnvSQL(conn, db.SQLite)
	require.NoError(t, env.Append(ctx, models.SensorReading{Time: at(11, 0, 0), Temperature: 2, Humidity: 2}))

	_, err = NewBuilder(env, repository.NewRelayLogSQL(conn, db.SQLite)).Build(ctx, at(10, 0, 0), t.TempDir())

	var noData *NoDataError
	require.ErrorAs(t, err, &noData)
}
