package sql

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/jgd/dialect"
)

func TestStatsDriver(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var slow []string
	drv := NewStatsDriver(OpenDB(dialect.SQLite, db),
		WithSlowThreshold(0),
		WithSlowQueryHook(func(_ context.Context, query string, _ []any, _ time.Duration) {
			slow = append(slow, query)
		}),
	)
	assert.Equal(t, time.Duration(0), drv.SlowThreshold())
	ctx := context.Background()

	mock.ExpectExec("CREATE TABLE").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, drv.Exec(ctx, "CREATE TABLE users (id INTEGER)", []any{}, nil))

	mock.ExpectExec("DELETE").WillReturnError(errors.New("boom"))
	require.Error(t, drv.Exec(ctx, "DELETE FROM users", []any{}, nil))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	tx, err := drv.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Exec(ctx, "INSERT INTO users DEFAULT VALUES", []any{}, nil))
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())

	s := drv.QueryStats().Stats()
	assert.Equal(t, int64(3), s.TotalExecs)
	assert.Equal(t, int64(1), s.Errors)
	assert.Equal(t, int64(3), s.SlowQueries)
	assert.Len(t, slow, 3)
	assert.Contains(t, s.String(), "execs=3")
	assert.Equal(t, dialect.SQLite, drv.Dialect())

	drv.QueryStats().Reset()
	assert.Equal(t, StatsSnapshot{}, drv.QueryStats().Stats())
	assert.Equal(t, time.Duration(0), drv.QueryStats().Stats().AvgQueryDuration())

	drv.SetSlowThreshold(time.Hour)
	assert.Equal(t, time.Hour, drv.SlowThreshold())
}

func TestSlowQueryLog(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	drv := NewStatsDriver(OpenDB(dialect.Postgres, db), WithSlowThreshold(0), WithSlowQueryLog(logger))
	mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, drv.Exec(context.Background(), "UPDATE users SET a = $1", []any{1}, nil))
	assert.Contains(t, buf.String(), "slow query detected")
	assert.Contains(t, buf.String(), `query="UPDATE users SET a = $1"`)
}

func TestDebugDriver(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	drv := NewDebugDriver(OpenDB(dialect.MySQL, db), DebugWithLogger(logger))
	ctx := context.Background()

	mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, drv.Exec(ctx, "DELETE FROM users", []any{}, nil))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()
	tx, err := drv.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Exec(ctx, "INSERT INTO users DEFAULT VALUES", []any{}, nil))
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())

	logs := buf.String()
	for _, msg := range []string{"msg=exec", "msg=\"begin transaction\"", "msg=\"tx exec\"", "msg=\"rollback transaction\""} {
		assert.Contains(t, logs, msg)
	}
}
