//go:build unit || e2e

package dbtest

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"office-hours/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestSlot inserts a free slot directly, bypassing the future-start check.
func CreateTestSlot(t *testing.T, db DBLike, professorID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO availability_slots (id, professor_id, start_time, end_time) VALUES ($1, $2, $3, $4)",
		slotID, professorID, start, end)
	require.NoError(t, err)

	return slotID
}

func CountActiveAppointments(t *testing.T, db DBLike, slotID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM appointments WHERE slot_id = $1 AND status <> 'cancelled'", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	truncateOnce sync.Once
	truncateStmt string
	truncateErr  error
)

// ResetDB empties every application table. The table list is read once per
// process; goose's version table is kept so migrations are not replayed.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		rows, err := db.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public' AND tablename <> 'goose_db_version'
		  ORDER BY tablename`)
		if err != nil {
			truncateErr = errs.Wrap(err, "list tables")
			return
		}
		tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			truncateErr = errs.Wrap(err, "scan tables")
			return
		}
		if len(tables) > 0 {
			truncateStmt = "TRUNCATE " + strings.Join(tables, ", ") + " CASCADE"
		}
	})
	if truncateErr != nil || truncateStmt == "" {
		return truncateErr
	}
	_, err := db.Exec(ctx, truncateStmt)
	return errs.Wrap(err, "truncate")
}
