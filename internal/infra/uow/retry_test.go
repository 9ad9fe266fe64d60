//go:build unit

package uow

import (
	"testing"
	"time"

	"office-hours/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMarkCommitErr(t *testing.T) {
	conflict := markCommitErr(&pgconn.PgError{Code: "40001"})
	assert.Equal(t, errs.KindTransactionConflict, errs.KindOf(conflict))
	assert.True(t, errs.Is(conflict, errTransactionCommit))

	outage := markCommitErr(errs.New("conn closed"))
	assert.Equal(t, errs.KindStorageUnavailable, errs.KindOf(outage))
}

func TestShouldRetry(t *testing.T) {
	conflict := errs.Mark(errs.New("deadlock"), errs.ErrTransactionConflict)

	cases := []struct {
		name       string
		err        error
		attempt    int
		maxRetries int
		want       bool
	}{
		{"retries disabled by default", conflict, 0, 0, false},
		{"conflict within budget", conflict, 0, 2, true},
		{"conflict at budget", conflict, 2, 2, false},
		{"domain rejection is final", errs.ErrAlreadyBooked, 0, 3, false},
		{"outage is final", errs.Mark(errs.New("down"), errs.ErrStorageUnavailable), 0, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shouldRetry(tc.err, tc.attempt, tc.maxRetries))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}
