//go:build unit

package memstore

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"office-hours/internal/pkg/errs"
	"office-hours/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockTable_EntriesDroppedWhenFree(t *testing.T) {
	l := newLockTable()
	ctx := context.Background()

	require.NoError(t, l.acquire(ctx, "slot:a"))
	require.NoError(t, l.acquire(ctx, "slot:b"))
	assert.Equal(t, 2, l.size())

	l.release("slot:a")
	l.release("slot:b")
	assert.Equal(t, 0, l.size())
}

func TestLockTable_TimedOutWaiterLeavesNoEntry(t *testing.T) {
	l := newLockTable()
	require.NoError(t, l.acquire(context.Background(), "appt:x"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := l.acquire(ctx, "appt:x")
	assert.True(t, errs.Is(err, errs.ErrTransactionConflict), "got %v", err)
	assert.Equal(t, 1, l.size())

	l.release("appt:x")
	assert.Equal(t, 0, l.size())
}

func TestLockTable_ContendedKeyStaysExclusive(t *testing.T) {
	l := newLockTable()
	ctx := context.Background()

	const n = 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !assert.NoError(t, l.acquire(ctx, "prof:p")) {
				return
			}
			mu.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
			l.release("prof:p")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, l.size())
}

func TestStore_LookupsOfUnknownIDsLeaveNoLocks(t *testing.T) {
	store := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Slots().FindByID(ctx, uuid.New()); !errs.Is(err, errs.ErrSlotNotFound) {
				return err
			}
			_, err := tx.Appointments().FindByID(ctx, uuid.New())
			return err
		})
		assert.True(t, errs.Is(err, errs.ErrAppointmentNotFound), "got %v", err)
	}

	assert.Equal(t, 0, store.locks.size())
}
