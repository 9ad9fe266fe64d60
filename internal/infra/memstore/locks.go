package memstore

import (
	"context"
	"sync"

	"office-hours/internal/pkg/errs"
)

// lockTable hands out one exclusive lock per key. A lock is a buffered
// channel of size one: sending acquires, receiving releases. An entry lives
// only while someone holds or waits for it, so lookups of unknown ids leave
// nothing behind.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	ch   chan struct{}
	refs int // holder plus waiters
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*lockEntry)}
}

func (l *lockTable) ref(key string) *lockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.locks[key]
	if !ok {
		e = &lockEntry{ch: make(chan struct{}, 1)}
		l.locks[key] = e
	}
	e.refs++
	return e
}

func (l *lockTable) unref(key string, e *lockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
}

// acquire blocks until key is free or ctx is done.
func (l *lockTable) acquire(ctx context.Context, key string) error {
	e := l.ref(key)
	select {
	case e.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.unref(key, e)
		return errs.Mark(errs.Wrap(ctx.Err(), "waiting for lock on "+key), errs.ErrTransactionConflict)
	}
}

// release must only be called by the holder of key.
func (l *lockTable) release(key string) {
	l.mu.Lock()
	e := l.locks[key]
	l.mu.Unlock()
	<-e.ch
	l.unref(key, e)
}

func (l *lockTable) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

func slotKey(id string) string        { return "slot:" + id }
func appointmentKey(id string) string { return "appt:" + id }
func professorKey(id string) string   { return "prof:" + id }
