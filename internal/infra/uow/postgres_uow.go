package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/domain/availability"
	"office-hours/internal/infra"
	"office-hours/internal/infra/readstore"
	"office-hours/internal/infra/repository"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/internal/pkg/config"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	logger     *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.StoreConfig, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: cfg.TxMaxRetries,
		logger:     logger,
	}
}

// ReadCommitted is enough here: every contended write is a conditional
// UPDATE, which Postgres re-evaluates after waiting on the row lock.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Snapshot reads committed rows straight from the pool, outside any transaction.
func (u *PostgresUoW) Snapshot() shared.Reads {
	return &snapshotReads{
		slots:        readstore.NewSlotReadStore(u.q, u.pool),
		appointments: readstore.NewAppointmentReadStore(u.q, u.pool),
	}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(errs.Mark(err, errTransactionBegin), errs.ErrStorageUnavailable)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = markCommitErr(err)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, u.maxRetries) {
			if attempt > 0 && attempt == u.maxRetries && isRetryableError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return errs.Mark(ctx.Err(), errs.ErrTransactionConflict)
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

// A failed commit is a conflict when Postgres says so and an outage otherwise.
func markCommitErr(err error) error {
	err = errs.Mark(err, errTransactionCommit)
	if kind, _ := infra.Classify(err); kind == infra.KindConflict {
		return errs.Mark(err, errs.ErrTransactionConflict)
	}
	return errs.Mark(err, errs.ErrStorageUnavailable)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

// Only storage-level conflicts are retried; domain rejections never are.
func isRetryableError(err error) bool {
	return errs.Is(err, errs.ErrTransactionConflict)
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	slotRepo        shared.SlotRepository
	appointmentRepo shared.AppointmentRepository
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.uow.q, t.dbtx)
	}
	return t.slotRepo
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository(t.uow.q, t.dbtx)
	}
	return t.appointmentRepo
}

type snapshotReads struct {
	slots        *readstore.SlotReadStore
	appointments *readstore.AppointmentReadStore
}

func (r *snapshotReads) SlotByID(ctx context.Context, id uuid.UUID) (*availability.Slot, error) {
	return r.slots.FindByID(ctx, id)
}

func (r *snapshotReads) AvailableSlots(ctx context.Context, professorID uuid.UUID, after time.Time) ([]*availability.Slot, error) {
	return r.slots.FindAvailable(ctx, professorID, after)
}

func (r *snapshotReads) SlotsByProfessor(ctx context.Context, professorID uuid.UUID) ([]*availability.Slot, error) {
	return r.slots.FindByProfessor(ctx, professorID)
}

func (r *snapshotReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	return r.appointments.FindByID(ctx, id)
}

func (r *snapshotReads) Appointments(ctx context.Context, filter shared.AppointmentFilter) ([]*appointment.Appointment, error) {
	return r.appointments.Find(ctx, filter)
}
