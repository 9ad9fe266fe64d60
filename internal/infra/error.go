package infra

import (
	"context"

	"office-hours/internal/pkg/errs"
	"office-hours/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindExclusionViolated  RepositoryErrorKind = "EXCLUSION_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	// KindStaleWrite: a conditional write matched no row
	KindStaleWrite RepositoryErrorKind = "STALE_WRITE"
)

// Postgres SQLSTATE codes the repositories care about
const (
	PgUniqueViolation      = "23505"
	PgForeignKeyViolation  = "23503"
	PgCheckViolation       = "23514"
	PgExclusionViolation   = "23P01"
	PgSerializationFailure = "40001"
	PgDeadlockDetected     = "40P01"
	PgLockNotAvailable     = "55P03"
)

// Names from the initial schema migration
const (
	ConstraintSlotNoOverlap      = "availability_slots_no_overlap"
	ConstraintSlotTimeRange      = "availability_slots_time_range_check"
	ConstraintActiveSlotUnique   = "uq_appointments_active_slot"
	ConstraintNotesLength        = "appointments_notes_length_check"
	ConstraintAppointmentSlotRef = "appointments_slot_id_fkey"
)

// WrapRepoErr classifies err, wraps it with msg and marks it with the shared
// sentinel for its kind. An explicit kind overrides classification.
// NotFound and StaleWrite are left unmarked; only the caller knows which
// entity was missing or stale.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := Classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	var wrapped error = RepositoryError{Kind: k, msg: msg, err: errs.Wrap(err, msg)}
	if sentinel := sentinelFor(k, constraint); sentinel != nil {
		wrapped = errs.Mark(wrapped, sentinel)
	}
	return wrapped
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errs.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Classify maps a driver error to a repository kind, returning the violated
// constraint name when Postgres reported one.
func Classify(err error) (RepositoryErrorKind, string) {
	if pgconv.IsNoRows(err) {
		return KindNotFound, ""
	}

	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		switch pgErr.Code {
		case PgUniqueViolation:
			return KindDuplicateKey, pgErr.ConstraintName
		case PgForeignKeyViolation:
			return KindForeignKeyViolated, pgErr.ConstraintName
		case PgExclusionViolation:
			return KindExclusionViolated, pgErr.ConstraintName
		case PgCheckViolation:
			return KindCheckViolated, pgErr.ConstraintName
		case PgSerializationFailure, PgDeadlockDetected, PgLockNotAvailable:
			return KindConflict, ""
		}
	}

	if errs.Is(err, context.Canceled) || errs.Is(err, context.DeadlineExceeded) {
		return KindConflict, ""
	}
	return KindDBFailure, ""
}

func sentinelFor(kind RepositoryErrorKind, constraint string) error {
	switch kind {
	case KindNotFound, KindStaleWrite:
		return nil
	case KindExclusionViolated:
		return errs.ErrSlotOverlap
	case KindDuplicateKey:
		if constraint == ConstraintActiveSlotUnique {
			return errs.ErrAlreadyBooked
		}
	case KindForeignKeyViolated:
		if constraint == ConstraintAppointmentSlotRef {
			return errs.ErrSlotNotFound
		}
	case KindCheckViolated:
		switch constraint {
		case ConstraintSlotTimeRange:
			return errs.ErrInvalidTimeRange
		case ConstraintNotesLength:
			return errs.ErrValidation
		}
	case KindConflict:
		return errs.ErrTransactionConflict
	}
	return errs.ErrStorageUnavailable
}
