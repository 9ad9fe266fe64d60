package repository

import (
	"context"
	"time"

	"office-hours/internal/domain/availability"
	"office-hours/internal/infra"
	"office-hours/internal/infra/repository/converter"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) error
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AvailabilitySlot, error)
	LockProfessorSlots(ctx context.Context, db sqlc.DBTX, professorID uuid.UUID) error
	ListSlotsByProfessor(ctx context.Context, db sqlc.DBTX, professorID uuid.UUID) ([]sqlc.AvailabilitySlot, error)
	ClaimSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimSlotParams) (sqlc.AvailabilitySlot, error)
	ReleaseSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseSlotParams) (sqlc.AvailabilitySlot, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SlotRepository) FindByID(ctx context.Context, id uuid.UUID) (*availability.Slot, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		return nil, slotErr("failed to find slot by ID", err)
	}
	return converter.SlotFromRow(row), nil
}

// ListByProfessor takes a transaction-scoped advisory lock on the professor
// first, so concurrent creations for one professor run one after another.
func (r *SlotRepository) ListByProfessor(ctx context.Context, professorID uuid.UUID) ([]*availability.Slot, error) {
	if err := r.queries.LockProfessorSlots(ctx, r.db, professorID); err != nil {
		return nil, infra.WrapRepoErr("failed to lock professor slots", err)
	}

	rows, err := r.queries.ListSlotsByProfessor(ctx, r.db, professorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots by professor", err)
	}
	return converter.SlotsFromRows(rows), nil
}

func (r *SlotRepository) Create(ctx context.Context, slot *availability.Slot) error {
	if err := r.queries.CreateSlot(ctx, r.db, converter.SlotToCreateParams(slot)); err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

// Claim flips is_booked only if it is still false when the row lock is taken.
func (r *SlotRepository) Claim(ctx context.Context, slotID, studentID uuid.UUID, now time.Time) (*availability.Slot, error) {
	row, err := r.queries.ClaimSlot(ctx, r.db, sqlc.ClaimSlotParams{
		ID:        slotID,
		BookedBy:  pgconv.UUIDToPgtype(studentID),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err == nil {
		return converter.SlotFromRow(row), nil
	}
	if wrapped := infra.WrapRepoErr("failed to claim slot", err); !infra.IsKind(wrapped, infra.KindNotFound) {
		return nil, wrapped
	}

	if _, findErr := r.FindByID(ctx, slotID); findErr != nil {
		return nil, findErr
	}
	return nil, errs.Mark(infra.WrapRepoErr("slot already booked", err, infra.KindStaleWrite), errs.ErrAlreadyBooked)
}

func (r *SlotRepository) Release(ctx context.Context, slotID uuid.UUID, now time.Time) (*availability.Slot, error) {
	row, err := r.queries.ReleaseSlot(ctx, r.db, sqlc.ReleaseSlotParams{
		ID:        slotID,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, slotErr("failed to release slot", err)
	}
	return converter.SlotFromRow(row), nil
}

// slotErr marks a missing row as SlotNotFound; other failures keep the kind
// WrapRepoErr gave them.
func slotErr(msg string, err error) error {
	wrapped := infra.WrapRepoErr(msg, err)
	if infra.IsKind(wrapped, infra.KindNotFound) {
		return errs.Mark(wrapped, errs.ErrSlotNotFound)
	}
	return wrapped
}
