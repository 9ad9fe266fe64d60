package readstore

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

type SlotViewQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AvailabilitySlot, error)
	ListSlotsByProfessor(ctx context.Context, db sqlc.DBTX, professorID uuid.UUID) ([]sqlc.AvailabilitySlot, error)
	ListAvailableSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableSlotsParams) ([]sqlc.AvailabilitySlot, error)
}

type SlotReadStore struct {
	queries SlotViewQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotViewQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*availability.Slot, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("slot not found", err, infra.KindNotFound), errs.ErrSlotNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	return converter.SlotFromRow(row), nil
}

func (r *SlotReadStore) FindAvailable(ctx context.Context, professorID uuid.UUID, after time.Time) ([]*availability.Slot, error) {
	rows, err := r.queries.ListAvailableSlots(ctx, r.db, sqlc.ListAvailableSlotsParams{
		ProfessorID: professorID,
		StartTime:   pgconv.TimeToPgtype(after),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available slots", err)
	}
	return converter.SlotsFromRows(rows), nil
}

func (r *SlotReadStore) FindByProfessor(ctx context.Context, professorID uuid.UUID) ([]*availability.Slot, error) {
	rows, err := r.queries.ListSlotsByProfessor(ctx, r.db, professorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots by professor", err)
	}
	return converter.SlotsFromRows(rows), nil
}
