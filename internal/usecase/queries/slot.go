package queries

import (
	"context"

	"office-hours/internal/pkg/clock"
	"office-hours/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotQueries interface {
	// ListAvailable returns the professor's unbooked future slots, earliest first
	ListAvailable(ctx context.Context, professorID uuid.UUID) ([]*SlotView, error)
	// ListByProfessor returns every slot the professor owns, booked or not
	ListByProfessor(ctx context.Context, professorID uuid.UUID) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSlotQueries(uow shared.UnitOfWork, clk clock.Clock) SlotQueries {
	return &slotQueriesImpl{uow: uow, clock: clk}
}

func (q *slotQueriesImpl) ListAvailable(ctx context.Context, professorID uuid.UUID) ([]*SlotView, error) {
	slots, err := q.uow.Snapshot().AvailableSlots(ctx, professorID, q.clock.Now())
	if err != nil {
		return nil, err
	}
	return NewSlotViews(slots), nil
}

func (q *slotQueriesImpl) ListByProfessor(ctx context.Context, professorID uuid.UUID) ([]*SlotView, error) {
	slots, err := q.uow.Snapshot().SlotsByProfessor(ctx, professorID)
	if err != nil {
		return nil, err
	}
	return NewSlotViews(slots), nil
}
