package commands

import (
	"context"
	"log/slog"
	"time"

	"office-hours/internal/domain/availability"
	"office-hours/internal/pkg/clock"
	"office-hours/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityCommands interface {
	CreateSlot(ctx context.Context, professorID uuid.UUID, start, end time.Time) (*availability.Slot, error)
}

type availabilityUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewAvailabilityCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) AvailabilityCommands {
	return &availabilityUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

// CreateSlot checks the new window against every slot the professor owns and
// inserts it in the same transaction.
func (uc *availabilityUseCaseImpl) CreateSlot(ctx context.Context, professorID uuid.UUID, start, end time.Time) (*availability.Slot, error) {
	if _, err := availability.NewFutureTimeRange(start, end, uc.clock.Now()); err != nil {
		return nil, err
	}

	var created *availability.Slot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Slots().ListByProfessor(ctx, professorID)
		if err != nil {
			return err
		}

		slot, err := availability.NewSlot(uc.clock, professorID, start, end, existing)
		if err != nil {
			return err
		}

		if err := tx.Slots().Create(ctx, slot); err != nil {
			return err
		}
		created = slot
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("availability slot created",
		"slot_id", created.ID().String(),
		"professor_id", professorID.String(),
		"duration", created.TimeRange().Duration())
	return created, nil
}
