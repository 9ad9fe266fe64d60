package commands

import (
	"context"
	"log/slog"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/pkg/clock"
	"office-hours/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingCommands ties slot claim/release to appointment create/cancel.
// Both sides change in one transaction or not at all.
type BookingCommands interface {
	Book(ctx context.Context, studentID, slotID uuid.UUID, notes string) (*appointment.Appointment, error)
	Cancel(ctx context.Context, appointmentID, actorID uuid.UUID) (*appointment.Appointment, error)
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *bookingUseCaseImpl) Book(ctx context.Context, studentID, slotID uuid.UUID, notes string) (*appointment.Appointment, error) {
	n, err := appointment.NewNotes(notes)
	if err != nil {
		return nil, err
	}

	var booked *appointment.Appointment
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Slots().FindByID(ctx, slotID); err != nil {
			return err
		}

		// The conditional claim is the race-proof check; the read above only
		// distinguishes a missing slot from a taken one.
		now := uc.clock.Now()
		slot, err := tx.Slots().Claim(ctx, slotID, studentID, now)
		if err != nil {
			return err
		}

		appt := appointment.New(studentID, slot, n, now)
		if err := tx.Appointments().Create(ctx, appt); err != nil {
			return err
		}
		booked = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("appointment booked",
		"appointment_id", booked.ID().String(),
		"slot_id", slotID.String(),
		"student_id", studentID.String(),
		"has_notes", !n.IsEmpty())
	return booked, nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, appointmentID, actorID uuid.UUID) (*appointment.Appointment, error) {
	var cancelled *appointment.Appointment
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := tx.Appointments().FindByID(ctx, appointmentID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := appt.Cancel(actorID, now); err != nil {
			return err
		}
		if err := tx.Appointments().MarkCancelled(ctx, appt); err != nil {
			return err
		}
		if _, err := tx.Slots().Release(ctx, appt.SlotID(), now); err != nil {
			return err
		}
		cancelled = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("appointment cancelled",
		"appointment_id", appointmentID.String(),
		"slot_id", cancelled.SlotID().String(),
		"cancelled_by", actorID.String())
	return cancelled, nil
}
