//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/domain/availability"
	"office-hours/internal/infra/memstore"
	"office-hours/internal/usecase/shared"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// faultyUoW runs on a real memory store but fails chosen steps inside the
// transaction, after earlier steps have already written.
type faultyUoW struct {
	*memstore.Store
	createAppointmentErr error
	releaseSlotErr       error
}

func (u *faultyUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.Store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, &faultyTx{Tx: tx, uow: u})
	})
}

type faultyTx struct {
	shared.Tx
	uow *faultyUoW
}

func (t *faultyTx) Slots() shared.SlotRepository {
	return &faultySlots{SlotRepository: t.Tx.Slots(), err: t.uow.releaseSlotErr}
}

func (t *faultyTx) Appointments() shared.AppointmentRepository {
	return &faultyAppointments{AppointmentRepository: t.Tx.Appointments(), err: t.uow.createAppointmentErr}
}

type faultySlots struct {
	shared.SlotRepository
	err error
}

func (r *faultySlots) Release(ctx context.Context, slotID uuid.UUID, now time.Time) (*availability.Slot, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.SlotRepository.Release(ctx, slotID, now)
}

type faultyAppointments struct {
	shared.AppointmentRepository
	err error
}

func (r *faultyAppointments) Create(ctx context.Context, appt *appointment.Appointment) error {
	if r.err != nil {
		return r.err
	}
	return r.AppointmentRepository.Create(ctx, appt)
}

func (s *BookingTestSuite) professorFilter() shared.AppointmentFilter {
	return s.filterWithStatus(nil)
}

func (s *BookingTestSuite) filterWithStatus(status *appointment.Status) shared.AppointmentFilter {
	id := s.professorID
	return shared.AppointmentFilter{ProfessorID: &id, Status: status}
}
