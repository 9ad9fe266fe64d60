package shared

import (
	"context"
	"time"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/domain/availability"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one atomic, isolated transaction; fn's writes commit together or not at all
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Snapshot: lock-free reads of committed state for the query side
	Snapshot() Reads
}

type Tx interface {
	Slots() SlotRepository
	Appointments() AppointmentRepository
}

// SlotRepository is the Availability Ledger's storage. Claim and Release are
// the only slot mutations after creation.
type SlotRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*availability.Slot, error)
	// ListByProfessor locks the professor's slot set for the rest of the transaction
	ListByProfessor(ctx context.Context, professorID uuid.UUID) ([]*availability.Slot, error)
	Create(ctx context.Context, slot *availability.Slot) error
	// Claim succeeds only when the slot is unbooked at write time
	Claim(ctx context.Context, slotID, studentID uuid.UUID, now time.Time) (*availability.Slot, error)
	Release(ctx context.Context, slotID uuid.UUID, now time.Time) (*availability.Slot, error)
}

type AppointmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	Create(ctx context.Context, appt *appointment.Appointment) error
	// MarkCancelled succeeds only when the stored row is still scheduled
	MarkCancelled(ctx context.Context, appt *appointment.Appointment) error
}

type AppointmentFilter struct {
	StudentID   *uuid.UUID
	ProfessorID *uuid.UUID
	Status      *appointment.Status
}

type Reads interface {
	SlotByID(ctx context.Context, id uuid.UUID) (*availability.Slot, error)
	AvailableSlots(ctx context.Context, professorID uuid.UUID, after time.Time) ([]*availability.Slot, error)
	SlotsByProfessor(ctx context.Context, professorID uuid.UUID) ([]*availability.Slot, error)
	AppointmentByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	Appointments(ctx context.Context, filter AppointmentFilter) ([]*appointment.Appointment, error)
}
