package appointment

import (
	"time"

	"office-hours/internal/domain/availability"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Appointment references its slot by id only. Start and end are copied from
// the slot at booking time and never change afterwards.
type Appointment struct {
	id          uuid.UUID
	studentID   uuid.UUID
	professorID uuid.UUID
	slotID      uuid.UUID
	startTime   time.Time
	endTime     time.Time
	status      Status
	notes       Notes
	cancelledBy *uuid.UUID
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// New builds a scheduled appointment for a slot the caller has already claimed.
func New(studentID uuid.UUID, slot *availability.Slot, notes Notes, now time.Time) *Appointment {
	return &Appointment{
		id:          uuid.New(),
		studentID:   studentID,
		professorID: slot.ProfessorID(),
		slotID:      slot.ID(),
		startTime:   slot.Start(),
		endTime:     slot.End(),
		status:      StatusScheduled,
		notes:       notes,
		createdAt:   now,
		updatedAt:   now,
	}
}

func Reconstruct(
	id, studentID, professorID, slotID uuid.UUID,
	startTime, endTime time.Time,
	status Status,
	notes Notes,
	cancelledBy *uuid.UUID,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:          id,
		studentID:   studentID,
		professorID: professorID,
		slotID:      slotID,
		startTime:   startTime,
		endTime:     endTime,
		status:      status,
		notes:       notes,
		cancelledBy: cancelledBy,
		cancelledAt: cancelledAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// IsParty reports whether userID is this appointment's student or professor.
func (a *Appointment) IsParty(userID uuid.UUID) bool {
	return a.studentID == userID || a.professorID == userID
}

func (a *Appointment) EnsureVisibleTo(userID uuid.UUID) error {
	if !a.IsParty(userID) {
		return errs.ErrForbidden
	}
	return nil
}

// Cancel moves a scheduled appointment to cancelled. Releasing the slot is
// the caller's job.
func (a *Appointment) Cancel(actorID uuid.UUID, now time.Time) error {
	if !a.IsParty(actorID) {
		return errs.ErrForbidden
	}
	if a.status != StatusScheduled {
		return errs.ErrAlreadyCancelled
	}
	a.status = StatusCancelled
	a.cancelledBy = ptr.To(actorID)
	a.cancelledAt = ptr.To(now)
	a.updatedAt = now
	return nil
}

func (a *Appointment) IsActive() bool {
	return a.status != StatusCancelled
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) StudentID() uuid.UUID    { return a.studentID }
func (a *Appointment) ProfessorID() uuid.UUID  { return a.professorID }
func (a *Appointment) SlotID() uuid.UUID       { return a.slotID }
func (a *Appointment) StartTime() time.Time    { return a.startTime }
func (a *Appointment) EndTime() time.Time      { return a.endTime }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) Notes() Notes            { return a.notes }
func (a *Appointment) CancelledBy() *uuid.UUID { return a.cancelledBy }
func (a *Appointment) CancelledAt() *time.Time { return a.cancelledAt }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time    { return a.updatedAt }

func (a *Appointment) Clone() *Appointment {
	c := *a
	c.cancelledBy = ptr.Copy(a.cancelledBy)
	c.cancelledAt = ptr.Copy(a.cancelledAt)
	return &c
}
