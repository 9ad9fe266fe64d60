package availability

import (
	"time"

	"office-hours/internal/pkg/clock"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Slot is a bookable window owned by one professor. Slots are never deleted;
// only Claim and Release change them after creation.
type Slot struct {
	id          uuid.UUID
	professorID uuid.UUID
	timeRange   TimeRange
	booked      bool
	bookedBy    *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSlot validates the window against the clock and checks it against the
// professor's existing slots, booked or not.
func NewSlot(clk clock.Clock, professorID uuid.UUID, start, end time.Time, existing []*Slot) (*Slot, error) {
	now := clk.Now()
	tr, err := NewFutureTimeRange(start, end, now)
	if err != nil {
		return nil, err
	}
	if err := EnsureNoOverlap(professorID, tr, existing); err != nil {
		return nil, err
	}

	return &Slot{
		id:          uuid.New(),
		professorID: professorID,
		timeRange:   tr,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructSlot(
	id, professorID uuid.UUID,
	timeRange TimeRange,
	booked bool,
	bookedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:          id,
		professorID: professorID,
		timeRange:   timeRange,
		booked:      booked,
		bookedBy:    bookedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func EnsureNoOverlap(professorID uuid.UUID, tr TimeRange, existing []*Slot) error {
	for _, s := range existing {
		if s.professorID != professorID {
			continue
		}
		if s.timeRange.Overlaps(tr) {
			return errs.Mark(
				errs.Newf("overlaps slot %s", s.id),
				errs.ErrSlotOverlap,
			)
		}
	}
	return nil
}

// Claim books the slot for studentID. It fails without change when the slot
// is already booked, by anyone.
func (s *Slot) Claim(studentID uuid.UUID, now time.Time) error {
	if s.booked {
		return errs.ErrAlreadyBooked
	}
	s.booked = true
	s.bookedBy = ptr.To(studentID)
	s.updatedAt = now
	return nil
}

// Release frees the slot. Releasing a free slot is a no-op.
func (s *Slot) Release(now time.Time) {
	if !s.booked {
		return
	}
	s.booked = false
	s.bookedBy = nil
	s.updatedAt = now
}

func (s *Slot) IsAvailableAfter(t time.Time) bool {
	return !s.booked && s.timeRange.Start().After(t)
}

func (s *Slot) ID() uuid.UUID          { return s.id }
func (s *Slot) ProfessorID() uuid.UUID { return s.professorID }
func (s *Slot) TimeRange() TimeRange   { return s.timeRange }
func (s *Slot) Start() time.Time       { return s.timeRange.Start() }
func (s *Slot) End() time.Time         { return s.timeRange.End() }
func (s *Slot) IsBooked() bool         { return s.booked }
func (s *Slot) BookedBy() *uuid.UUID   { return s.bookedBy }
func (s *Slot) CreatedAt() time.Time   { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time   { return s.updatedAt }

// Clone returns a copy that shares no pointers with s.
func (s *Slot) Clone() *Slot {
	c := *s
	c.bookedBy = ptr.Copy(s.bookedBy)
	return &c
}
