package memstore

import (
	"context"
	"time"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/domain/availability"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/usecase/shared"

	"github.com/google/uuid"
)

// memTx holds its locks until Within returns. Lock order is fixed per
// operation (professor, then appointment, then slot) so two transactions
// never wait on each other in a cycle.
type memTx struct {
	store *Store
	held  map[string]struct{}
	order []string

	// buffered writes, published on commit
	slots        map[uuid.UUID]*availability.Slot
	appointments map[uuid.UUID]*appointment.Appointment
}

func newMemTx(s *Store) *memTx {
	return &memTx{
		store:        s,
		held:         make(map[string]struct{}),
		slots:        make(map[uuid.UUID]*availability.Slot),
		appointments: make(map[uuid.UUID]*appointment.Appointment),
	}
}

func (t *memTx) lock(ctx context.Context, key string) error {
	if _, ok := t.held[key]; ok {
		return nil
	}
	if err := t.store.locks.acquire(ctx, key); err != nil {
		return err
	}
	t.held[key] = struct{}{}
	t.order = append(t.order, key)
	return nil
}

func (t *memTx) releaseLocks() {
	for i := len(t.order) - 1; i >= 0; i-- {
		t.store.locks.release(t.order[i])
	}
	t.order = nil
	t.held = nil
}

func (t *memTx) Slots() shared.SlotRepository {
	return &slotRepo{tx: t}
}

func (t *memTx) Appointments() shared.AppointmentRepository {
	return &appointmentRepo{tx: t}
}

// slot returns this transaction's view of a slot: its own write if any,
// otherwise the committed row.
func (t *memTx) slot(id uuid.UUID) (*availability.Slot, bool) {
	if s, ok := t.slots[id]; ok {
		return s.Clone(), true
	}
	return t.store.committedSlot(id)
}

func (t *memTx) appointment(id uuid.UUID) (*appointment.Appointment, bool) {
	if a, ok := t.appointments[id]; ok {
		return a.Clone(), true
	}
	return t.store.committedAppointment(id)
}

type slotRepo struct {
	tx *memTx
}

func (r *slotRepo) FindByID(ctx context.Context, id uuid.UUID) (*availability.Slot, error) {
	if err := r.tx.lock(ctx, slotKey(id.String())); err != nil {
		return nil, err
	}
	slot, ok := r.tx.slot(id)
	if !ok {
		return nil, slotNotFound(id)
	}
	return slot, nil
}

func (r *slotRepo) ListByProfessor(ctx context.Context, professorID uuid.UUID) ([]*availability.Slot, error) {
	if err := r.tx.lock(ctx, professorKey(professorID.String())); err != nil {
		return nil, err
	}

	slots := r.tx.store.committedSlots(func(s *availability.Slot) bool {
		return s.ProfessorID() == professorID
	})
	byID := make(map[uuid.UUID]int, len(slots))
	for i, s := range slots {
		byID[s.ID()] = i
	}
	for id, s := range r.tx.slots {
		if s.ProfessorID() != professorID {
			continue
		}
		if i, ok := byID[id]; ok {
			slots[i] = s.Clone()
		} else {
			slots = append(slots, s.Clone())
		}
	}
	sortSlots(slots)
	return slots, nil
}

// Create requires the professor lock so the overlap check that preceded it
// still holds at commit.
func (r *slotRepo) Create(ctx context.Context, slot *availability.Slot) error {
	if err := r.tx.lock(ctx, professorKey(slot.ProfessorID().String())); err != nil {
		return err
	}
	if _, exists := r.tx.slot(slot.ID()); exists {
		return errs.Mark(errs.Newf("slot %s already exists", slot.ID()), errs.ErrStorageUnavailable)
	}
	r.tx.slots[slot.ID()] = slot.Clone()
	return nil
}

func (r *slotRepo) Claim(ctx context.Context, slotID, studentID uuid.UUID, now time.Time) (*availability.Slot, error) {
	slot, err := r.FindByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if err := slot.Claim(studentID, now); err != nil {
		return nil, err
	}
	r.tx.slots[slotID] = slot.Clone()
	return slot, nil
}

func (r *slotRepo) Release(ctx context.Context, slotID uuid.UUID, now time.Time) (*availability.Slot, error) {
	slot, err := r.FindByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	slot.Release(now)
	r.tx.slots[slotID] = slot.Clone()
	return slot, nil
}

type appointmentRepo struct {
	tx *memTx
}

func (r *appointmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	if err := r.tx.lock(ctx, appointmentKey(id.String())); err != nil {
		return nil, err
	}
	appt, ok := r.tx.appointment(id)
	if !ok {
		return nil, appointmentNotFound(id)
	}
	return appt, nil
}

// Create refuses a second live appointment for a slot. The slot lock taken
// by Claim already serializes bookers; this keeps the rule when a caller
// skips Claim.
func (r *appointmentRepo) Create(ctx context.Context, appt *appointment.Appointment) error {
	if err := r.tx.lock(ctx, slotKey(appt.SlotID().String())); err != nil {
		return err
	}
	active := r.tx.store.committedAppointments(func(a *appointment.Appointment) bool {
		return a.SlotID() == appt.SlotID() && a.IsActive()
	})
	for _, a := range active {
		if pending, ok := r.tx.appointments[a.ID()]; ok && !pending.IsActive() {
			continue
		}
		return errs.Mark(errs.Newf("slot %s already has appointment %s", appt.SlotID(), a.ID()), errs.ErrAlreadyBooked)
	}
	for _, a := range r.tx.appointments {
		if a.SlotID() == appt.SlotID() && a.IsActive() {
			return errs.Mark(errs.Newf("slot %s already has appointment %s", appt.SlotID(), a.ID()), errs.ErrAlreadyBooked)
		}
	}
	r.tx.appointments[appt.ID()] = appt.Clone()
	return nil
}

func (r *appointmentRepo) MarkCancelled(ctx context.Context, appt *appointment.Appointment) error {
	current, err := r.FindByID(ctx, appt.ID())
	if err != nil {
		return err
	}
	if current.Status() != appointment.StatusScheduled {
		return errs.ErrAlreadyCancelled
	}
	r.tx.appointments[appt.ID()] = appt.Clone()
	return nil
}
