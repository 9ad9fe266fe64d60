package memstore

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/domain/availability"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps slots and appointments in process memory. Transactions lock
// the rows they touch until they end and buffer their writes; commit
// publishes every buffered write under one write lock.
type Store struct {
	mu           sync.RWMutex
	slots        map[uuid.UUID]*availability.Slot
	appointments map[uuid.UUID]*appointment.Appointment

	locks  *lockTable
	closed atomic.Bool
	logger *slog.Logger
}

func New(logger *slog.Logger) *Store {
	return &Store{
		slots:        make(map[uuid.UUID]*availability.Slot),
		appointments: make(map[uuid.UUID]*appointment.Appointment),
		locks:        newLockTable(),
		logger:       logger,
	}
}

// Close makes every later transaction and read fail as storage unavailable.
func (s *Store) Close() {
	s.closed.Store(true)
}

func (s *Store) available() error {
	if s.closed.Load() {
		return errs.Mark(errs.New("memory store is closed"), errs.ErrStorageUnavailable)
	}
	return nil
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := s.available(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errs.ErrTransactionConflict)
	}

	tx := newMemTx(s)
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	// The cancellation check and the publish must not be split: once commit
	// starts it runs to completion.
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errs.ErrTransactionConflict)
	}
	if err := s.available(); err != nil {
		return err
	}
	s.commit(tx)
	return nil
}

func (s *Store) commit(tx *memTx) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, slot := range tx.slots {
		s.slots[id] = slot
	}
	for id, appt := range tx.appointments {
		s.appointments[id] = appt
	}
	s.logger.Debug("memory transaction committed",
		"slots", len(tx.slots),
		"appointments", len(tx.appointments))
}

func (s *Store) Snapshot() shared.Reads {
	return &snapshotReads{store: s}
}

func (s *Store) committedSlot(id uuid.UUID) (*availability.Slot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.slots[id]
	if !ok {
		return nil, false
	}
	return slot.Clone(), true
}

func (s *Store) committedAppointment(id uuid.UUID) (*appointment.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	appt, ok := s.appointments[id]
	if !ok {
		return nil, false
	}
	return appt.Clone(), true
}

func (s *Store) committedSlots(match func(*availability.Slot) bool) []*availability.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*availability.Slot, 0)
	for _, slot := range s.slots {
		if match(slot) {
			out = append(out, slot.Clone())
		}
	}
	return out
}

func (s *Store) committedAppointments(match func(*appointment.Appointment) bool) []*appointment.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*appointment.Appointment, 0)
	for _, appt := range s.appointments {
		if match(appt) {
			out = append(out, appt.Clone())
		}
	}
	return out
}

func slotNotFound(id uuid.UUID) error {
	return errs.Mark(errs.Newf("slot %s not found", id), errs.ErrSlotNotFound)
}

func appointmentNotFound(id uuid.UUID) error {
	return errs.Mark(errs.Newf("appointment %s not found", id), errs.ErrAppointmentNotFound)
}

func sortSlots(slots []*availability.Slot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start().Before(slots[j].Start())
	})
}

func sortAppointments(appts []*appointment.Appointment) {
	sort.Slice(appts, func(i, j int) bool {
		return appts[i].StartTime().Before(appts[j].StartTime())
	})
}

type snapshotReads struct {
	store *Store
}

func (r *snapshotReads) SlotByID(_ context.Context, id uuid.UUID) (*availability.Slot, error) {
	if err := r.store.available(); err != nil {
		return nil, err
	}
	slot, ok := r.store.committedSlot(id)
	if !ok {
		return nil, slotNotFound(id)
	}
	return slot, nil
}

func (r *snapshotReads) AvailableSlots(_ context.Context, professorID uuid.UUID, after time.Time) ([]*availability.Slot, error) {
	if err := r.store.available(); err != nil {
		return nil, err
	}
	slots := r.store.committedSlots(func(s *availability.Slot) bool {
		return s.ProfessorID() == professorID && s.IsAvailableAfter(after)
	})
	sortSlots(slots)
	return slots, nil
}

func (r *snapshotReads) SlotsByProfessor(_ context.Context, professorID uuid.UUID) ([]*availability.Slot, error) {
	if err := r.store.available(); err != nil {
		return nil, err
	}
	slots := r.store.committedSlots(func(s *availability.Slot) bool {
		return s.ProfessorID() == professorID
	})
	sortSlots(slots)
	return slots, nil
}

func (r *snapshotReads) AppointmentByID(_ context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	if err := r.store.available(); err != nil {
		return nil, err
	}
	appt, ok := r.store.committedAppointment(id)
	if !ok {
		return nil, appointmentNotFound(id)
	}
	return appt, nil
}

func (r *snapshotReads) Appointments(_ context.Context, filter shared.AppointmentFilter) ([]*appointment.Appointment, error) {
	if err := r.store.available(); err != nil {
		return nil, err
	}
	appts := r.store.committedAppointments(func(a *appointment.Appointment) bool {
		if filter.StudentID != nil && a.StudentID() != *filter.StudentID {
			return false
		}
		if filter.ProfessorID != nil && a.ProfessorID() != *filter.ProfessorID {
			return false
		}
		if filter.Status != nil && a.Status() != *filter.Status {
			return false
		}
		return true
	})
	sortAppointments(appts)
	return appts, nil
}
