//go:build unit

package memstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/domain/availability"
	"office-hours/internal/infra/memstore"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/usecase/shared"
	"office-hours/tests/common/builder"
	"office-hours/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memstore.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *StoreTestSuite) seedSlot(b *builder.SlotBuilder) *availability.Slot {
	slot := b.BuildDomain()
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Slots().Create(ctx, slot)
	})
	s.Require().NoError(err)
	return slot
}

func (s *StoreTestSuite) seedAppointment(b *builder.AppointmentBuilder) *appointment.Appointment {
	appt := b.BuildDomain()
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Appointments().Create(ctx, appt)
	})
	s.Require().NoError(err)
	return appt
}

func (s *StoreTestSuite) TestCommitPublishesWrites() {
	slot := s.seedSlot(builder.NewSlotBuilder())

	got, err := s.store.Snapshot().SlotByID(s.ctx, slot.ID())
	s.Require().NoError(err)
	s.Equal(slot.ID(), got.ID())
	s.False(got.IsBooked())
}

func (s *StoreTestSuite) TestFailedTransactionLeavesNoTrace() {
	slot := s.seedSlot(builder.NewSlotBuilder())
	studentID := uuid.New()
	boom := errs.New("appointment insert failed")

	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Slots().Claim(ctx, slot.ID(), studentID, builder.BaseTime); err != nil {
			return err
		}
		return boom
	})
	s.Require().ErrorIs(err, boom)

	got, err := s.store.Snapshot().SlotByID(s.ctx, slot.ID())
	s.Require().NoError(err)
	s.False(got.IsBooked(), "claim must roll back with the transaction")
}

func (s *StoreTestSuite) TestPendingWritesInvisibleOutsideTransaction() {
	slot := builder.NewSlotBuilder().BuildDomain()

	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Slots().Create(ctx, slot); err != nil {
			return err
		}
		_, err := s.store.Snapshot().SlotByID(ctx, slot.ID())
		testutil.AssertIs(s.T(), err, errs.ErrSlotNotFound)

		inTx, err := tx.Slots().FindByID(ctx, slot.ID())
		s.Require().NoError(err)
		s.Equal(slot.ID(), inTx.ID())
		return nil
	})
	s.Require().NoError(err)
}

func (s *StoreTestSuite) TestReturnedEntitiesAreCopies() {
	slot := s.seedSlot(builder.NewSlotBuilder())

	got, err := s.store.Snapshot().SlotByID(s.ctx, slot.ID())
	s.Require().NoError(err)
	s.Require().NoError(got.Claim(uuid.New(), builder.BaseTime))

	again, err := s.store.Snapshot().SlotByID(s.ctx, slot.ID())
	s.Require().NoError(err)
	s.False(again.IsBooked())
}

func (s *StoreTestSuite) TestClaimTwice() {
	slot := s.seedSlot(builder.NewSlotBuilder())

	claim := func() error {
		return s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Slots().Claim(ctx, slot.ID(), uuid.New(), builder.BaseTime)
			return err
		})
	}
	s.Require().NoError(claim())
	testutil.AssertKind(s.T(), claim(), errs.KindAlreadyBooked)
}

func (s *StoreTestSuite) TestClaimMissingSlot() {
	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Slots().Claim(ctx, uuid.New(), uuid.New(), builder.BaseTime)
		return err
	})
	testutil.AssertKind(s.T(), err, errs.KindSlotNotFound)
}

func (s *StoreTestSuite) TestSecondActiveAppointmentForSlot() {
	slotB := builder.NewSlotBuilder()
	s.seedSlot(slotB)
	s.seedAppointment(builder.NewAppointmentBuilder().ForSlot(slotB))

	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Appointments().Create(ctx, builder.NewAppointmentBuilder().ForSlot(slotB).BuildDomain())
	})
	testutil.AssertKind(s.T(), err, errs.KindAlreadyBooked)
}

func (s *StoreTestSuite) TestCancelledAppointmentFreesSlotForNewOne() {
	slotB := builder.NewSlotBuilder()
	s.seedSlot(slotB)
	s.seedAppointment(builder.NewAppointmentBuilder().ForSlot(slotB).With(func(b *builder.AppointmentBuilder) {
		b.Status = appointment.StatusCancelled
	}))

	s.seedAppointment(builder.NewAppointmentBuilder().ForSlot(slotB))
}

func (s *StoreTestSuite) TestMarkCancelledTwice() {
	apptB := builder.NewAppointmentBuilder()
	s.seedAppointment(apptB)

	cancel := func() error {
		return s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			appt := apptB.BuildDomain()
			if err := appt.Cancel(apptB.StudentID, builder.BaseTime); err != nil {
				return err
			}
			return tx.Appointments().MarkCancelled(ctx, appt)
		})
	}
	s.Require().NoError(cancel())
	testutil.AssertKind(s.T(), cancel(), errs.KindAlreadyCancelled)
}

func (s *StoreTestSuite) TestListByProfessorSeesOwnPendingWrites() {
	professorID := uuid.New()
	s.seedSlot(builder.NewSlotBuilder().WithProfessor(professorID))
	s.seedSlot(builder.NewSlotBuilder().WithProfessor(uuid.New()))

	err := s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		pending := builder.NewSlotBuilder().
			WithProfessor(professorID).
			WithWindow(builder.BaseTime.Add(72*time.Hour), time.Hour).
			BuildDomain()
		if err := tx.Slots().Create(ctx, pending); err != nil {
			return err
		}
		slots, err := tx.Slots().ListByProfessor(ctx, professorID)
		if err != nil {
			return err
		}
		s.Len(slots, 2)
		s.True(slots[0].Start().Before(slots[1].Start()))
		return nil
	})
	s.Require().NoError(err)
}

func (s *StoreTestSuite) TestSnapshotQueries() {
	professorID := uuid.New()
	free := s.seedSlot(builder.NewSlotBuilder().WithProfessor(professorID).WithWindow(builder.BaseTime.Add(48*time.Hour), time.Hour))
	s.seedSlot(builder.NewSlotBuilder().WithProfessor(professorID).BookedByStudent(uuid.New()))
	s.seedSlot(builder.NewSlotBuilder().WithProfessor(professorID).WithWindow(builder.BaseTime.Add(-time.Hour), 30*time.Minute))

	reads := s.store.Snapshot()

	available, err := reads.AvailableSlots(s.ctx, professorID, builder.BaseTime)
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal(free.ID(), available[0].ID())

	all, err := reads.SlotsByProfessor(s.ctx, professorID)
	s.Require().NoError(err)
	s.Len(all, 3)

	studentID := uuid.New()
	s.seedAppointment(builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.StudentID = studentID }))
	s.seedAppointment(builder.NewAppointmentBuilder())

	status := appointment.StatusScheduled
	mine, err := reads.Appointments(s.ctx, shared.AppointmentFilter{StudentID: &studentID, Status: &status})
	s.Require().NoError(err)
	s.Len(mine, 1)
}

func (s *StoreTestSuite) TestLockWaitHonoursContext() {
	slot := s.seedSlot(builder.NewSlotBuilder())
	locked := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Slots().FindByID(ctx, slot.ID()); err != nil {
				return err
			}
			close(locked)
			<-done
			return nil
		})
	}()
	<-locked

	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()
	err := s.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Slots().FindByID(ctx, slot.ID())
		return err
	})
	close(done)

	testutil.AssertKind(s.T(), err, errs.KindTransactionConflict)
}

func (s *StoreTestSuite) TestWaiterProceedsAfterRelease() {
	slot := s.seedSlot(builder.NewSlotBuilder())
	locked := make(chan struct{})
	release := make(chan struct{})
	first := make(chan error, 1)

	go func() {
		first <- s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			if _, err := tx.Slots().Claim(ctx, slot.ID(), uuid.New(), builder.BaseTime); err != nil {
				return err
			}
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	second := make(chan error, 1)
	go func() {
		second <- s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Slots().Claim(ctx, slot.ID(), uuid.New(), builder.BaseTime)
			return err
		})
	}()

	close(release)
	s.Require().NoError(<-first)
	testutil.AssertKind(s.T(), <-second, errs.KindAlreadyBooked)
}

func (s *StoreTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	called := false
	err := s.store.Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	testutil.AssertKind(s.T(), err, errs.KindTransactionConflict)
	s.False(called)
}

func (s *StoreTestSuite) TestClosedStore() {
	slot := s.seedSlot(builder.NewSlotBuilder())
	s.store.Close()

	err := s.store.Within(s.ctx, func(context.Context, shared.Tx) error { return nil })
	testutil.AssertKind(s.T(), err, errs.KindStorageUnavailable)

	_, err = s.store.Snapshot().SlotByID(s.ctx, slot.ID())
	testutil.AssertKind(s.T(), err, errs.KindStorageUnavailable)
}

func TestStore_ClosedDuringTransaction(t *testing.T) {
	store := memstore.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	slot := builder.NewSlotBuilder().BuildDomain()

	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Slots().Create(ctx, slot); err != nil {
			return err
		}
		store.Close()
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, errs.KindStorageUnavailable, errs.KindOf(err))
}
