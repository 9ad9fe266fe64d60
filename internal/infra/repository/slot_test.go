//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"office-hours/internal/infra"
	"office-hours/internal/infra/repository"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/internal/pkg/errs"
	"office-hours/tests/common/builder"
	repositorymock "office-hours/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Slot Tests
// =============================================================================

func TestSlotRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		returnErr  error
		expectKind errs.Kind
	}{
		{name: "success: slot inserted"},
		{
			name:       "error: exclusion constraint means overlap",
			returnErr:  &pgconn.PgError{Code: infra.PgExclusionViolation, ConstraintName: infra.ConstraintSlotNoOverlap},
			expectKind: errs.KindSlotOverlap,
		},
		{
			name:       "error: time range check",
			returnErr:  &pgconn.PgError{Code: infra.PgCheckViolation, ConstraintName: infra.ConstraintSlotTimeRange},
			expectKind: errs.KindInvalidTimeRange,
		},
		{
			name:       "error: database failure",
			returnErr:  errors.New("database connection error"),
			expectKind: errs.KindStorageUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)

			slot := builder.NewSlotBuilder().BuildDomain()
			mockQueries.EXPECT().
				CreateSlot(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateSlotParams) error {
					assert.Equal(t, slot.ID(), arg.ID)
					assert.Equal(t, slot.ProfessorID(), arg.ProfessorID)
					return tc.returnErr
				})

			err := repo.Create(ctx, slot)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectKind, errs.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Find / List Tests
// =============================================================================

func TestSlotRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSlotRepository(mockQueries, mockDB)

	t.Run("success: row converted to domain", func(t *testing.T) {
		b := builder.NewSlotBuilder().BookedByStudent(uuid.New())
		mockQueries.EXPECT().GetSlotByID(ctx, mockDB, b.ID).Return(b.BuildInfra(), nil)

		slot, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, slot.ID())
		assert.True(t, slot.IsBooked())
		assert.Equal(t, *b.BookedBy, *slot.BookedBy())
		assert.True(t, b.StartTime.Equal(slot.Start()))
	})

	t.Run("error: no rows is slot not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries.EXPECT().GetSlotByID(ctx, mockDB, id).Return(sqlc.AvailabilitySlot{}, pgx.ErrNoRows)

		_, err := repo.FindByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, errs.KindSlotNotFound, errs.KindOf(err))
	})
}

func TestSlotRepository_ListByProfessor(t *testing.T) {
	ctx := context.Background()
	professorID := uuid.New()

	t.Run("success: locks before reading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSlotRepository(mockQueries, mockDB)

		rows := []sqlc.AvailabilitySlot{
			builder.NewSlotBuilder().WithProfessor(professorID).BuildInfra(),
			builder.NewSlotBuilder().WithProfessor(professorID).WithWindow(builder.BaseTime.Add(48*time.Hour), time.Hour).BuildInfra(),
		}
		gomock.InOrder(
			mockQueries.EXPECT().LockProfessorSlots(ctx, mockDB, professorID).Return(nil),
			mockQueries.EXPECT().ListSlotsByProfessor(ctx, mockDB, professorID).Return(rows, nil),
		)

		slots, err := repo.ListByProfessor(ctx, professorID)
		require.NoError(t, err)
		assert.Len(t, slots, 2)
	})

	t.Run("error: lock timeout is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewSlotRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockProfessorSlots(ctx, mockDB, professorID).Return(&pgconn.PgError{Code: infra.PgLockNotAvailable})

		_, err := repo.ListByProfessor(ctx, professorID)
		require.Error(t, err)
		assert.Equal(t, errs.KindTransactionConflict, errs.KindOf(err))
	})
}

// =============================================================================
// Claim / Release Tests
// =============================================================================

func TestSlotRepository_Claim(t *testing.T) {
	ctx := context.Background()
	now := builder.BaseTime
	studentID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockSlotWriteQueries, *builder.SlotBuilder, sqlc.DBTX)
		expectKind errs.Kind
	}{
		{
			name: "success: free slot claimed",
			setupMock: func(m *repositorymock.MockSlotWriteQueries, b *builder.SlotBuilder, db sqlc.DBTX) {
				claimed := b.BookedByStudent(studentID).BuildInfra()
				m.EXPECT().ClaimSlot(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ClaimSlotParams) (sqlc.AvailabilitySlot, error) {
						assert.Equal(t, b.ID, arg.ID)
						assert.Equal(t, studentID, uuid.UUID(arg.BookedBy.Bytes))
						return claimed, nil
					})
			},
		},
		{
			name: "error: no row updated and slot exists means already booked",
			setupMock: func(m *repositorymock.MockSlotWriteQueries, b *builder.SlotBuilder, db sqlc.DBTX) {
				m.EXPECT().ClaimSlot(ctx, db, gomock.Any()).Return(sqlc.AvailabilitySlot{}, pgx.ErrNoRows)
				m.EXPECT().GetSlotByID(ctx, db, b.ID).Return(b.BookedByStudent(uuid.New()).BuildInfra(), nil)
			},
			expectKind: errs.KindAlreadyBooked,
		},
		{
			name: "error: no row updated and slot missing means not found",
			setupMock: func(m *repositorymock.MockSlotWriteQueries, b *builder.SlotBuilder, db sqlc.DBTX) {
				m.EXPECT().ClaimSlot(ctx, db, gomock.Any()).Return(sqlc.AvailabilitySlot{}, pgx.ErrNoRows)
				m.EXPECT().GetSlotByID(ctx, db, b.ID).Return(sqlc.AvailabilitySlot{}, pgx.ErrNoRows)
			},
			expectKind: errs.KindSlotNotFound,
		},
		{
			name: "error: serialization failure is a conflict",
			setupMock: func(m *repositorymock.MockSlotWriteQueries, b *builder.SlotBuilder, db sqlc.DBTX) {
				m.EXPECT().ClaimSlot(ctx, db, gomock.Any()).Return(sqlc.AvailabilitySlot{}, &pgconn.PgError{Code: infra.PgSerializationFailure})
			},
			expectKind: errs.KindTransactionConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewSlotRepository(mockQueries, mockDB)
			b := builder.NewSlotBuilder()
			tc.setupMock(mockQueries, b, mockDB)

			slot, err := repo.Claim(ctx, b.ID, studentID, now)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectKind, errs.KindOf(err))
				assert.Nil(t, slot)
				return
			}
			require.NoError(t, err)
			assert.True(t, slot.IsBooked())
			assert.Equal(t, studentID, *slot.BookedBy())
		})
	}
}

func TestSlotRepository_Release(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockSlotWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewSlotRepository(mockQueries, mockDB)

	t.Run("success: slot freed", func(t *testing.T) {
		b := builder.NewSlotBuilder()
		mockQueries.EXPECT().ReleaseSlot(ctx, mockDB, gomock.Any()).Return(b.BuildInfra(), nil)

		slot, err := repo.Release(ctx, b.ID, builder.BaseTime)
		require.NoError(t, err)
		assert.False(t, slot.IsBooked())
		assert.Nil(t, slot.BookedBy())
	})

	t.Run("error: missing slot", func(t *testing.T) {
		mockQueries.EXPECT().ReleaseSlot(ctx, mockDB, gomock.Any()).Return(sqlc.AvailabilitySlot{}, pgx.ErrNoRows)

		_, err := repo.Release(ctx, uuid.New(), builder.BaseTime)
		require.Error(t, err)
		assert.Equal(t, errs.KindSlotNotFound, errs.KindOf(err))
	})
}
