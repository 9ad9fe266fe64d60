//go:build e2e

package booking_test

import (
	"context"
	"time"

	"office-hours/internal/infra/repository"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/tests/common/dbtest"

	"github.com/google/uuid"
)

func (s *BookingSuite) slotUpdatedAt(id uuid.UUID) time.Time {
	var updatedAt time.Time
	err := s.DB.QueryRow(context.Background(),
		"SELECT updated_at FROM availability_slots WHERE id = $1", id).Scan(&updatedAt)
	s.Require().NoError(err)
	return updatedAt
}

func (s *BookingSuite) TestReleaseSlot_Idempotent() {
	ctx := context.Background()
	repo := repository.NewSlotRepository(sqlc.New(), s.DB)

	// subtests start from an empty database
	s.Run("free slot is left untouched", func() {
		slotID := dbtest.CreateTestSlot(s.T(), s.DB, uuid.New(), tomorrowAt(9), tomorrowAt(10))
		before := s.slotUpdatedAt(slotID)

		released, err := repo.Release(ctx, slotID, time.Now().Add(time.Hour))
		s.Require().NoError(err)
		s.False(released.IsBooked())
		s.True(released.UpdatedAt().Equal(before))
		s.True(s.slotUpdatedAt(slotID).Equal(before))
	})

	s.Run("booked slot is freed and stamped", func() {
		slotID := dbtest.CreateTestSlot(s.T(), s.DB, uuid.New(), tomorrowAt(11), tomorrowAt(12))
		claimedAt := time.Now().UTC().Truncate(time.Microsecond)
		_, err := repo.Claim(ctx, slotID, uuid.New(), claimedAt)
		s.Require().NoError(err)

		releasedAt := claimedAt.Add(time.Minute)
		released, err := repo.Release(ctx, slotID, releasedAt)
		s.Require().NoError(err)
		s.False(released.IsBooked())
		s.Nil(released.BookedBy())
		s.True(released.UpdatedAt().Equal(releasedAt))
	})
}
