//go:build unit || e2e

package builder

import (
	"time"

	"office-hours/internal/domain/availability"
	reqdto "office-hours/internal/handler/dto/request"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/internal/pkg/pgconv"
	"office-hours/internal/pkg/ptr"

	"github.com/google/uuid"
)

// BaseTime is a fixed "now" for deterministic tests.
var BaseTime = time.Date(2030, 1, 7, 8, 0, 0, 0, time.UTC)

type SlotBuilder struct {
	ID          uuid.UUID
	ProfessorID uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	BookedBy    *uuid.UUID
	CreatedAt   time.Time
}

func NewSlotBuilder() *SlotBuilder {
	start := BaseTime.Add(24 * time.Hour)
	return &SlotBuilder{
		ID:          uuid.New(),
		ProfessorID: uuid.New(),
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		CreatedAt:   BaseTime,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithProfessor(id uuid.UUID) *SlotBuilder {
	b.ProfessorID = id
	return b
}

func (b *SlotBuilder) WithWindow(start time.Time, d time.Duration) *SlotBuilder {
	b.StartTime = start
	b.EndTime = start.Add(d)
	return b
}

func (b *SlotBuilder) BookedByStudent(id uuid.UUID) *SlotBuilder {
	b.BookedBy = ptr.To(id)
	return b
}

// Build methods
func (b *SlotBuilder) BuildDomain() *availability.Slot {
	return availability.ReconstructSlot(
		b.ID,
		b.ProfessorID,
		availability.ReconstructTimeRange(b.StartTime, b.EndTime),
		b.BookedBy != nil,
		ptr.Copy(b.BookedBy),
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *SlotBuilder) BuildInfra() sqlc.AvailabilitySlot {
	return sqlc.AvailabilitySlot{
		ID:          b.ID,
		ProfessorID: b.ProfessorID,
		StartTime:   pgconv.TimeToPgtype(b.StartTime),
		EndTime:     pgconv.TimeToPgtype(b.EndTime),
		IsBooked:    b.BookedBy != nil,
		BookedBy:    pgconv.UUIDPtrToPgtype(b.BookedBy),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	return reqdto.CreateSlotRequest{
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}
