//go:build unit || e2e

package builder

import (
	"time"

	"office-hours/internal/domain/appointment"
	reqdto "office-hours/internal/handler/dto/request"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID          uuid.UUID
	StudentID   uuid.UUID
	ProfessorID uuid.UUID
	SlotID      uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	Status      appointment.Status
	Notes       string
	CreatedAt   time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	start := BaseTime.Add(24 * time.Hour)
	return &AppointmentBuilder{
		ID:          uuid.New(),
		StudentID:   uuid.New(),
		ProfessorID: uuid.New(),
		SlotID:      uuid.New(),
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      appointment.StatusScheduled,
		Notes:       "Questions about homework 3",
		CreatedAt:   BaseTime,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

// ForSlot copies the slot's professor and window, as booking does.
func (b *AppointmentBuilder) ForSlot(s *SlotBuilder) *AppointmentBuilder {
	b.SlotID = s.ID
	b.ProfessorID = s.ProfessorID
	b.StartTime = s.StartTime
	b.EndTime = s.EndTime
	return b
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	return appointment.Reconstruct(
		b.ID, b.StudentID, b.ProfessorID, b.SlotID,
		b.StartTime, b.EndTime,
		b.Status,
		appointment.ReconstructNotes(b.Notes),
		nil, nil,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *AppointmentBuilder) BuildInfra() sqlc.Appointment {
	return sqlc.Appointment{
		ID:          b.ID,
		StudentID:   b.StudentID,
		ProfessorID: b.ProfessorID,
		SlotID:      b.SlotID,
		StartTime:   pgconv.TimeToPgtype(b.StartTime),
		EndTime:     pgconv.TimeToPgtype(b.EndTime),
		Status:      b.Status.String(),
		Notes:       b.Notes,
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *AppointmentBuilder) BuildBookRequestDTO() reqdto.BookAppointmentRequest {
	return reqdto.BookAppointmentRequest{
		SlotID: b.SlotID,
		Notes:  b.Notes,
	}
}
