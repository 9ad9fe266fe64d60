package queries

import (
	"time"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/domain/availability"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	ID          uuid.UUID  `json:"id"`
	ProfessorID uuid.UUID  `json:"professor_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	IsBooked    bool       `json:"is_booked"`
	BookedBy    *uuid.UUID `json:"booked_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type AppointmentView struct {
	ID          uuid.UUID  `json:"id"`
	StudentID   uuid.UUID  `json:"student_id"`
	ProfessorID uuid.UUID  `json:"professor_id"`
	SlotID      uuid.UUID  `json:"slot_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	CancelledBy *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewSlotView(s *availability.Slot) *SlotView {
	return &SlotView{
		ID:          s.ID(),
		ProfessorID: s.ProfessorID(),
		StartTime:   s.Start(),
		EndTime:     s.End(),
		IsBooked:    s.IsBooked(),
		BookedBy:    s.BookedBy(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func NewSlotViews(slots []*availability.Slot) []*SlotView {
	views := make([]*SlotView, len(slots))
	for i, s := range slots {
		views[i] = NewSlotView(s)
	}
	return views
}

func NewAppointmentView(a *appointment.Appointment) *AppointmentView {
	return &AppointmentView{
		ID:          a.ID(),
		StudentID:   a.StudentID(),
		ProfessorID: a.ProfessorID(),
		SlotID:      a.SlotID(),
		StartTime:   a.StartTime(),
		EndTime:     a.EndTime(),
		Status:      a.Status().String(),
		Notes:       a.Notes().String(),
		CancelledBy: a.CancelledBy(),
		CancelledAt: a.CancelledAt(),
		CreatedAt:   a.CreatedAt(),
		UpdatedAt:   a.UpdatedAt(),
	}
}

func NewAppointmentViews(appts []*appointment.Appointment) []*AppointmentView {
	views := make([]*AppointmentView, len(appts))
	for i, a := range appts {
		views[i] = NewAppointmentView(a)
	}
	return views
}
