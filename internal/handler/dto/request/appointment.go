package request

import (
	"office-hours/internal/domain/appointment"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	SlotID uuid.UUID `json:"slot_id" binding:"required"`
	Notes  string    `json:"notes"`
}

type ListAppointmentsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=scheduled cancelled completed"`
}

func (q ListAppointmentsQuery) StatusFilter() *appointment.Status {
	if q.Status == "" {
		return nil
	}
	s := appointment.Status(q.Status)
	return &s
}
