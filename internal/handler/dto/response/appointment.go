package response

import (
	"time"

	"office-hours/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
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

func FromAppointmentView(v *queries.AppointmentView) (*AppointmentResponse, error) {
	var res AppointmentResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromAppointmentViews(vs []*queries.AppointmentView) ([]AppointmentResponse, error) {
	res := make([]AppointmentResponse, 0, len(vs))
	if err := copier.Copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}
