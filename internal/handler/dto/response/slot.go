package response

import (
	"time"

	"office-hours/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProfessorID uuid.UUID  `json:"professor_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	IsBooked    bool       `json:"is_booked"`
	BookedBy    *uuid.UUID `json:"booked_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromSlotView(v *queries.SlotView) (*SlotResponse, error) {
	var res SlotResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromSlotViews(vs []*queries.SlotView) ([]SlotResponse, error) {
	res := make([]SlotResponse, 0, len(vs))
	if err := copier.Copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}
