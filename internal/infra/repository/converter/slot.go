package converter

import (
	"office-hours/internal/domain/availability"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/internal/pkg/pgconv"
)

func SlotToCreateParams(s *availability.Slot) sqlc.CreateSlotParams {
	return sqlc.CreateSlotParams{
		ID:          s.ID(),
		ProfessorID: s.ProfessorID(),
		StartTime:   pgconv.TimeToPgtype(s.Start()),
		EndTime:     pgconv.TimeToPgtype(s.End()),
		IsBooked:    s.IsBooked(),
		BookedBy:    pgconv.UUIDPtrToPgtype(s.BookedBy()),
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SlotFromRow(row sqlc.AvailabilitySlot) *availability.Slot {
	return availability.ReconstructSlot(
		row.ID,
		row.ProfessorID,
		availability.ReconstructTimeRange(
			pgconv.TimeFromPgtype(row.StartTime),
			pgconv.TimeFromPgtype(row.EndTime),
		),
		row.IsBooked,
		pgconv.UUIDPtrFromPgtype(row.BookedBy),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func SlotsFromRows(rows []sqlc.AvailabilitySlot) []*availability.Slot {
	slots := make([]*availability.Slot, len(rows))
	for i, row := range rows {
		slots[i] = SlotFromRow(row)
	}
	return slots
}
