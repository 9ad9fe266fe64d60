package converter

import (
	"office-hours/internal/domain/appointment"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		ID:          a.ID(),
		StudentID:   a.StudentID(),
		ProfessorID: a.ProfessorID(),
		SlotID:      a.SlotID(),
		StartTime:   pgconv.TimeToPgtype(a.StartTime()),
		EndTime:     pgconv.TimeToPgtype(a.EndTime()),
		Status:      a.Status().String(),
		Notes:       a.Notes().String(),
		CreatedAt:   pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToCancelParams(a *appointment.Appointment) sqlc.CancelAppointmentParams {
	return sqlc.CancelAppointmentParams{
		ID:          a.ID(),
		CancelledBy: pgconv.UUIDPtrToPgtype(a.CancelledBy()),
		CancelledAt: pgconv.TimePtrToPgtype(a.CancelledAt()),
	}
}

func AppointmentFromRow(row sqlc.Appointment) *appointment.Appointment {
	return appointment.Reconstruct(
		row.ID,
		row.StudentID,
		row.ProfessorID,
		row.SlotID,
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimeFromPgtype(row.EndTime),
		appointment.Status(row.Status),
		appointment.ReconstructNotes(row.Notes),
		pgconv.UUIDPtrFromPgtype(row.CancelledBy),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func AppointmentsFromRows(rows []sqlc.Appointment) []*appointment.Appointment {
	appts := make([]*appointment.Appointment, len(rows))
	for i, row := range rows {
		appts[i] = AppointmentFromRow(row)
	}
	return appts
}
