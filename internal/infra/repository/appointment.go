package repository

import (
	"context"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/infra"
	"office-hours/internal/infra/repository/converter"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/internal/pkg/errs"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) error
	GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointment, error)
	CancelAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CancelAppointmentParams) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentByID(ctx, r.db, id)
	if err != nil {
		wrapped := infra.WrapRepoErr("failed to find appointment by ID", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return nil, errs.Mark(wrapped, errs.ErrAppointmentNotFound)
		}
		return nil, wrapped
	}
	return converter.AppointmentFromRow(row), nil
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) error {
	if err := r.queries.CreateAppointment(ctx, r.db, converter.AppointmentToCreateParams(appt)); err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

// MarkCancelled writes only over a row that is still scheduled; zero rows
// affected means another transaction cancelled it first.
func (r *AppointmentRepository) MarkCancelled(ctx context.Context, appt *appointment.Appointment) error {
	affected, err := r.queries.CancelAppointment(ctx, r.db, converter.AppointmentToCancelParams(appt))
	if err != nil {
		return infra.WrapRepoErr("failed to cancel appointment", err)
	}
	if affected == 0 {
		return errs.Mark(
			infra.WrapRepoErr("appointment is no longer scheduled", nil, infra.KindStaleWrite),
			errs.ErrAlreadyCancelled,
		)
	}
	return nil
}
