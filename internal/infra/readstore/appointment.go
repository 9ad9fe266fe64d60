package readstore

import (
	"context"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/infra"
	"office-hours/internal/infra/repository/converter"
	sqlc "office-hours/internal/infra/sqlc/generated"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/pkg/pgconv"
	"office-hours/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AppointmentViewQueries interface {
	GetAppointmentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointment, error)
	ListAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsParams) ([]sqlc.Appointment, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("appointment not found", err, infra.KindNotFound), errs.ErrAppointmentNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return converter.AppointmentFromRow(row), nil
}

func (r *AppointmentReadStore) Find(ctx context.Context, filter shared.AppointmentFilter) ([]*appointment.Appointment, error) {
	params := sqlc.ListAppointmentsParams{
		StudentID:   pgconv.UUIDPtrToPgtype(filter.StudentID),
		ProfessorID: pgconv.UUIDPtrToPgtype(filter.ProfessorID),
	}
	if filter.Status != nil {
		params.Status = pgconv.StringToPgtype(filter.Status.String())
	} else {
		params.Status = pgtype.Text{Valid: false}
	}

	rows, err := r.queries.ListAppointments(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	return converter.AppointmentsFromRows(rows), nil
}
