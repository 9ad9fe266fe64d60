package queries

import (
	"context"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/domain/user"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*AppointmentView, error)
	// List returns the principal's appointments, as student or as professor
	// depending on the principal's role.
	List(ctx context.Context, principal user.Principal, status *appointment.Status) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewAppointmentQueries(uow shared.UnitOfWork) AppointmentQueries {
	return &appointmentQueriesImpl{uow: uow}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*AppointmentView, error) {
	appt, err := q.uow.Snapshot().AppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := appt.EnsureVisibleTo(actorID); err != nil {
		return nil, err
	}
	return NewAppointmentView(appt), nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context, principal user.Principal, status *appointment.Status) ([]*AppointmentView, error) {
	if status != nil && !status.IsValid() {
		return nil, errs.Mark(errs.Newf("unknown status %q", *status), errs.ErrValidation)
	}

	id := principal.ID
	filter := shared.AppointmentFilter{Status: status}
	switch principal.Role {
	case user.RoleProfessor:
		filter.ProfessorID = &id
	case user.RoleStudent:
		filter.StudentID = &id
	default:
		return nil, errs.ErrForbidden
	}

	appts, err := q.uow.Snapshot().Appointments(ctx, filter)
	if err != nil {
		return nil, err
	}
	return NewAppointmentViews(appts), nil
}
