//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"office-hours/internal/domain/appointment"
	"office-hours/internal/domain/user"
	"office-hours/internal/handler/api"
	"office-hours/internal/handler/httperr"
	"office-hours/internal/handler/middleware"
	resdto "office-hours/internal/handler/dto/response"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/usecase/queries"
	"office-hours/tests/common/builder"
	"office-hours/tests/common/httptest"
	"office-hours/tests/common/testutil"
	commandsmock "office-hours/tests/mock/commands"
	queriesmock "office-hours/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	actor        user.Principal
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)
	s.actor = user.Principal{ID: uuid.New(), Role: user.RoleStudent}

	// Stand-in for RequireAuth: any bearer token authenticates as s.actor.
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		middleware.SetPrincipal(c, s.actor)
		c.Next()
	}

	s.router.POST("/appointments", authMiddleware, s.handler.Book)
	s.router.GET("/appointments", authMiddleware, s.handler.List)
	s.router.GET("/appointments/:id", authMiddleware, s.handler.Get)
	s.router.POST("/appointments/:id/cancel", authMiddleware, s.handler.Cancel)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

// ================================================================================
// TestBook
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestBook() {
	url := "/appointments"
	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildBookRequestDTO()

	s.Run("success: 201 with the new appointment", func() {
		b.StudentID = s.actor.ID
		s.mockCommands.EXPECT().Book(gomock.Any(), s.actor.ID, b.SlotID, b.Notes).
			Return(b.BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.ID)
		s.Equal(b.SlotID, body.SlotID)
		s.Equal("scheduled", body.Status)
		s.Nil(body.CancelledBy)
	})

	s.Run("validation", func() {
		// notes are trimmed and capped by the domain, so the edge passes them through
		padded := "  " + strings.Repeat("é", appointment.MaxNotesLength) + "\n"
		cases := []struct {
			name       string
			mutate     func(map[string]any)
			bookErr    error
			expectBook bool
			expectCode int
		}{
			{"notes at limit", testutil.Field("notes", strings.Repeat("a", 500)), nil, true, http.StatusCreated},
			{"notes at limit with padding", testutil.Field("notes", padded), nil, true, http.StatusCreated},
			{"notes omitted", testutil.Field("notes", nil), nil, true, http.StatusCreated},
			{"notes over limit", testutil.Field("notes", strings.Repeat("a", 501)), appointment.ErrNotesTooLong, true, http.StatusBadRequest},
			{"slot_id missing", testutil.Field("slot_id", nil), nil, false, http.StatusBadRequest},
			{"slot_id malformed", testutil.Field("slot_id", "not-a-uuid"), nil, false, http.StatusBadRequest},
			{"slot_id nil uuid", testutil.Field("slot_id", uuid.Nil.String()), nil, false, http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectBook {
					notes, _ := requestMap["notes"].(string)
					call := s.mockCommands.EXPECT().Book(gomock.Any(), s.actor.ID, b.SlotID, notes)
					if tc.bookErr != nil {
						call.Return(nil, tc.bookErr)
					} else {
						call.Return(b.BuildDomain(), nil)
					}
				}

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")

				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
				if tc.expectCode == http.StatusBadRequest {
					httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
				}
			})
		}
	})

	s.Run("domain errors map to status and kind", func() {
		cases := []struct {
			err    error
			status int
			kind   errs.Kind
		}{
			{errs.ErrAlreadyBooked, http.StatusConflict, errs.KindAlreadyBooked},
			{errs.Wrap(errs.ErrSlotNotFound, "find slot"), http.StatusNotFound, errs.KindSlotNotFound},
			{errs.Mark(errs.New("serialization failure"), errs.ErrTransactionConflict), http.StatusConflict, errs.KindTransactionConflict},
			{errs.New("connection reset"), http.StatusServiceUnavailable, errs.KindStorageUnavailable},
		}
		for _, tc := range cases {
			s.Run(string(tc.kind), func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

				httptest.AssertErrorKind(s.T(), rec, tc.status, string(tc.kind))
				s.NotContains(rec.Body.String(), "connection reset", "internal detail must not leak")
			})
		}
	})

	s.Run("error: 401 without principal", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusUnauthorized, string(httperr.KindUnauthenticated))
	})
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestList() {
	views := queries.NewAppointmentViews([]*appointment.Appointment{
		builder.NewAppointmentBuilder().BuildDomain(),
		builder.NewAppointmentBuilder().BuildDomain(),
	})

	s.Run("success: no filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor, (*appointment.Status)(nil)).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "token")

		var body []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
	})

	s.Run("success: status filter passed through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), s.actor, gomock.Any()).
			DoAndReturn(func(_ any, _ user.Principal, status *appointment.Status) ([]*queries.AppointmentView, error) {
				s.Require().NotNil(status)
				s.Equal(appointment.StatusCancelled, *status)
				return nil, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?status=cancelled", nil, "token")

		var body []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?status=archived", nil, "token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})
}

func (s *AppointmentHandlerTestSuite) TestGet() {
	b := builder.NewAppointmentBuilder()
	url := "/appointments/" + b.ID.String()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor.ID, b.ID).
			Return(queries.NewAppointmentView(b.BuildDomain()), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.Notes, body.Notes)
	})

	s.Run("error: not a party", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor.ID, b.ID).Return(nil, errs.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, string(errs.KindForbidden))
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/123", nil, "token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, string(errs.KindValidation))
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCancel() {
	b := builder.NewAppointmentBuilder()
	url := "/appointments/" + b.ID.String() + "/cancel"

	s.Run("success: 200 with cancelled appointment", func() {
		appt := b.BuildDomain()
		s.Require().NoError(appt.Cancel(b.StudentID, builder.BaseTime))
		s.mockCommands.EXPECT().Cancel(gomock.Any(), b.ID, s.actor.ID).Return(appt, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
		s.Require().NotNil(body.CancelledBy)
		s.Equal(b.StudentID, *body.CancelledBy)
	})

	s.Run("errors", func() {
		cases := []struct {
			err    error
			status int
			kind   errs.Kind
		}{
			{errs.ErrAppointmentNotFound, http.StatusNotFound, errs.KindAppointmentNotFound},
			{errs.ErrForbidden, http.StatusForbidden, errs.KindForbidden},
			{errs.ErrAlreadyCancelled, http.StatusConflict, errs.KindAlreadyCancelled},
		}
		for _, tc := range cases {
			s.Run(string(tc.kind), func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), b.ID, s.actor.ID).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
				httptest.AssertErrorKind(s.T(), rec, tc.status, string(tc.kind))
			})
		}
	})
}
