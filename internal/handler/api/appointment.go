package api

import (
	"net/http"

	reqdto "office-hours/internal/handler/dto/request"
	resdto "office-hours/internal/handler/dto/response"
	"office-hours/internal/handler/httperr"
	"office-hours/internal/handler/middleware"
	"office-hours/internal/pkg/errs"
	"office-hours/internal/usecase/commands"
	"office-hours/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	cmds commands.BookingCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.BookingCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Claim a free slot for the calling student
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Slot and notes"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		abortNoPrincipal(c)
		return
	}

	var req reqdto.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err, "Invalid request format")
		return
	}

	appt, err := h.cmds.Book(c.Request.Context(), studentID, req.SlotID, req.Notes)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	h.respondOne(c, http.StatusCreated, queries.NewAppointmentView(appt))
}

// @Summary List my appointments
// @Description Appointments where the caller is the student or the professor, by role
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(scheduled, cancelled, completed)
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		abortNoPrincipal(c)
		return
	}

	var query reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortInvalidRequest(c, err, "Invalid status filter")
		return
	}

	views, err := h.q.List(c.Request.Context(), principal, query.StatusFilter())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	res, err := resdto.FromAppointmentViews(views)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get appointment
// @Description Visible only to the appointment's student and professor
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		abortNoPrincipal(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortInvalidRequest(c, err, "Invalid appointment ID format")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actorID, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	h.respondOne(c, http.StatusOK, view)
}

// @Summary Cancel appointment
// @Description Cancel a scheduled appointment and free its slot. Either party may cancel.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		abortNoPrincipal(c)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortInvalidRequest(c, err, "Invalid appointment ID format")
		return
	}

	appt, err := h.cmds.Cancel(c.Request.Context(), id, actorID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	h.respondOne(c, http.StatusOK, queries.NewAppointmentView(appt))
}

func (h *AppointmentHandler) respondOne(c *gin.Context, status int, view *queries.AppointmentView) {
	res, err := resdto.FromAppointmentView(view)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(status, res)
}

func abortNoPrincipal(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, httperr.KindUnauthenticated,
		errs.New("no principal in context"), "Unauthorized", nil)
}
