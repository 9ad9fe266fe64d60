package api

import (
	"net/http"

	reqdto "office-hours/internal/handler/dto/request"
	resdto "office-hours/internal/handler/dto/response"
	"office-hours/internal/handler/httperr"
	"office-hours/internal/handler/middleware"
	"office-hours/internal/usecase/commands"
	"office-hours/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.SlotQueries
}

func NewSlotHandler(cmds commands.AvailabilityCommands, q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{cmds: cmds, q: q}
}

// @Summary Create availability slot
// @Description Publish a bookable time window for the calling professor
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot window"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	professorID, ok := middleware.GetUserID(c)
	if !ok {
		abortNoPrincipal(c)
		return
	}

	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortInvalidRequest(c, err, "Invalid request format")
		return
	}

	slot, err := h.cmds.CreateSlot(c.Request.Context(), professorID, req.StartTime, req.EndTime)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	res, err := resdto.FromSlotView(queries.NewSlotView(slot))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List my slots
// @Description All slots of the calling professor, booked or not
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SlotResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/slots/mine [get]
func (h *SlotHandler) ListMine(c *gin.Context) {
	professorID, ok := middleware.GetUserID(c)
	if !ok {
		abortNoPrincipal(c)
		return
	}

	views, err := h.q.ListByProfessor(c.Request.Context(), professorID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	h.respondSlots(c, views)
}

// @Summary List available slots
// @Description Unbooked future slots of a professor, earliest first
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Professor ID"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/professors/{id}/slots [get]
func (h *SlotHandler) ListAvailable(c *gin.Context) {
	professorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortInvalidRequest(c, err, "Invalid professor ID format")
		return
	}

	views, err := h.q.ListAvailable(c.Request.Context(), professorID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	h.respondSlots(c, views)
}

func (h *SlotHandler) respondSlots(c *gin.Context, views []*queries.SlotView) {
	res, err := resdto.FromSlotViews(views)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
