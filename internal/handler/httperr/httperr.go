package httperr

import (
	"net/http"

	"office-hours/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// KindUnauthenticated is reported by the auth middleware before any
// domain code runs.
const KindUnauthenticated errs.Kind = "UNAUTHENTICATED"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind    errs.Kind `json:"kind"`
		Message string    `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var statusByKind = map[errs.Kind]int{
	errs.KindInvalidTimeRange:    http.StatusBadRequest,
	errs.KindValidation:          http.StatusBadRequest,
	errs.KindSlotOverlap:         http.StatusConflict,
	errs.KindAlreadyBooked:       http.StatusConflict,
	errs.KindAlreadyCancelled:    http.StatusConflict,
	errs.KindTransactionConflict: http.StatusConflict,
	errs.KindSlotNotFound:        http.StatusNotFound,
	errs.KindAppointmentNotFound: http.StatusNotFound,
	errs.KindForbidden:           http.StatusForbidden,
	errs.KindStorageUnavailable:  http.StatusServiceUnavailable,
}

var messageByKind = map[errs.Kind]string{
	errs.KindInvalidTimeRange:    "Invalid time range",
	errs.KindValidation:          "Validation failed",
	errs.KindSlotOverlap:         "Slot overlaps an existing slot",
	errs.KindAlreadyBooked:       "Slot is already booked",
	errs.KindAlreadyCancelled:    "Appointment is already cancelled",
	errs.KindTransactionConflict: "Request conflicted with a concurrent change, please retry",
	errs.KindSlotNotFound:        "Slot not found",
	errs.KindAppointmentNotFound: "Appointment not found",
	errs.KindForbidden:           "Forbidden",
	errs.KindStorageUnavailable:  "Service temporarily unavailable",
}

func StatusOf(kind errs.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusServiceUnavailable
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, kind errs.Kind, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Kind = kind
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithKind classifies err and responds with the fixed status and
// message for its kind. Internal details never reach the body.
func AbortWithKind(c *gin.Context, err error) {
	resp := ResponseFor(err)
	AbortWithError(c, resp.Status, resp.Error.Kind, err, resp.Error.Message, nil)
}

// ResponseFor is the body AbortWithKind would send for err.
func ResponseFor(err error) Response {
	kind := errs.KindOf(err)
	resp := Response{Status: StatusOf(kind)}
	resp.Error.Kind = kind
	resp.Error.Message = messageByKind[kind]
	return resp
}

// AbortInvalidRequest reports a malformed request body, path or query.
func AbortInvalidRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, errs.KindValidation, err, msg, nil)
}
