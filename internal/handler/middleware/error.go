package middleware

import (
	"log/slog"

	"office-hours/internal/handler/httperr"
	"office-hours/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler answers for handlers that recorded an error with c.Error but
// wrote nothing. Public errors carry their response in Meta; anything else is
// classified like a domain error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		resp, ok := last.Meta.(httperr.Response)
		if !ok || !last.IsType(gin.ErrorTypePublic) {
			resp = httperr.ResponseFor(last.Err)
		}
		c.JSON(resp.Status, resp)
	}
}

// CustomRecovery turns a panic into the storage-unavailable response so a
// client never sees a dropped connection.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		err := errs.Newf("panic: %v", recovered)
		logger.Error("recovered from panic",
			"error", err.Error(),
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"stack", errs.ExtractStackLines(err, 8),
		)
		httperr.AbortWithKind(c, err)
	})
}
