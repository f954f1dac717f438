package api

import (
	"net/http"

	"gymdesk/internal/apperr"
	"gymdesk/internal/logger"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal Server Error"

// ErrorHandler turns the last error attached with c.Error into a JSON body.
// Errors without an HTTP kind become 500s; in production their text is only logged.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperr.As(err); ok && appErr.Kind != apperr.KindInternal {
			if appErr.Err != nil {
				logger.Warn("request failed",
					"request_id", c.GetString("request_id"),
					"status", appErr.Status(),
					"error", appErr.Err,
				)
			}
			c.JSON(appErr.Status(), ErrorResponse{Message: appErr.Message, Errors: appErr.Fields})
			return
		}

		logger.Error("unhandled error",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)

		message := err.Error()
		if production {
			message = internalErrorMessage
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: message})
	}
}
