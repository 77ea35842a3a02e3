package responding

import (
	"bitbucket.org/crgw/rental-quote/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HandleError logs the failure on the request logger and aborts with a JSON error body.
func HandleError(c *gin.Context, status int, code schema.ErrorCode, message string, err error) {
	if value, ok := c.Get("logger"); ok {
		if log, ok := value.(*zerolog.Logger); ok {
			event := log.Warn()
			if status >= 500 {
				event = log.Error()
			}

			event.
				Str("label", "error").
				Int("code", status).
				Str("errorCode", string(code)).
				Err(err).
				Msg(message)
		}
	}

	c.AbortWithStatusJSON(status, schema.NewErrorResponse(code, message, err))
}
