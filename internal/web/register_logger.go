package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RegisterLogger stores the request logger under "logger", tagged with the
// correlation id and the api operation when StartRequest found one.
func RegisterLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		loggerContext := logger.
			With().
			Str("correlationId", c.GetString("correlationId"))

		if operation := c.GetString(apiOperationKey); operation != "" {
			loggerContext = loggerContext.Str(apiOperationKey, operation)
		}

		requestLogger := loggerContext.Logger()
		c.Set("logger", &requestLogger)
	}
}
