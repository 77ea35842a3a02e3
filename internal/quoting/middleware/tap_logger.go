package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TapLogger(c *gin.Context) {
	logger := c.MustGet("logger").(*zerolog.Logger)

	loggerContext := logger.
		With().
		Str("route", c.FullPath()).
		Str("operationId", uuid.New().String())

	if carID := c.Params.ByName("carId"); carID != "" {
		loggerContext = loggerContext.Str("carId", carID)
	}

	if bookingID := c.Params.ByName("bookingId"); bookingID != "" {
		loggerContext = loggerContext.Str("bookingId", bookingID)
	}

	requestLogger := loggerContext.Logger()
	c.Set("logger", &requestLogger)
}
