package web

import (
	"net/http"
	"time"

	"bitbucket.org/crgw/rental-quote/api"
	"bitbucket.org/crgw/rental-quote/internal/quoting"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Quoting     quoting.Dependencies
	NewRelicApp *newrelic.Application
	Production  bool
}

func SetupRouter(log *zerolog.Logger, deps Dependencies) (*gin.Engine, error) {
	startTime := time.Now()

	openapiRouter, err := NewOpenapiRouter(api.Spec)
	if err != nil {
		return nil, err
	}

	if deps.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.
		Use(StartRequest(openapiRouter)).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(OpenapiValidator(openapiRouter))

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", api.Spec)
	})

	pprof.Register(router)

	quoting.RegisterRoutes(router, deps.Quoting)

	return router, nil
}
