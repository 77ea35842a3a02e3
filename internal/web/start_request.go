package web

import (
	"time"

	"github.com/getkin/kin-openapi/routers"
	"github.com/gin-gonic/gin"
)

const (
	requestStartTimeKey = "requestStartTime"
	apiOperationKey     = "apiOperation"
)

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

// StartRequest stamps the request start time and, for documented routes,
// the api document operationId serving it.
func StartRequest(router routers.Router) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestStartTimeKey, CurrentTimeFunc())

		route, _, err := router.FindRoute(c.Request)
		if err == nil && route.Operation != nil && route.Operation.OperationID != "" {
			c.Set(apiOperationKey, route.Operation.OperationID)
		}
	}
}
