package responding_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/crgw/rental-quote/internal/schema"
	"bitbucket.org/crgw/rental-quote/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should abort with the error body and log it", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out)

		nextCalled := false

		router := gin.New()
		router.GET("/",
			func(c *gin.Context) {
				c.Set("logger", &log)
				responding.HandleError(c, http.StatusBadGateway, schema.CatalogError, "Catalog unavailable", errors.New("dial tcp: refused"))
			},
			func(c *gin.Context) {
				nextCalled = true
			},
		)

		response := httptest.NewRecorder()
		router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusBadGateway, response.Code)
		assert.JSONEq(t, `{"code": "CATALOG_ERROR", "message": "Catalog unavailable", "error": "dial tcp: refused"}`, response.Body.String())

		line := map[string]any{}
		assert.NoError(t, json.Unmarshal(out.Bytes(), &line))
		assert.Equal(t, "error", line["level"])
		assert.Equal(t, "Catalog unavailable", line["message"])
		assert.Equal(t, "CATALOG_ERROR", line["errorCode"])
	})

	t.Run("should respond without a request logger", func(t *testing.T) {
		router := gin.New()
		router.GET("/", func(c *gin.Context) {
			responding.HandleError(c, http.StatusBadRequest, schema.InvalidRequestError, "Failed to bind request params", nil)
		})

		response := httptest.NewRecorder()
		router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.JSONEq(t, `{"code": "INVALID_REQUEST", "message": "Failed to bind request params"}`, response.Body.String())
	})
}
