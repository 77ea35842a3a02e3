package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitbucket.org/crgw/rental-quote/internal/quote"
	m "bitbucket.org/crgw/rental-quote/internal/quoting/middleware"
	"bitbucket.org/crgw/rental-quote/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should refuse a pointer template", func(t *testing.T) {
		assert.Panics(t, func() {
			m.PrepareParams(&schema.QuoteRequestParams{})
		})
	})

	t.Run("should store a fresh pointer per request", func(t *testing.T) {
		router := gin.New()

		var seen []*schema.QuoteRequestParams
		router.POST("/quotes", m.PrepareParams(schema.QuoteRequestParams{}), func(c *gin.Context) {
			seen = append(seen, c.MustGet(m.ParamsKey).(*schema.QuoteRequestParams))
		})

		for _, startTime := range []string{"10:00", "11:00"} {
			body := `{"startDate": "2024-05-01", "startTime": "` + startTime + `", "endDate": "2024-05-02", "endTime": "10:00"}`
			request := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
			request.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(httptest.NewRecorder(), request)
		}

		require.Len(t, seen, 2)
		assert.Equal(t, "10:00", seen[0].StartTime)
		assert.Equal(t, "11:00", seen[1].StartTime)
	})
}

func TestPrepareInterval(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var handled error
	handleError := func(c *gin.Context, err error) {
		handled = err
		c.AbortWithStatus(http.StatusUnprocessableEntity)
	}

	var reached *quote.RentalInterval
	router := gin.New()
	router.POST("/quotes",
		m.PrepareParams(schema.QuoteRequestParams{}),
		m.PrepareInterval(handleError),
		func(c *gin.Context) {
			interval := c.MustGet(m.IntervalKey).(quote.RentalInterval)
			reached = &interval
		},
	)

	tests := []struct {
		name        string
		body        string
		expectedErr error
	}{
		{
			name:        "return before pickup",
			body:        `{"startDate": "2024-05-02", "startTime": "10:00", "endDate": "2024-05-01", "endTime": "10:00"}`,
			expectedErr: quote.ErrorInvalidInterval,
		},
		{
			name:        "return at pickup",
			body:        `{"startDate": "2024-05-01", "startTime": "10:00", "endDate": "2024-05-01", "endTime": "10:00"}`,
			expectedErr: quote.ErrorInvalidInterval,
		},
		{
			name:        "unparsable time",
			body:        `{"startDate": "2024-05-01", "startTime": "9:30", "endDate": "2024-05-02", "endTime": "10:00"}`,
			expectedErr: schema.ErrorInvalidParams,
		},
	}

	for _, test := range tests {
		t.Run("should stop on "+test.name, func(t *testing.T) {
			handled, reached = nil, nil

			request := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(test.body))
			request.Header.Set("Content-Type", "application/json")
			response := httptest.NewRecorder()
			router.ServeHTTP(response, request)

			assert.Equal(t, http.StatusUnprocessableEntity, response.Code)
			assert.True(t, errors.Is(handled, test.expectedErr), "got %v", handled)
			assert.Nil(t, reached)
		})
	}

	t.Run("should store a forward interval", func(t *testing.T) {
		handled, reached = nil, nil

		body := `{"startDate": "2024-05-01", "startTime": "10:00", "endDate": "2024-05-02", "endTime": "00:00"}`
		request := httptest.NewRequest(http.MethodPost, "/quotes", strings.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(httptest.NewRecorder(), request)

		assert.NoError(t, handled)
		require.NotNil(t, reached)
		assert.Equal(t, quote.TimeOfDay{Hour: 10}, reached.StartTime)
		assert.True(t, reached.EndTime.IsMidnight())
	})
}

func TestTapLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("logger", &log)
	})

	router.GET("/bookings/:bookingId/quote", m.TapLogger, func(c *gin.Context) {
		c.MustGet("logger").(*zerolog.Logger).Info().Msg("audit")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/b-1/quote", nil))

	line := map[string]any{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "/bookings/:bookingId/quote", line["route"])
	assert.Equal(t, "b-1", line["bookingId"])
	assert.NotEmpty(t, line["operationId"])
	assert.NotContains(t, line, "carId")
}
