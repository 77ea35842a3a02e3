package middleware

import (
	"net/http"

	"bitbucket.org/crgw/rental-quote/internal/quote"
	"bitbucket.org/crgw/rental-quote/internal/schema"
	"bitbucket.org/crgw/rental-quote/internal/tools/responding"
	"github.com/gin-gonic/gin"
)

const (
	IntervalKey string = "interval"
)

// PrepareInterval resolves the bound params into a rental interval and
// rejects intervals that do not move forward, before any pricing lookup.
// It must run after PrepareParams(schema.QuoteRequestParams{}).
func PrepareInterval(handleError func(*gin.Context, error)) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		params, ok := ctx.MustGet(ParamsKey).(*schema.QuoteRequestParams)
		if !ok {
			responding.HandleError(ctx, http.StatusInternalServerError, schema.InternalError, "Bad request params", nil)
			return
		}

		interval, err := params.Interval()
		if err != nil {
			handleError(ctx, err)
			return
		}

		if _, err := quote.ResolveDuration(interval); err != nil {
			handleError(ctx, err)
			return
		}

		ctx.Set(IntervalKey, interval)
	}
}
