package quoting

import (
	"context"
	"errors"
	"net/http"

	"bitbucket.org/crgw/rental-quote/internal/booking"
	"bitbucket.org/crgw/rental-quote/internal/catalog"
	"bitbucket.org/crgw/rental-quote/internal/quote"
	quotingMiddleware "bitbucket.org/crgw/rental-quote/internal/quoting/middleware"
	"bitbucket.org/crgw/rental-quote/internal/schema"
	"bitbucket.org/crgw/rental-quote/internal/tools/responding"
	"bitbucket.org/crgw/rental-quote/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type BookingAuditor interface {
	Audit(ctx context.Context, id string, log *zerolog.Logger) (booking.Audit, error)
}

// Dependencies are the collaborators behind the routes. A nil collaborator
// makes its route answer 501.
type Dependencies struct {
	Catalog catalog.Provider
	Auditor BookingAuditor
}

func RegisterRoutes(router gin.IRouter, deps Dependencies) {
	group := router.Group("/", quotingMiddleware.TapLogger)

	group.POST("/quotes",
		quotingMiddleware.PrepareParams(schema.QuoteRequestParams{}),
		quotingMiddleware.PrepareInterval(HandleQuoteError),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("quotes")
			defer slowLog.Stop("quotes")

			params, ok := ctx.MustGet(quotingMiddleware.ParamsKey).(*schema.QuoteRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, schema.InternalError, "Bad request params", nil)
				return
			}

			interval, ok := ctx.MustGet(quotingMiddleware.IntervalKey).(quote.RentalInterval)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, schema.InternalError, "Bad rental interval", nil)
				return
			}

			q, err := quote.ComputeQuote(interval, params.Options.Options(), params.CarPricing())
			if err != nil {
				HandleQuoteError(ctx, err)
				return
			}

			respondQuote(ctx, q)
		},
	)

	group.POST("/cars/:carId/quotes",
		quotingMiddleware.PrepareParams(schema.QuoteRequestParams{}),
		quotingMiddleware.PrepareInterval(HandleQuoteError),
		quotingMiddleware.PreparePricing(deps.Catalog),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("cars:quotes")
			defer slowLog.Stop("cars:quotes")

			params, ok := ctx.MustGet(quotingMiddleware.ParamsKey).(*schema.QuoteRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, schema.InternalError, "Bad request params", nil)
				return
			}

			pricing, ok := ctx.MustGet(quotingMiddleware.PricingKey).(quote.CarPricing)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, schema.InternalError, "Bad car pricing", nil)
				return
			}

			interval, ok := ctx.MustGet(quotingMiddleware.IntervalKey).(quote.RentalInterval)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, schema.InternalError, "Bad rental interval", nil)
				return
			}

			q, err := quote.ComputeQuote(interval, params.Options.Options(), pricing)
			if err != nil {
				HandleQuoteError(ctx, err)
				return
			}

			respondQuote(ctx, q)
		},
	)

	group.GET("/bookings/:bookingId/quote",
		func(ctx *gin.Context) {
			if deps.Auditor == nil {
				responding.HandleError(ctx, http.StatusNotImplemented, schema.NotImplementedError, "Booking audit is not configured", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("bookings:quote")
			defer slowLog.Stop("bookings:quote")

			audit, err := deps.Auditor.Audit(ctx.Request.Context(), ctx.Params.ByName("bookingId"), logger)
			if err != nil {
				HandleQuoteError(ctx, err)
				return
			}

			if ctx.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) == gin.MIMEPlain {
				ctx.String(http.StatusOK, quote.FormatAgreement(audit.Quote))
				return
			}

			ctx.JSON(http.StatusOK, schema.NewBookingAuditResponse(
				audit.BookingID,
				audit.StoredTotal,
				audit.Drift,
				audit.Matches,
				audit.Quote,
			))
		},
	)
}

func respondQuote(ctx *gin.Context, q quote.Quote) {
	if ctx.NegotiateFormat(gin.MIMEJSON, gin.MIMEPlain) == gin.MIMEPlain {
		ctx.String(http.StatusOK, quote.FormatAgreement(q))
		return
	}

	ctx.JSON(http.StatusOK, schema.NewQuoteResponse(q))
}

// HandleQuoteError maps quote, catalog and booking errors to responses.
func HandleQuoteError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, quote.ErrorInvalidInterval):
		responding.HandleError(ctx, http.StatusUnprocessableEntity, schema.InvalidIntervalError, "Return time must be after pickup time", err)
	case errors.Is(err, quote.ErrorMissingPricing):
		responding.HandleError(ctx, http.StatusUnprocessableEntity, schema.MissingPricingError, "Car pricing is missing", err)
	case errors.Is(err, schema.ErrorInvalidParams):
		responding.HandleError(ctx, http.StatusBadRequest, schema.InvalidRequestError, "Invalid request params", err)
	case errors.Is(err, catalog.ErrorCarNotFound):
		responding.HandleError(ctx, http.StatusNotFound, schema.CarNotFoundError, "Car not found", err)
	case errors.Is(err, catalog.ErrorCatalogUnavailable):
		responding.HandleError(ctx, http.StatusBadGateway, schema.CatalogError, "Failed requesting car pricing", err)
	case errors.Is(err, booking.ErrorBookingNotFound):
		responding.HandleError(ctx, http.StatusNotFound, schema.BookingNotFoundError, "Booking not found", err)
	default:
		responding.HandleError(ctx, http.StatusInternalServerError, schema.InternalError, "Failed computing quote", err)
	}
}
