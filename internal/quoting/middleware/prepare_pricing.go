package middleware

import (
	"errors"
	"net/http"

	"bitbucket.org/crgw/rental-quote/internal/catalog"
	"bitbucket.org/crgw/rental-quote/internal/schema"
	"bitbucket.org/crgw/rental-quote/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	PricingKey string = "pricing"
)

// PreparePricing resolves the pricing of the :carId path car from the catalog.
func PreparePricing(provider catalog.Provider) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if provider == nil {
			responding.HandleError(ctx, http.StatusNotImplemented, schema.NotImplementedError, "Car catalog is not configured", nil)
			return
		}

		logger := ctx.MustGet("logger").(*zerolog.Logger)
		carID := ctx.Params.ByName("carId")

		pricing, err := provider.CarPricing(ctx.Request.Context(), carID, logger)
		if errors.Is(err, catalog.ErrorCarNotFound) {
			responding.HandleError(ctx, http.StatusNotFound, schema.CarNotFoundError, "Car not found", err)
			return
		}

		if err != nil {
			responding.HandleError(ctx, http.StatusBadGateway, schema.CatalogError, "Failed requesting car pricing", err)
			return
		}

		ctx.Set(PricingKey, pricing)
	}
}
