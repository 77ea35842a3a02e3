package booking

import (
	"context"

	"bitbucket.org/crgw/rental-quote/internal/quote"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Audit compares a stored booking total with a fresh quote. Drift is stored
// minus recomputed at full precision, Matches compares whole currency units.
type Audit struct {
	BookingID   string
	Quote       quote.Quote
	StoredTotal decimal.Decimal
	Drift       decimal.Decimal
	Matches     bool
}

type Auditor struct {
	repository Repository
}

func NewAuditor(repository Repository) *Auditor {
	return &Auditor{repository: repository}
}

// Audit recomputes the quote of a stored booking. Engine errors are returned
// unchanged so callers can tell an invalid stored interval from a lookup failure.
func (a *Auditor) Audit(ctx context.Context, id string, log *zerolog.Logger) (Audit, error) {
	booking, err := a.repository.FindByID(ctx, id)
	if err != nil {
		return Audit{}, err
	}

	interval, err := booking.Interval()
	if err != nil {
		return Audit{}, err
	}

	recomputed, err := quote.ComputeQuote(interval, booking.Options, booking.CarPricing())
	if err != nil {
		return Audit{}, err
	}

	audit := Audit{
		BookingID:   booking.ID,
		Quote:       recomputed,
		StoredTotal: booking.TotalPrice,
		Drift:       booking.TotalPrice.Sub(recomputed.TotalPrice),
		Matches:     quote.RoundAmount(booking.TotalPrice).Equal(recomputed.RoundedTotal()),
	}

	if !audit.Matches {
		log.Warn().
			Str("bookingId", booking.ID).
			Str("storedTotal", booking.TotalPrice.String()).
			Str("recomputedTotal", recomputed.TotalPrice.String()).
			Msg("stored booking total drifted from recomputed quote")
	}

	return audit, nil
}
