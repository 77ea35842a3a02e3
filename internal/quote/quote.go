package quote

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func validatePricing(pricing CarPricing) error {
	if !pricing.BasePricePerDay.IsPositive() {
		return fmt.Errorf("%w: car pricing is missing or not positive", ErrorMissingPricing)
	}

	return nil
}

// ComputeQuote runs the whole pricing pipeline. Either a complete quote or an
// error is returned, never both.
func ComputeQuote(interval RentalInterval, options RentalOptions, pricing CarPricing) (Quote, error) {
	duration, err := ResolveDuration(interval)
	if err != nil {
		return Quote{}, err
	}

	if err := validatePricing(pricing); err != nil {
		return Quote{}, err
	}

	base := PriceBase(duration, pricing)
	surcharges := ComputeSurcharges(options, pricing, duration)

	quote := Aggregate(
		base.Amount,
		base.DiscountPercent,
		surcharges,
		duration.TotalDayEquivalent(),
		pricing.BasePricePerDay,
	)
	quote.Duration = duration

	return quote, nil
}

// RoundAmount rounds to the nearest currency unit, half away from zero.
// Only presentation code should call it.
func RoundAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(0)
}

func (q Quote) RoundedTotal() decimal.Decimal {
	return RoundAmount(q.TotalPrice)
}

// NumericSurchargeTotal sums the surcharges that contribute to the total.
func (q Quote) NumericSurchargeTotal() decimal.Decimal {
	return sumSurcharges(q.Surcharges)
}
