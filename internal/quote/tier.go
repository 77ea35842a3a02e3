package quote

import "github.com/shopspring/decimal"

type discountTier struct {
	minFullDays int
	percent     int
}

// ordered from the highest threshold down, the first match wins
var discountTiers = []discountTier{
	{minFullDays: 8, percent: 4},
	{minFullDays: 4, percent: 2},
}

var hundred = decimal.NewFromInt(100)

type BasePrice struct {
	Amount          decimal.Decimal
	DiscountPercent int
}

// DiscountPercent selects the multi-day tier. Leftover hours never count.
func DiscountPercent(fullDays int) int {
	for _, tier := range discountTiers {
		if fullDays >= tier.minFullDays {
			return tier.percent
		}
	}

	return 0
}

// PriceBase bills full days at the discounted daily rate and leftover hours
// at the undiscounted rate prorated per hour.
func PriceBase(duration Duration, pricing CarPricing) BasePrice {
	percent := DiscountPercent(duration.FullDays)

	discountedDailyRate := pricing.BasePricePerDay.
		Mul(decimal.NewFromInt(int64(100 - percent))).
		Div(hundred)

	fullDaysPrice := discountedDailyRate.Mul(decimal.NewFromInt(int64(duration.FullDays)))
	leftoverPrice := pricing.BasePricePerDay.
		Mul(decimal.NewFromInt(int64(duration.LeftoverHours))).
		Div(hoursPerDayDecimal)

	return BasePrice{
		Amount:          fullDaysPrice.Add(leftoverPrice),
		DiscountPercent: percent,
	}
}
