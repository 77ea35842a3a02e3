package quote

import "github.com/shopspring/decimal"

func sumSurcharges(surcharges []SurchargeLine) decimal.Decimal {
	total := decimal.Zero
	for _, surcharge := range surcharges {
		if surcharge.Amount != nil {
			total = total.Add(*surcharge.Amount)
		}
	}

	return total
}

// Aggregate sums the base price and every numeric surcharge at full precision.
func Aggregate(
	basePrice decimal.Decimal,
	discountPercent int,
	surcharges []SurchargeLine,
	totalDayEquivalent decimal.Decimal,
	fallbackDailyRate decimal.Decimal,
) Quote {
	total := basePrice.Add(sumSurcharges(surcharges))

	effectivePricePerDay := fallbackDailyRate
	if totalDayEquivalent.IsPositive() {
		effectivePricePerDay = total.Div(totalDayEquivalent)
	}

	return Quote{
		BasePrice:            basePrice,
		DiscountPercent:      discountPercent,
		Surcharges:           surcharges,
		TotalPrice:           total,
		EffectivePricePerDay: effectivePricePerDay,
	}
}
