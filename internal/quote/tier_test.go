package quote_test

import (
	"fmt"
	"testing"

	"bitbucket.org/crgw/rental-quote/internal/quote"
	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		fullDays int
		expected int
	}{
		{0, 0},
		{1, 0},
		{3, 0},
		{4, 2},
		{7, 2},
		{8, 4},
		{30, 4},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%d full days", test.fullDays), func(t *testing.T) {
			assert.Equal(t, test.expected, quote.DiscountPercent(test.fullDays))
		})
	}
}

func TestPriceBase(t *testing.T) {
	t.Run("should price full days at the tier rate and leftover hours at the full rate", func(t *testing.T) {
		tests := []struct {
			name            string
			duration        quote.Duration
			expectedAmount  string
			expectedPercent int
		}{
			{"no tier", quote.Duration{FullDays: 3}, "3000", 0},
			{"no tier with hours", quote.Duration{FullDays: 3, LeftoverHours: 12}, "3500", 0},
			{"middle tier", quote.Duration{FullDays: 5}, "4900", 2},
			{"middle tier hours are not discounted", quote.Duration{FullDays: 4, LeftoverHours: 6}, "4170", 2},
			{"top tier", quote.Duration{FullDays: 10}, "9600", 4},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				base := quote.PriceBase(test.duration, pricing(1000))
				assertDecimal(t, test.expectedAmount, base.Amount)
				assert.Equal(t, test.expectedPercent, base.DiscountPercent)
			})
		}
	})

	t.Run("should prorate hours when there are no full days", func(t *testing.T) {
		base := quote.PriceBase(quote.Duration{LeftoverHours: 5}, pricing(1000))
		assertRounded(t, "208.33", base.Amount)
		assert.Equal(t, 0, base.DiscountPercent)
	})

	t.Run("should price leftover hours before the next tier above the discounted day", func(t *testing.T) {
		almostFourDays := quote.PriceBase(quote.Duration{FullDays: 3, LeftoverHours: 23}, pricing(2400))
		fourDays := quote.PriceBase(quote.Duration{FullDays: 4}, pricing(2400))

		assertDecimal(t, "9500", almostFourDays.Amount)
		assertDecimal(t, "9408", fourDays.Amount)
	})

	t.Run("should never price a longer rental lower", func(t *testing.T) {
		for _, basePricePerDay := range []int64{1, 37, 1000, 25000} {
			previous := quote.PriceBase(quote.Duration{}, pricing(basePricePerDay))
			for fullDays := 1; fullDays <= 40; fullDays++ {
				current := quote.PriceBase(quote.Duration{FullDays: fullDays}, pricing(basePricePerDay))
				assert.True(t, current.Amount.GreaterThanOrEqual(previous.Amount),
					"price %d: %d days cost %s, %d days cost %s", basePricePerDay, fullDays, current.Amount, fullDays-1, previous.Amount)
				previous = current
			}
		}
	})
}
