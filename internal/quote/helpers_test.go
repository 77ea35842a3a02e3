package quote_test

import (
	"testing"
	"time"

	"bitbucket.org/crgw/rental-quote/internal/quote"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func at(hour, minute int) quote.TimeOfDay {
	return quote.TimeOfDay{Hour: hour, Minute: minute}
}

func pricing(basePricePerDay int64) quote.CarPricing {
	return quote.CarPricing{BasePricePerDay: decimal.NewFromInt(basePricePerDay)}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func assertRounded(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assertDecimal(t, expected, actual.Round(2))
}
