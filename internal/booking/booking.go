package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/crgw/rental-quote/internal/quote"
	"github.com/shopspring/decimal"
)

var ErrorBookingNotFound = errors.New("booking not found")

// Booking is the stored form of a confirmed rental. Times are kept as "HH:MM".
type Booking struct {
	ID              string
	CarID           string
	StartDate       time.Time
	StartTime       string
	EndDate         time.Time
	EndTime         string
	Options         quote.RentalOptions
	BasePricePerDay decimal.NullDecimal
	TotalPrice      decimal.Decimal
}

type Repository interface {
	FindByID(ctx context.Context, id string) (Booking, error)
}

func (b Booking) Interval() (quote.RentalInterval, error) {
	startTime, err := quote.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return quote.RentalInterval{}, fmt.Errorf("%w: %s", quote.ErrorInvalidInterval, err)
	}

	endTime, err := quote.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return quote.RentalInterval{}, fmt.Errorf("%w: %s", quote.ErrorInvalidInterval, err)
	}

	return quote.RentalInterval{
		StartDate: b.StartDate,
		StartTime: startTime,
		EndDate:   b.EndDate,
		EndTime:   endTime,
	}, nil
}

// CarPricing is zero when the booking has no stored daily rate.
func (b Booking) CarPricing() quote.CarPricing {
	if !b.BasePricePerDay.Valid {
		return quote.CarPricing{}
	}

	return quote.CarPricing{BasePricePerDay: b.BasePricePerDay.Decimal}
}
