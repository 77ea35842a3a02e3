package quote

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	hoursPerDay = 24
	day         = hoursPerDay * time.Hour

	// a return at 00:00 is read as the end of that calendar day
	endOfDay = day - time.Millisecond
)

var hoursPerDayDecimal = decimal.NewFromInt(hoursPerDay)

type Duration struct {
	FullDays      int
	LeftoverHours int
}

func (d Duration) TotalHours() int64 {
	return int64(d.FullDays)*hoursPerDay + int64(d.LeftoverHours)
}

// TotalDayEquivalent is FullDays + LeftoverHours/24
func (d Duration) TotalDayEquivalent() decimal.Decimal {
	return decimal.NewFromInt(d.TotalHours()).Div(hoursPerDayDecimal)
}

func combine(date time.Time, at TimeOfDay) time.Time {
	year, month, dayOfMonth := date.Date()
	return time.Date(year, month, dayOfMonth, at.Hour, at.Minute, 0, 0, date.Location())
}

func (i RentalInterval) StartInstant() time.Time {
	return combine(i.StartDate, i.StartTime)
}

func (i RentalInterval) EndInstant() time.Time {
	if i.EndTime.IsMidnight() {
		return combine(i.EndDate, TimeOfDay{}).Add(endOfDay)
	}

	return combine(i.EndDate, i.EndTime)
}

func ResolveDuration(interval RentalInterval) (Duration, error) {
	diff := interval.EndInstant().Sub(interval.StartInstant())
	if diff <= 0 {
		return Duration{}, fmt.Errorf("%w: return time must be after pickup time", ErrorInvalidInterval)
	}

	fullDays := int(diff / day)

	// diff is positive here so the remainder is too, the clamp only guards the contract
	leftoverHours := int((diff % day) / time.Hour)
	if leftoverHours < 0 {
		leftoverHours = 0
	}

	return Duration{
		FullDays:      fullDays,
		LeftoverHours: leftoverHours,
	}, nil
}
