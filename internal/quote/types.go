package quote

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TimeOfDay struct {
	Hour   int
	Minute int
}

const timeOfDayLayout = "15:04"

// ParseTimeOfDay accepts a 24h "HH:MM" value, hours zero padded
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	if len(value) != len(timeOfDayLayout) {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q, expected HH:MM", value)
	}

	parsed, err := time.Parse(timeOfDayLayout, value)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q, expected HH:MM", value)
	}

	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func (t TimeOfDay) IsMidnight() bool {
	return t.Hour == 0 && t.Minute == 0
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// RentalInterval holds the pickup and return as separate calendar dates and
// times of day. Only the year, month, day and location of the dates are used.
type RentalInterval struct {
	StartDate time.Time
	StartTime TimeOfDay
	EndDate   time.Time
	EndTime   TimeOfDay
}

type RentalOptions struct {
	UnlimitedKm        bool
	SpeedLimitIncrease bool
	TireInsurance      bool
	PersonalDriver     bool
	PriorityService    bool
	ChildSeat          bool
	SimCard            bool
	RoadsideAssistance bool
	PickupAtAddress    bool
	ReturnAtAddress    bool
}

type CarPricing struct {
	BasePricePerDay decimal.Decimal
}

// SurchargeLine is one priced add-on. Amount is nil for informational lines,
// which are priced separately and never part of the total.
type SurchargeLine struct {
	Key                 string
	Label               string
	Amount              *decimal.Decimal
	IsPercentageBased   bool
	IsInformationalOnly bool
}

type Quote struct {
	Duration             Duration
	BasePrice            decimal.Decimal
	DiscountPercent      int
	Surcharges           []SurchargeLine
	TotalPrice           decimal.Decimal
	EffectivePricePerDay decimal.Decimal
}
