package quote

import "github.com/shopspring/decimal"

type billing int

const (
	// basePricePerDay * totalDayEquivalent * rate
	percentageOfDuration billing = iota
	// rate * fullDays, leftover hours are not charged
	fixedPerWholeDay
	// priced out-of-band, never summed
	informationalOnly
)

type optionRule struct {
	key      string
	label    string
	billing  billing
	rate     decimal.Decimal
	selected func(RentalOptions) bool
}

// declaration order is the output order
var optionRules = []optionRule{
	{
		key:      "unlimitedKm",
		label:    "Unlimited kilometers",
		billing:  percentageOfDuration,
		rate:     decimal.RequireFromString("0.50"),
		selected: func(o RentalOptions) bool { return o.UnlimitedKm },
	},
	{
		key:      "speedLimitIncrease",
		label:    "Speed limit increase",
		billing:  percentageOfDuration,
		rate:     decimal.RequireFromString("0.20"),
		selected: func(o RentalOptions) bool { return o.SpeedLimitIncrease },
	},
	{
		key:      "tireInsurance",
		label:    "Tire insurance",
		billing:  percentageOfDuration,
		rate:     decimal.RequireFromString("0.20"),
		selected: func(o RentalOptions) bool { return o.TireInsurance },
	},
	{
		key:      "personalDriver",
		label:    "Personal driver",
		billing:  fixedPerWholeDay,
		rate:     decimal.NewFromInt(800),
		selected: func(o RentalOptions) bool { return o.PersonalDriver },
	},
	{
		key:      "priorityService",
		label:    "Priority service",
		billing:  fixedPerWholeDay,
		rate:     decimal.NewFromInt(1000),
		selected: func(o RentalOptions) bool { return o.PriorityService },
	},
	{
		key:      "childSeat",
		label:    "Child seat",
		billing:  fixedPerWholeDay,
		rate:     decimal.NewFromInt(100),
		selected: func(o RentalOptions) bool { return o.ChildSeat },
	},
	{
		key:      "simCard",
		label:    "SIM card",
		billing:  fixedPerWholeDay,
		rate:     decimal.NewFromInt(100),
		selected: func(o RentalOptions) bool { return o.SimCard },
	},
	{
		key:      "roadsideAssistance",
		label:    "Roadside assistance",
		billing:  fixedPerWholeDay,
		rate:     decimal.NewFromInt(500),
		selected: func(o RentalOptions) bool { return o.RoadsideAssistance },
	},
	{
		key:      "pickupAtAddress",
		label:    "Pickup at address",
		billing:  informationalOnly,
		selected: func(o RentalOptions) bool { return o.PickupAtAddress },
	},
	{
		key:      "returnAtAddress",
		label:    "Return at address",
		billing:  informationalOnly,
		selected: func(o RentalOptions) bool { return o.ReturnAtAddress },
	},
}

func (r optionRule) amount(pricing CarPricing, duration Duration) *decimal.Decimal {
	var amount decimal.Decimal

	switch r.billing {
	case percentageOfDuration:
		// multiply before dividing by 24 to keep the prorated hours exact
		amount = pricing.BasePricePerDay.
			Mul(decimal.NewFromInt(duration.TotalHours())).
			Mul(r.rate).
			Div(hoursPerDayDecimal)
	case fixedPerWholeDay:
		amount = r.rate.Mul(decimal.NewFromInt(int64(duration.FullDays)))
	default:
		return nil
	}

	return &amount
}

func ComputeSurcharges(options RentalOptions, pricing CarPricing, duration Duration) []SurchargeLine {
	lines := []SurchargeLine{}

	for _, rule := range optionRules {
		if !rule.selected(options) {
			continue
		}

		lines = append(lines, SurchargeLine{
			Key:                 rule.key,
			Label:               rule.label,
			Amount:              rule.amount(pricing, duration),
			IsPercentageBased:   rule.billing == percentageOfDuration,
			IsInformationalOnly: rule.billing == informationalOnly,
		})
	}

	return lines
}
