package schema

import (
	"errors"
	"fmt"

	"bitbucket.org/crgw/rental-quote/internal/quote"
	"bitbucket.org/crgw/rental-quote/internal/tools/converting"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

var ErrorInvalidParams = errors.New("invalid request params")

type CarPricingParams struct {
	BasePricePerDay decimal.Decimal `json:"basePricePerDay"`
}

type QuoteRequestParams struct {
	StartDate openapi_types.Date `json:"startDate"`
	StartTime string             `json:"startTime" binding:"required"`
	EndDate   openapi_types.Date `json:"endDate"`
	EndTime   string             `json:"endTime" binding:"required"`
	Options   RentalOptionsParam `json:"options"`
	Pricing   *CarPricingParams  `json:"pricing,omitempty"`
}

func (p QuoteRequestParams) Interval() (quote.RentalInterval, error) {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return quote.RentalInterval{}, fmt.Errorf("%w: startDate and endDate are required", ErrorInvalidParams)
	}

	startTime, err := quote.ParseTimeOfDay(p.StartTime)
	if err != nil {
		return quote.RentalInterval{}, fmt.Errorf("%w: startTime: %s", ErrorInvalidParams, err)
	}

	endTime, err := quote.ParseTimeOfDay(p.EndTime)
	if err != nil {
		return quote.RentalInterval{}, fmt.Errorf("%w: endTime: %s", ErrorInvalidParams, err)
	}

	return quote.RentalInterval{
		StartDate: p.StartDate.Time,
		StartTime: startTime,
		EndDate:   p.EndDate.Time,
		EndTime:   endTime,
	}, nil
}

// CarPricing is zero when the request carries no pricing, which the engine
// rejects as missing.
func (p QuoteRequestParams) CarPricing() quote.CarPricing {
	if p.Pricing == nil {
		return quote.CarPricing{}
	}

	return quote.CarPricing{BasePricePerDay: p.Pricing.BasePricePerDay}
}

type DurationResponse struct {
	FullDays           int          `json:"fullDays"`
	LeftoverHours      int          `json:"leftoverHours"`
	TotalDayEquivalent RoundedFloat `json:"totalDayEquivalent"`
}

type SurchargeLineResponse struct {
	Key                 string        `json:"key"`
	Label               string        `json:"label"`
	Amount              *RoundedFloat `json:"amount"`
	IsPercentageBased   bool          `json:"isPercentageBased"`
	IsInformationalOnly bool          `json:"isInformationalOnly"`
}

type QuoteResponse struct {
	Duration             DurationResponse        `json:"duration"`
	BasePrice            RoundedFloat            `json:"basePrice"`
	DiscountPercent      int                     `json:"discountPercent"`
	Surcharges           []SurchargeLineResponse `json:"surcharges"`
	TotalPrice           RoundedFloat            `json:"totalPrice"`
	EffectivePricePerDay RoundedFloat            `json:"effectivePricePerDay"`
	DisplayTotal         int64                   `json:"displayTotal"`
}

func NewQuoteResponse(q quote.Quote) QuoteResponse {
	surcharges := make([]SurchargeLineResponse, len(q.Surcharges))
	for i, surcharge := range q.Surcharges {
		var amount *RoundedFloat
		if surcharge.Amount != nil {
			amount = converting.PointerToValue(NewRoundedFloat(*surcharge.Amount))
		}

		surcharges[i] = SurchargeLineResponse{
			Key:                 surcharge.Key,
			Label:               surcharge.Label,
			Amount:              amount,
			IsPercentageBased:   surcharge.IsPercentageBased,
			IsInformationalOnly: surcharge.IsInformationalOnly,
		}
	}

	return QuoteResponse{
		Duration: DurationResponse{
			FullDays:           q.Duration.FullDays,
			LeftoverHours:      q.Duration.LeftoverHours,
			TotalDayEquivalent: NewRoundedFloat(q.Duration.TotalDayEquivalent()),
		},
		BasePrice:            NewRoundedFloat(q.BasePrice),
		DiscountPercent:      q.DiscountPercent,
		Surcharges:           surcharges,
		TotalPrice:           NewRoundedFloat(q.TotalPrice),
		EffectivePricePerDay: NewRoundedFloat(q.EffectivePricePerDay),
		DisplayTotal:         q.RoundedTotal().IntPart(),
	}
}

type BookingAuditResponse struct {
	BookingID        string        `json:"bookingId"`
	StoredTotalPrice RoundedFloat  `json:"storedTotalPrice"`
	Drift            RoundedFloat  `json:"drift"`
	Matches          bool          `json:"matches"`
	Quote            QuoteResponse `json:"quote"`
}

func NewBookingAuditResponse(bookingID string, storedTotal, drift decimal.Decimal, matches bool, q quote.Quote) BookingAuditResponse {
	return BookingAuditResponse{
		BookingID:        bookingID,
		StoredTotalPrice: NewRoundedFloat(storedTotal),
		Drift:            NewRoundedFloat(drift),
		Matches:          matches,
		Quote:            NewQuoteResponse(q),
	}
}
