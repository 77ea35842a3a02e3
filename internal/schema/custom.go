package schema

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type RoundedFloat float64

func (f RoundedFloat) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%.2f", f)), nil
}

// NewRoundedFloat is the presentation boundary for engine amounts
func NewRoundedFloat(amount decimal.Decimal) RoundedFloat {
	return RoundedFloat(amount.Round(2).InexactFloat64())
}
