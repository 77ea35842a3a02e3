package quote

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const agreementRule = "-------------------------------------"

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func formatDuration(d Duration) string {
	return fmt.Sprintf("%d day(s) %d hour(s)", d.FullDays, d.LeftoverHours)
}

// FormatAgreement renders the price breakdown used on printable rental
// agreements. Amounts are rounded to two decimals here only.
func FormatAgreement(q Quote) string {
	var b strings.Builder

	b.WriteString("RENTAL PRICE BREAKDOWN\n")
	b.WriteString(agreementRule + "\n")
	fmt.Fprintf(&b, "Duration:         %s\n", formatDuration(q.Duration))
	fmt.Fprintf(&b, "Base price:       %s\n", formatAmount(q.BasePrice))
	if q.DiscountPercent > 0 {
		fmt.Fprintf(&b, "Discount:         %d%% on full days\n", q.DiscountPercent)
	}

	if len(q.Surcharges) > 0 {
		b.WriteString(agreementRule + "\n")
		for _, surcharge := range q.Surcharges {
			amount := "priced separately"
			if surcharge.Amount != nil {
				amount = formatAmount(*surcharge.Amount)
			}
			fmt.Fprintf(&b, "%-22s %s\n", surcharge.Label+":", amount)
		}
		fmt.Fprintf(&b, "Options total:    %s\n", formatAmount(q.NumericSurchargeTotal()))
	}

	b.WriteString(agreementRule + "\n")
	fmt.Fprintf(&b, "TOTAL:            %s\n", formatAmount(q.TotalPrice))
	fmt.Fprintf(&b, "Per day:          %s\n", formatAmount(q.EffectivePricePerDay))

	return b.String()
}
