package catalog

import "github.com/shopspring/decimal"

type pricingRQ struct {
	CarID string `url:"carId"`
}

type pricingRS struct {
	CarID           string           `json:"carId"`
	BasePricePerDay *decimal.Decimal `json:"basePricePerDay"`
}
