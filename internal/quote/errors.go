package quote

import "errors"

var (
	ErrorInvalidInterval = errors.New("invalid rental interval")
	ErrorMissingPricing  = errors.New("missing car pricing")
)
