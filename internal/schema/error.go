package schema

type ErrorCode string

const (
	InvalidRequestError  ErrorCode = "INVALID_REQUEST"
	InvalidIntervalError ErrorCode = "INVALID_INTERVAL"
	MissingPricingError  ErrorCode = "MISSING_PRICING"
	CarNotFoundError     ErrorCode = "CAR_NOT_FOUND"
	CatalogError         ErrorCode = "CATALOG_ERROR"
	BookingNotFoundError ErrorCode = "BOOKING_NOT_FOUND"
	NotImplementedError  ErrorCode = "NOT_IMPLEMENTED"
	InternalError        ErrorCode = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Error   *string   `json:"error,omitempty"`
}

func NewErrorResponse(code ErrorCode, msg string, err error) ErrorResponse {
	response := ErrorResponse{
		Code:    code,
		Message: msg,
	}

	if err != nil {
		detail := err.Error()
		response.Error = &detail
	}

	return response
}
