package requesting

import (
	"errors"
	"fmt"
	"net/http"
	"os"
)

var (
	ErrorTimeout    = errors.New("upstream request timed out")
	ErrorConnection = errors.New("upstream connection failed")
	ErrorStatus     = errors.New("upstream returned unexpected status")
)

type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status code %d", e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrorStatus
}

func isValidResponse(code int) bool {
	return code >= 200 && code <= 299
}

// RequestErrors classifies the outcome of an outgoing request. On a non 2xx
// status the body is closed and a *StatusError returned.
func RequestErrors(response *http.Response, err error) (*http.Response, error) {
	if err != nil {
		if os.IsTimeout(err) {
			return nil, fmt.Errorf("%w: %s", ErrorTimeout, err)
		}

		return nil, fmt.Errorf("%w: %s", ErrorConnection, err)
	}

	if !isValidResponse(response.StatusCode) {
		response.Body.Close()
		return nil, &StatusError{StatusCode: response.StatusCode}
	}

	return response, nil
}
