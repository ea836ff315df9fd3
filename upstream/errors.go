package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind tags the failure classes the commerce backend can produce.
type ErrorKind int

const (
	// KindNetwork covers transport failures and timeouts. Retryable.
	KindNetwork ErrorKind = iota + 1
	// KindStatus is a non-2xx HTTP response.
	KindStatus
	// KindDecode is a 2xx response whose body did not match the contract.
	KindDecode
	// KindPrecondition is a call that cannot be made (no token, no cart id).
	KindPrecondition
)

// Error is the tagged result every client method returns on failure; callers
// branch on Kind instead of parsing messages.
type Error struct {
	Kind   ErrorKind
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s: upstream returned %d: %s", e.Op, e.Status, e.Body)
	case KindPrecondition:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// IsRetryable reports whether the caller may usefully retry (network
// failures and timeouts only).
func IsRetryable(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.Kind == KindNetwork
}

// HTTPStatus maps a client error to the status the gateway should respond
// with. 4xx codes from the backend pass through; everything else is a
// gateway-side condition.
func HTTPStatus(err error) int {
	var ue *Error
	if !errors.As(err, &ue) {
		return http.StatusInternalServerError
	}
	switch ue.Kind {
	case KindPrecondition:
		return http.StatusBadRequest
	case KindNetwork:
		return http.StatusGatewayTimeout
	case KindDecode:
		return http.StatusBadGateway
	case KindStatus:
		if ue.Status >= 400 && ue.Status < 500 {
			return ue.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
