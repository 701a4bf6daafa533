package adapter

import (
	"fmt"
	"net/http"
)

// mapResult converts a failure [Result] into a sentinel error wrapped with
// the normalized message. Returns nil for successful results.
func mapResult(res Result) error {
	if res.OK {
		return nil
	}

	switch res.Status {
	case 0:
		return fmt.Errorf("%w: %s", ErrUnavailable, res.Message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, res.Message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, res.Message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, res.Message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, res.Message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, res.Message)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrValidation, res.Message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, res.Message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, res.Message)
	default:
		return fmt.Errorf("http %d: %s", res.Status, res.Message)
	}
}
