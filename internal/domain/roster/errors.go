package roster

import "fmt"

// TransportError reports a failed round-trip to the remote medical service.
// It is opaque to the domain: nothing is retried or repaired here, the
// failure is surfaced to the caller as a gateway problem.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream request failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream request failed (%d)", e.StatusCode)
}
