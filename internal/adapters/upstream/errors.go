package upstream

import (
	"errors"
	"fmt"
)

// ErrUpstream is the sentinel kind for every provider failure: transport
// errors, timeouts, non-success statuses, and undecodable bodies. Callers
// match with errors.Is.
var ErrUpstream = errors.New("upstream request failed")

// StatusError reports a non-success HTTP status from the provider.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}

// Unwrap ties StatusError into the ErrUpstream kind.
func (e *StatusError) Unwrap() error { return ErrUpstream }
