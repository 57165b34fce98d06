package services

import (
	"fmt"
	"time"
)

// One error type per sync failure class so callers can match with errors.As
// instead of inspecting message strings.

// TimeoutError means the feed endpoint did not answer within the deadline.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to external API %s exceeded the %s timeout", e.URL, e.Timeout)
}

// ConnectionError means the feed endpoint could not be reached at all
// (DNS failure, connection refused, unreachable network).
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to API URL %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TransportError means the endpoint answered with a non-2xx status.
type TransportError struct {
	Status int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("external API returned unexpected status %d", e.Status)
}

// FormatError means the response body was not the expected JSON feed.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("could not parse API response as JSON: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// IntegrityError means the reconciled batch could not be committed; the
// transaction was rolled back and the catalog is unchanged.
type IntegrityError struct {
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("could not commit product batch: %v", e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }
