// Package upstream defines the error taxonomy shared by the Google
// Calendar and YouTube clients. Failures are surfaced synchronously to
// the caller; no retries are performed anywhere.
package upstream

import (
	"fmt"
	"net/http"
)

// Error reports a non-success response or a transport failure from an
// upstream provider. StatusCode is 0 for transport failures.
type Error struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %v", e.Err)
	}
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus is the status to relay to the inbound caller: the
// provider's own status, or 502 when the request never completed.
func (e *Error) HTTPStatus() int {
	if e.StatusCode == 0 {
		return http.StatusBadGateway
	}
	return e.StatusCode
}

// ConfigError reports missing provider credentials. Only presence
// booleans are carried so logs never leak secret values.
type ConfigError struct {
	Service     string
	HasAPIKey   bool
	HasTargetID bool
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s API credentials not configured (api key: %t, target id: %t)",
		e.Service, e.HasAPIKey, e.HasTargetID)
}
