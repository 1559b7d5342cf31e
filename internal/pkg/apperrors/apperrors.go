package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidRequest marks missing or malformed caller input.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidState marks a trigger that is not valid for the entity's
	// current lifecycle state. No mutation happens when it is returned.
	ErrInvalidState = errors.New("invalid state")
	// ErrNotFound marks an absent entity, file or user.
	ErrNotFound = errors.New("not found")
	// ErrEngineInactive marks an analyze call against a disabled fusion engine.
	ErrEngineInactive = errors.New("engine inactive")
	// ErrGatewayTimeout marks a workflow-runner call that did not answer in
	// time. Distinct from GatewayError: upstream state is unknown, not negative.
	ErrGatewayTimeout = errors.New("gateway timeout")
)

// GatewayError carries the upstream status and body of a rejected or failed
// workflow-runner call. It is surfaced to the caller verbatim, never retried.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("workflow gateway: HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("workflow gateway: HTTP %d", e.StatusCode)
}

func (e *GatewayError) HTTPStatusCode() int { return e.StatusCode }

// HTTPStatus maps the error taxonomy onto response status codes at the
// handler boundary.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrEngineInactive):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrGatewayTimeout):
		return http.StatusRequestTimeout
	}
	var ge *GatewayError
	if errors.As(err, &ge) && ge.StatusCode > 0 {
		return ge.StatusCode
	}
	return http.StatusInternalServerError
}

// Code returns the machine-readable error code used in response envelopes.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrEngineInactive):
		return "engine_inactive"
	case errors.Is(err, ErrGatewayTimeout):
		return "gateway_timeout"
	}
	var ge *GatewayError
	if errors.As(err, &ge) {
		return "gateway_error"
	}
	return "internal_error"
}
