package agent

import (
	"errors"
	"fmt"

	"dealership-concierge/internal/router"
)

// ErrEmptyOutput marks a responder run whose model call succeeded but produced
// no usable text. Never coerced to an empty reply at this layer.
var ErrEmptyOutput = errors.New("model returned no usable output")

// UnknownRouteError reports a route with no responder bound to it. Startup
// validation makes this unreachable at request time; if it fires anyway it is
// a deploy-time bug, fatal for the request.
type UnknownRouteError struct {
	Route router.Route
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("no responder bound to route %q", e.Route)
}

// ResponderError reports a failed responder invocation: the model call errored
// or returned unusable output.
type ResponderError struct {
	Route router.Route
	Name  string
	Err   error
}

func (e *ResponderError) Error() string {
	return fmt.Sprintf("responder %s (route %s) failed: %v", e.Name, e.Route, e.Err)
}

func (e *ResponderError) Unwrap() error {
	return e.Err
}
