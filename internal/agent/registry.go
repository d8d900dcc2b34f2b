package agent

import (
	"fmt"

	"dealership-concierge/internal/router"
)

// Registry is the route → responder lookup table. Populated at startup and
// read-only afterwards, so concurrent lookups need no synchronization.
type Registry struct {
	responders map[router.Route]*Responder
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		responders: make(map[router.Route]*Responder),
	}
}

// Register binds a responder to its configured route. The last registration
// for a route wins; Validate catches accidental gaps.
func (r *Registry) Register(resp *Responder) {
	r.responders[resp.Route()] = resp
}

// Get returns the responder bound to route, or *UnknownRouteError.
func (r *Registry) Get(route router.Route) (*Responder, error) {
	resp, ok := r.responders[route]
	if !ok {
		return nil, &UnknownRouteError{Route: route}
	}
	return resp, nil
}

// Routes returns the registered route set.
func (r *Registry) Routes() []router.Route {
	routes := make([]router.Route, 0, len(r.responders))
	for route := range r.responders {
		routes = append(routes, route)
	}
	return routes
}

// Validate asserts that the registry's domain equals the classifier's route
// enumeration. Called once at startup so an unknown route cannot surface at
// request time.
func (r *Registry) Validate() error {
	for _, route := range router.AllRoutes {
		if _, ok := r.responders[route]; !ok {
			return fmt.Errorf("registry: route %q has no responder", route)
		}
	}
	if len(r.responders) != len(router.AllRoutes) {
		for route := range r.responders {
			if !route.IsValid() {
				return fmt.Errorf("registry: responder bound to unknown route %q", route)
			}
		}
	}
	return nil
}
