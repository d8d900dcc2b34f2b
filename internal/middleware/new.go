package middleware

import (
	pkgLog "dealership-concierge/pkg/log"
)

// Middleware bundles the HTTP middlewares with their dependencies.
type Middleware struct {
	l pkgLog.Logger
}

// New creates the middleware bundle.
func New(l pkgLog.Logger) Middleware {
	return Middleware{l: l}
}
