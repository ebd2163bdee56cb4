// Package identity resolves inbound requests to the stable external user
// identifier issued by the identity provider. It never touches the database
// and produces no side effects; mapping an external identifier to an internal
// user record is the user directory's job.
package identity

import "net/http"

// Resolver maps an inbound request to a non-empty external user identifier.
// Implementations return ErrUnauthorized (or a variant of it) when no
// identity can be resolved; downstream handlers must then fail the request
// without further work.
type Resolver interface {
	Resolve(r *http.Request) (string, error)
}
