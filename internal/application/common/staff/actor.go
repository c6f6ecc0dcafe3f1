// Package staff carries the identity of the acting staff member through a request.
package staff

import "context"

// Actor is the staff member performing an operation.
type Actor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// System is the actor used for work that no staff member started.
var System = Actor{ID: "system", Username: "system", Role: "admin"}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// FromContext returns the actor bound to ctx, or System.
func FromContext(ctx context.Context) Actor {
	if a, ok := ctx.Value(actorKey{}).(Actor); ok && a.ID != "" {
		return a
	}
	return System
}
