package api

import (
	"context"

	"campusbooking/internal/user"
)

// Actor is the authenticated caller attached to the request context by the
// auth middleware. Workflow code receives it explicitly instead of reaching
// into credential transport.
type Actor struct {
	ID    int64
	Role  user.Role
	Name  string
	Email string
}

type ctxKey string

const ctxKeyActor ctxKey = "actor"

func WithActor(ctx context.Context, a *Actor) context.Context {
	return context.WithValue(ctx, ctxKeyActor, a)
}

func ActorFromContext(ctx context.Context) *Actor {
	v := ctx.Value(ctxKeyActor)
	if v == nil {
		return nil
	}
	a, _ := v.(*Actor)
	return a
}
