package auth

import "context"

// Identity is the authenticated caller resolved from a bearer token.
// It is request scoped and only ever travels inside a context.Context.
type Identity struct {
	AccountID int64
	Login     string
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the identity bound to ctx, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
