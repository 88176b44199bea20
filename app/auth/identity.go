package auth

import (
	"context"

	"github.com/labstack/echo/v4"
)

// Identity is the authenticated caller as asserted by the identity provider.
type Identity struct {
	UserID string
	Email  string
}

type identityKey struct{}

const echoIdentityKey = "auth.identity"

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(*Identity)
	return identity, ok && identity != nil
}

func IdentityFromEcho(ctx echo.Context) (*Identity, bool) {
	identity, ok := ctx.Get(echoIdentityKey).(*Identity)
	return identity, ok && identity != nil
}
