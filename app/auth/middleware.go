package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

// RequireUser rejects requests without a valid identity provider token and
// attaches the caller identity to both the echo and the request context.
func RequireUser(verifier *Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			identity, err := verifier.Verify(BearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization)))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, &errorResponse{Error: "unauthorized"})
			}

			ctx.Set(echoIdentityKey, identity)
			ctx.SetRequest(ctx.Request().WithContext(WithIdentity(ctx.Request().Context(), identity)))
			return next(ctx)
		}
	}
}
