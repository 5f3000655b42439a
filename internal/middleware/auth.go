package middleware

import (
	stderrors "errors"
	"log/slog"

	"budget-tracker/internal/errors"
	"budget-tracker/internal/handlers"
	"budget-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// Echo context keys set by ResolveIdentity
const (
	UserIDContextKey     = "user_id"
	ExternalIDContextKey = "user_external_id"
)

// DefaultSessionCookie is the identity provider's session cookie name
const DefaultSessionCookie = "__session"

// ResolveIdentity turns the request's session token into a local user.
// Requests without a token continue as guests. A token that fails
// verification is rejected with 401. When the user store cannot be reached
// the request continues as a guest so reads can still render their empty state.
func ResolveIdentity(
	verifier services.SessionVerifierInterface,
	identity services.IdentityServiceInterface,
	cookieName string,
) echo.MiddlewareFunc {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var cookieValue string
			if cookie, err := c.Cookie(cookieName); err == nil {
				cookieValue = cookie.Value
			}

			token, err := verifier.ExtractToken(c.Request().Header.Get(echo.HeaderAuthorization), cookieValue)
			if err != nil {
				if stderrors.Is(err, services.ErrNoToken) {
					return next(c)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			ctx := c.Request().Context()
			user, err := identity.ResolveUser(ctx, claims)
			if err != nil {
				slog.ErrorContext(ctx, "Failed to resolve identity, continuing as guest",
					"trace_id", GetTraceID(c),
					"external_id", claims.ExternalID(),
					"error", err,
				)
				return next(c)
			}
			if user == nil {
				return next(c)
			}

			c.Set(UserIDContextKey, user.ID)
			c.Set(ExternalIDContextKey, user.ExternalID)

			return next(c)
		}
	}
}

// RequireIdentity rejects guests with AUTH_001. It must run after ResolveIdentity.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Get(UserIDContextKey) == nil {
				return handlers.SendError(c, errors.AuthMissingSession)
			}
			return next(c)
		}
	}
}
