package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"pressroom/internal/model"
	"pressroom/internal/repository"
)

// DashboardPath is the fixed destination a denied request is redirected to.
const DashboardPath = "/api/dashboard"

// identityContextKey is where the resolved user is stored on the echo context.
const identityContextKey = "identity"

// BearerToken extracts the raw bearer token from the Authorization header.
func BearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// IdentityResolver resolves the authenticated user for the current request.
// It returns nil (without error) when the request carries no valid identity,
// so gates and handlers never consult ambient auth state.
type IdentityResolver func(c echo.Context) (*model.User, error)

// NewJWTIdentityResolver builds the production resolver: it validates the
// bearer token with the JWT service and re-loads the user from storage, so
// role changes take effect on the next request rather than at token expiry.
// The token is parsed here rather than read off the echo-jwt context, which
// keeps the resolver independent of the middleware's token representation.
func NewJWTIdentityResolver(jwtService *JWTService, users repository.UserRepository) IdentityResolver {
	return func(c echo.Context) (*model.User, error) {
		token := BearerToken(c)
		if token == "" {
			return nil, nil
		}
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			return nil, nil
		}
		user, err := users.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return nil, nil
		}
		return user, nil
	}
}

// RequireRole gates a route group on the required role. Denied requests,
// whether unauthenticated or holding the wrong role, are answered identically
// with a redirect to the dashboard. On Proceed the resolved identity is
// stashed on the context for handlers.
func RequireRole(resolver IdentityResolver, required model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := resolver(c)
			if err != nil {
				identity = nil
			}
			if !Allow(identity, required) {
				return c.Redirect(http.StatusFound, DashboardPath)
			}
			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

// CurrentUser returns the identity stashed by RequireRole, if any.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(identityContextKey).(*model.User)
	return user, ok
}

// CheckBlacklist rejects access tokens revoked by logout before their expiry.
// Requests without a parseable token pass through, signature and expiry are
// the JWT middleware's job, this layer only adds revocation.
func CheckBlacklist(jwtService *JWTService, tokenStore TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)
			if token == "" {
				return next(c)
			}
			claims, err := jwtService.ValidateToken(token)
			if err != nil || claims.ID == "" {
				return next(c)
			}
			blacklisted, _ := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if blacklisted {
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}
			return next(c)
		}
	}
}

// BlacklistTTL returns how long a revoked access token must stay blacklisted,
// which is the time left until it expires on its own.
func BlacklistTTL(claims *Claims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return AccessTokenExpiry
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return time.Second
	}
	return ttl
}
