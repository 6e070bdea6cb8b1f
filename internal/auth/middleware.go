package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"todoapi/internal/model"
	"todoapi/internal/repository"
)

const userContextKey = "user"

// Middleware returns the bearer-token middleware for protected routes. It
// verifies the token signature and expiry, then refetches the referenced
// user from the store so a deleted account cannot keep using old tokens.
// The request context ends up holding a PublicUser, never the stored hash.
func Middleware(jwtService *JWTService, users repository.UserRepository) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: userContextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				return nil, err
			}
			userID, err := claims.UserID()
			if err != nil {
				return nil, err
			}
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return nil, err
			}
			return user.Public(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// Missing, malformed, expired and orphaned tokens all read as
			// unauthenticated.
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		},
	})
}

// CurrentUser returns the authenticated user stored by Middleware.
func CurrentUser(c echo.Context) *model.PublicUser {
	user, _ := c.Get(userContextKey).(*model.PublicUser)
	return user
}
