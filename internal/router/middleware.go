package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"noticeboard/internal/auth"
	"noticeboard/internal/repository"
)

// JWTGate verifies the bearer token's signature and expiry, parsing it into
// auth.Claims. A missing header and an invalid token get distinct messages.
func JWTGate(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
		},
	})
}

// AdminIdentity re-queries the admin embedded in the verified token and
// attaches it to the request context. A structurally valid token whose admin
// row has been deleted is rejected, so stale tokens die with their admin.
func AdminIdentity(adminRepo repository.AdminRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}

			admin, err := adminRepo.FindByID(c.Request().Context(), claims.AdminID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}

			c.Set(auth.ContextKeyAdmin, admin)
			return next(c)
		}
	}
}
