package middleware

import (
	"context"
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// TokenContextKey is where the verified *jwt.Token is stored on the echo context.
const TokenContextKey = "user"

// Verifier rejects requests without an Authorization header with 401 and
// requests whose bearer token fails verification with 403. Nothing behind
// it runs in either case.
func Verifier(signingKey string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(signingKey),
		ContextKey: TokenContextKey,
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized access"})
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden access"})
		},
	})
}

func ExtractEmailFromJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(TokenContextKey).(*jwtv5.Token)
			if !ok || token == nil {
				return next(c)
			}

			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return next(c)
			}

			email, ok := claims["email"].(string)
			if !ok || email == "" {
				return next(c)
			}

			ctx := context.WithValue(c.Request().Context(), emailKey, email)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
