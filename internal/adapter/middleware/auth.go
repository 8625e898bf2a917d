package middleware

import (
	"net/http"
	"strings"

	"givemarket-backend/internal/domain/authz"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	actorContextKey = "auth_actor"
	bearerPrefix    = "Bearer "
)

// Claims is what the external identity provider signs into the bearer token.
// The platform only trusts the verified {id, email, role} triple.
type Claims struct {
	UserID uint64 `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth verifies the bearer token and stores the actor in the request
// context. 401 on missing/invalid token.
func JWTAuth(secret string) echo.MiddlewareFunc {
	key := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authorization header"})
			}
			if !strings.HasPrefix(header, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid authorization header format"})
			}
			tokenString := strings.TrimPrefix(header, bearerPrefix)

			var claims Claims
			token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return key, nil
			})
			if err != nil || !token.Valid || claims.UserID == 0 {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			c.Set(actorContextKey, authz.Actor{
				ID:    claims.UserID,
				Email: claims.Email,
				Role:  authz.Role(claims.Role),
			})
			return next(c)
		}
	}
}

// RequireRole gates a route group to the given roles. 403 otherwise.
func RequireRole(roles ...authz.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
		}
	}
}

func RequireAdmin() echo.MiddlewareFunc { return RequireRole(authz.RoleAdmin) }

func ActorFrom(c echo.Context) (authz.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(authz.Actor)
	return actor, ok
}
