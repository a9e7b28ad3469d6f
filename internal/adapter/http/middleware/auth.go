package middleware

import (
	"log"
	"net/http"
	"strings"

	"styledecor/internal/domain/entities"
	"styledecor/internal/domain/policy"
	"styledecor/internal/infrastructure/auth"
	"styledecor/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ctxKeySub   = "sub"
	ctxKeyEmail = "email"
	ctxKeyRole  = "role"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or malformed bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this resource", http.StatusForbidden)
)

// JWTAuth verifies the Authorization bearer token and stores the
// decoded identity on the gin context.
func JWTAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			log.Printf("[auth][middleware] token rejected err=%v", err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ctxKeySub, claims.Sub)
		c.Set(ctxKeyEmail, claims.Email)
		c.Set(ctxKeyRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Runs after
// JWTAuth.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual := entities.Role(c.GetString(ctxKeyRole))
		for _, r := range roles {
			if actual == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

// ActorFrom rebuilds the policy actor from the context values set by
// JWTAuth.
func ActorFrom(c *gin.Context) policy.Actor {
	return policy.Actor{
		ID:    c.GetString(ctxKeySub),
		Email: c.GetString(ctxKeyEmail),
		Role:  entities.Role(c.GetString(ctxKeyRole)),
	}
}
