package middleware

import (
	"net/http"
	"strings"

	"supermarketapi/internal/apierror"
	"supermarketapi/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	PrincipalKey = "principal"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route and places the
// resulting Principal in the request context. Missing or unusable credentials
// are 401; what the principal may then do is the authorization policy's call,
// made inside the services.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalid or expired"))
			return
		}

		uid, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalid or expired"))
			return
		}

		c.Set(PrincipalKey, authz.Principal{
			ID:   uid,
			Name: claims.Name,
			Role: authz.Role(claims.Role),
		})
		c.Next()
	}
}

// GetPrincipal retrieves the typed principal from the Gin context.
func GetPrincipal(c *gin.Context) authz.Principal {
	principal, _ := c.MustGet(PrincipalKey).(authz.Principal)
	return principal
}
