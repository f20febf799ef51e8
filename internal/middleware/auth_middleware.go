package middleware

import (
	"errors"
	"strings"

	"school-erp/internal/shared/apperror"
	"school-erp/internal/shared/contextutil"
	"school-erp/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the token payload issued by the identity service.
type AccessClaims struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates an HS256 bearer token (header, then access_token
// cookie) and exposes user_id, employee_id and role on the gin context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	key := []byte(jwtSecret)

	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		var claims AccessClaims
		_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			abortWith(c, apperror.ErrTokenExpired)
			return
		case err != nil:
			abortWith(c, apperror.ErrInvalidToken)
			return
		}

		if claims.UserID == "" {
			abortWith(c, apperror.ErrInvalidToken.WithDetails("user_id claim missing"))
			return
		}
		if claims.EmployeeID == "" {
			// Payroll actors are always employees; service accounts cannot act here.
			abortWith(c, apperror.ErrInvalidToken.WithDetails("employee_id claim missing"))
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("employee_id", claims.EmployeeID)
		c.Set("role", claims.Role)
		c.Request = c.Request.WithContext(contextutil.WithEmployeeID(c.Request.Context(), claims.EmployeeID))

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok && token != "" {
		return token
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func abortWith(c *gin.Context, err error) {
	response.FromError(c, err)
	c.Abort()
}
