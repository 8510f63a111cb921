package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"campus-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Subject is the authenticated identity attached to the request context.
type Subject struct {
	ID         string
	Email      string
	Name       string
	Role       string
	EmployeeID string
}

// SubjectResolver resolves a token subject to its stored user. A token whose
// subject no longer exists must not pass the gate.
type SubjectResolver interface {
	Resolve(ctx context.Context, userID string) (*Subject, error)
}

// AuthMiddleware verifies the bearer token (HS256 signature + expiry) and
// resolves its subject. Roles are carried through the context but no endpoint
// restricts access by role; any authenticated user may call any endpoint.
func AuthMiddleware(resolver SubjectResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			code, msg := "INVALID_TOKEN", "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				code, msg = "TOKEN_EXPIRED", "Token expired"
			}
			response.Error(c, http.StatusUnauthorized, code, msg, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Subject not found in token", nil)
			c.Abort()
			return
		}

		subject, err := resolver.Resolve(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not found", nil)
			c.Abort()
			return
		}

		c.Set("user_id", subject.ID)
		c.Set("user_email", subject.Email)
		c.Set("user_name", subject.Name)
		c.Set("role", subject.Role)
		c.Set("employee_id", subject.EmployeeID)

		c.Next()
	}
}
