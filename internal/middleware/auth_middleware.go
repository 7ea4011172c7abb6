package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/muhammad-amin-8102/crown-security-personal/internal/domain"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/apperror"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/contextutil"
	"github.com/muhammad-amin-8102/crown-security-personal/internal/shared/response"
)

const (
	ContextUserID    = "user_id"
	ContextUserRole  = "role"
	ContextUserName  = "user_name"
	ContextUserEmail = "user_email"
)

// Authenticate memverifikasi bearer token dan menempelkan identity ke context.
// required=false membiarkan request anonim lewat dengan identity kosong.
func Authenticate(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if !required {
				c.Next()
				return
			}
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Token not found")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_ACCESS_SECRET")), nil
		})

		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, apperror.CodeInvalidToken, "Token is invalid or expired")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, apperror.CodeInvalidToken, "Invalid token claims")
			c.Abort()
			return
		}

		userID, ok := claims["id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeInvalidToken, "User ID not found in token")
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		name, _ := claims["name"].(string)
		email, _ := claims["email"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Set(ContextUserName, name)
		c.Set(ContextUserEmail, email)

		// Propagasi ke standard context untuk layer service/repo
		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		ctx = contextutil.WithRole(ctx, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Allow menolak request yang role-nya tidak ada di allowlist statis route.
// Tanpa identity → 401, role tidak dikenal atau tidak diizinkan → 403.
func Allow(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(ContextUserRole)
		if !exists {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Authentication is required")
			c.Abort()
			return
		}

		role, _ := userRole.(string)
		if !domain.RoleAllowed(role, allowedRoles) {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You do not have permission to access this resource")
			c.Abort()
			return
		}

		c.Next()
	}
}

// IdentityFrom mengambil identity hasil Authenticate dari gin context.
func IdentityFrom(c *gin.Context) domain.Identity {
	return domain.Identity{
		ID:    c.GetString(ContextUserID),
		Role:  c.GetString(ContextUserRole),
		Name:  c.GetString(ContextUserName),
		Email: c.GetString(ContextUserEmail),
	}
}
