package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/ngenohkevin/zid-admin/internal/services"
)

const (
	operatorKey = "operator"
	roleKey     = "operator_role"
	claimsKey   = "claims"
)

const (
	MsgMissingAuthHeader       = "Authorization header is required"
	MsgInvalidAuthFormat       = "Authorization header must be in format 'Bearer <token>'"
	MsgInvalidToken            = "Invalid or expired token"
	MsgInsufficientPermissions = "Insufficient permissions to access this resource"
)

type AuthMiddleware struct {
	authService services.AuthServiceInterface
}

func NewAuthMiddleware(authService services.AuthServiceInterface) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// BearerToken extracts the token from the Authorization header
func BearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			abortWithFailure(c, http.StatusUnauthorized, MsgMissingAuthHeader)
			return
		}

		tokenString, ok := BearerToken(c)
		if !ok {
			abortWithFailure(c, http.StatusUnauthorized, MsgInvalidAuthFormat)
			return
		}

		claims, err := m.authService.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			abortWithFailure(c, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		c.Set(operatorKey, claims.Username)
		c.Set(roleKey, claims.Role)
		c.Set(claimsKey, claims)

		c.Next()
	}
}

// RequireMethodAccess rejects requests whose method the operator's role may
// not issue. Must run after RequireAuth.
func (m *AuthMiddleware) RequireMethodAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetOperatorRole(c).CanAccess(c.Request.Method) {
			abortWithFailure(c, http.StatusForbidden, MsgInsufficientPermissions)
			return
		}
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRole(allowedRoles ...models.OperatorRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetOperatorRole(c)
		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				c.Next()
				return
			}
		}

		abortWithFailure(c, http.StatusForbidden, MsgInsufficientPermissions)
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(models.RoleAdmin)
}

func GetOperator(c *gin.Context) string {
	return c.GetString(operatorKey)
}

func GetOperatorRole(c *gin.Context) models.OperatorRole {
	role, exists := c.Get(roleKey)
	if !exists {
		return ""
	}

	if r, ok := role.(models.OperatorRole); ok {
		return r
	}

	return ""
}

func GetClaims(c *gin.Context) *models.JWTClaims {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}

	if cl, ok := claims.(*models.JWTClaims); ok {
		return cl
	}

	return nil
}
