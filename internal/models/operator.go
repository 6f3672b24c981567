package models

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

type OperatorRole string

const (
	RoleAdmin  OperatorRole = "admin"
	RoleViewer OperatorRole = "viewer"
)

// Operator is a back-office account allowed to use the gateway
type Operator struct {
	Username     string       `json:"username" mapstructure:"username"`
	PasswordHash string       `json:"-" mapstructure:"password_hash"`
	Role         OperatorRole `json:"role" mapstructure:"role"`
}

// CanAccess reports whether the role may issue the given HTTP method.
// Viewers are read-only.
func (r OperatorRole) CanAccess(method string) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleViewer:
		return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
	default:
		return false
	}
}

type JWTClaims struct {
	Username string       `json:"username"`
	Role     OperatorRole `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Operator    *Operator `json:"operator"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int       `json:"expires_in"`
}
