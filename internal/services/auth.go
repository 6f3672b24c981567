package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ngenohkevin/zid-admin/internal/models"
	"github.com/redis/go-redis/v9"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingSecret      = errors.New("jwt secret is not configured")
)

// AuthServiceInterface is what the auth middleware and handler depend on
type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*models.JWTClaims, error)
	RevokeToken(ctx context.Context, tokenString string) error
}

// AuthService authenticates back-office operators and issues bearer tokens.
// Revoked tokens are tracked in redis when a client is available.
type AuthService struct {
	secret      []byte
	tokenExpiry time.Duration
	operators   map[string]models.Operator
	logger      *slog.Logger
	redisClient *redis.Client
}

func NewAuthService(secret string, tokenExpiry time.Duration, operators []models.Operator, logger *slog.Logger, redisClient *redis.Client) (*AuthService, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if logger == nil {
		logger = slog.Default()
	}

	byName := make(map[string]models.Operator, len(operators))
	for _, op := range operators {
		if op.Role == "" {
			op.Role = models.RoleViewer
		}
		byName[op.Username] = op
	}

	return &AuthService{
		secret:      []byte(secret),
		tokenExpiry: tokenExpiry,
		operators:   byName,
		logger:      logger,
		redisClient: redisClient,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	op, ok := s.operators[username]
	if !ok || op.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	valid, err := VerifyPassword(op.PasswordHash, password)
	if err != nil {
		s.logger.Error("Operator password hash is unreadable", "username", username, "error", err)
		return nil, ErrInvalidCredentials
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(op)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Operator logged in", "username", username, "role", op.Role)

	return &models.LoginResponse{
		Operator:    &op,
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokenExpiry.Seconds()),
	}, nil
}

func (s *AuthService) GenerateToken(op models.Operator) (string, error) {
	now := time.Now()
	claims := &models.JWTClaims{
		Username: op.Username,
		Role:     op.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   op.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *AuthService) parse(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*models.JWTClaims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		revoked, err := s.redisClient.Exists(ctx, revocationKey(claims.ID)).Result()
		if err != nil {
			// Continue validation if Redis is down
			s.logger.Error("Failed to check token revocation", "error", err)
		}
		if revoked > 0 {
			return nil, ErrInvalidToken
		}
	}

	return claims, nil
}

// RevokeToken blocks a token until it would have expired anyway. Without
// redis the token stays valid until expiry.
func (s *AuthService) RevokeToken(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString)
	if err != nil {
		return err
	}

	if s.redisClient == nil {
		s.logger.Warn("Token revocation unavailable without redis", "username", claims.Username)
		return nil
	}

	expiry := time.Until(claims.ExpiresAt.Time)
	if expiry <= 0 {
		return nil
	}

	if err := s.redisClient.Set(ctx, revocationKey(claims.ID), "1", expiry).Err(); err != nil {
		s.logger.Error("Failed to revoke token", "error", err)
		return err
	}

	s.logger.Info("Token revoked", "username", claims.Username)
	return nil
}

func revocationKey(tokenID string) string {
	return fmt.Sprintf("revoked:%s", tokenID)
}
