// Package auth implements the single-operator identity: a config-held
// bcrypt credential exchanged for an HS256 JWT.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sarahbeaino/pharmapos/internal/apperr"
	"github.com/sarahbeaino/pharmapos/internal/config"
)

// Claims holds the typed JWT payload.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type Service struct {
	cfg config.Auth
}

func NewService(cfg config.Auth) *Service {
	return &Service{cfg: cfg}
}

// Login verifies the operator credential and returns a signed token with its
// expiry.
func (s *Service) Login(username, password string) (string, time.Time, error) {
	if username != s.cfg.Username {
		return "", time.Time{}, apperr.InvalidCredentialsErr
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, apperr.InvalidCredentialsErr
	}

	expiresAt := time.Now().Add(s.cfg.TokenTTL)
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return token, expiresAt, nil
}

// VerifyToken parses and validates a token string.
func (s *Service) VerifyToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, apperr.InvalidTokenErr.WrapParent(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperr.InvalidTokenErr
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password. Used by
// deployments to produce the AUTH_PASSWORD_HASH value.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}
