package auth

import (
	"errors"
	"fmt"
	"time"

	"lila/config"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken issues a signed token for the given identity, valid
// for cfg.Expiry from now.
func GenerateToken(cfg *config.JWTConfig, userID uint, username, role string) (string, error) {
	return GenerateTokenAt(cfg, userID, username, role, time.Now())
}

// GenerateTokenAt issues a token as of the given issue time. Split out
// so expiry behavior is testable without waiting out the window.
func GenerateTokenAt(cfg *config.JWTConfig, userID uint, username, role string, issuedAt time.Time) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(cfg.Expiry)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken validates signature and expiry. Verification is
// stateless: a deleted account stays valid until its token expires.
func ParseToken(cfg *config.JWTConfig, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
