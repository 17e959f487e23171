package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"diettracker/apperrors"
)

// TokenClaims is the signed claim set: the user identity plus the
// registered expiry.
type TokenClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 session tokens. The signing
// key is fixed at construction and never rotated mid-process.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiry time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret cannot be empty")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), expiry: expiry}, nil
}

// Issue signs a token for userID with an absolute expiry measured from now.
func (s *TokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate checks signature and expiry against the current time and
// returns the embedded user id. Unsigned or foreign-algorithm tokens are
// rejected.
func (s *TokenService) Validate(tokenStr string) (uint, error) {
	if tokenStr == "" {
		return 0, apperrors.ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || claims.UserID == 0 {
		return 0, apperrors.ErrTokenInvalid
	}
	return claims.UserID, nil
}
