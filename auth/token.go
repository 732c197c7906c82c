package auth

import (
	"fmt"
	"time"

	"traffic-lab/errors"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "traffic-lab"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates HS256 tokens with the configured secret.
type TokenManager struct {
	key      []byte
	duration time.Duration
}

func NewTokenManager(secret string, duration time.Duration) *TokenManager {
	return &TokenManager{key: []byte(secret), duration: duration}
}

// GenerateToken creates a signed JWT for a specific user.
func (m *TokenManager) GenerateToken(userID, email, displayName string) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.key)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
// Every failure is reported as ErrInvalidToken.
func (m *TokenManager) ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, errors.ErrInvalidToken
	}
	return claims, nil
}
