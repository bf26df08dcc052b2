// Package jwt issues and verifies the signed access tokens.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTParams struct {
	Role   string
	UserID string
}

const (
	JWTDuration = time.Hour
	DefaultKID  = "1"
)

// Claims is the registered claim set plus the user's role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 token. The secret version travels in the
// kid header so rotated secrets invalidate old tokens.
func GenerateJWT(params JWTParams, secret []byte, version string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: params.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   params.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(JWTDuration)),
		},
	})
	token.Header["kid"] = version

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// ValidateJWT checks the signature and the kid header against the
// active secret version.
func ValidateJWT(rawToken, version string, secret []byte) (*jwt.Token, error) {
	return jwt.Parse(rawToken, func(token *jwt.Token) (any, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, errors.New("missing kid header")
		}
		if kid != version {
			return nil, fmt.Errorf("unknown secret version %q", kid)
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
}
