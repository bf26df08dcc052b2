// Package token contains utilities for http tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/plateful/plateful/internal/env"
	"github.com/plateful/plateful/internal/jwt"
)

const (
	accessTokenLifetime = 60 * 30 // 30 minutes
)

type userIDKeyType struct{}

type accessTokenKeyType struct{}

var (
	userIDKey      userIDKeyType
	accessTokenKey accessTokenKeyType
)

var ErrNoUserID = errors.New("no user id in context")

func AccessTokenName(env *env.Env) string {
	if env.Get("ENV") == "PROD" {
		return "__Host-Http-access"
	}
	return "access"
}

func CreateAccessToken(params jwt.JWTParams, env *env.Env) (string, error) {
	secret := env.Get("APP_SECRET")
	if secret == "" {
		return "", errors.New("environment variable APP_SECRET not defined")
	}
	version := env.Get("APP_SECRET_VERSION")
	if version == "" {
		version = jwt.DefaultKID
	}
	token, err := jwt.GenerateJWT(params, []byte(secret), version)
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}

func NewAccessTokenCookie(token string, env *env.Env) *http.Cookie {
	cookie := &http.Cookie{
		Name:     AccessTokenName(env),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   accessTokenLifetime,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	}

	if env.Get("ENV") == "PROD" {
		cookie.Secure = true
	}

	return cookie
}

// ExpiredAccessTokenCookie clears the access cookie on logout.
func ExpiredAccessTokenCookie(env *env.Env) *http.Cookie {
	cookie := NewAccessTokenCookie("", env)
	cookie.MaxAge = -1
	return cookie
}

// GetAccessToken reads the raw access JWT from the request cookie.
func GetAccessToken(r *http.Request, env *env.Env) (string, error) {
	cookie, err := r.Cookie(AccessTokenName(env))
	if err != nil {
		return "", fmt.Errorf("reading access cookie: %w", err)
	}
	return cookie.Value, nil
}

func UserIDWithCtx(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromCtx(ctx context.Context) (int64, error) {
	if v, ok := ctx.Value(userIDKey).(int64); ok {
		return v, nil
	}
	return 0, ErrNoUserID
}

// MaybeUserIDFromCtx is for routes that serve anonymous viewers: it
// returns (0, false) instead of an error when no user is authenticated.
func MaybeUserIDFromCtx(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(userIDKey).(int64)
	return v, ok
}

func AccessTokenWithCtx(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

func AccessTokenFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(accessTokenKey).(string)
	return v, ok
}
