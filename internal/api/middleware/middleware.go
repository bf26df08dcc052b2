// Package middleware contains middleware functions for the API
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/httplog/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"

	apiError "github.com/plateful/plateful/internal/api/error"
	"github.com/plateful/plateful/internal/api/requestid"
	"github.com/plateful/plateful/internal/api/token"
	"github.com/plateful/plateful/internal/env"
	pfJwt "github.com/plateful/plateful/internal/jwt"
	"github.com/plateful/plateful/internal/log"
	"github.com/plateful/plateful/internal/role"
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			if id := requestid.ExtractRequestID(r.Context()); id != 0 {
				return []slog.Attr{slog.Uint64("log_id", id)}
			}
			return []slog.Attr{slog.String("log_id", "N/A")}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := ulid.Now()
		r = r.WithContext(log.AppendCtx(r.Context(), slog.Uint64("log_id", requestID)))
		r = r.WithContext(requestid.InjectRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r)
	})
}

// AddCors adds the necessary CORS headers to the response.
func AddCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		origin := r.Header.Get("Origin")
		hostOrigin := e.Get("HOST_ORIGIN")
		isProd := e.Get("ENV") == "PROD"

		var allowedOrigin string
		if isProd {
			allowedOrigin = hostOrigin
		} else if origin != "" {
			// In dev mode, allow all origins
			allowedOrigin = origin
		}

		if allowedOrigin == "" && hostOrigin != "" {
			allowedOrigin = hostOrigin
		}

		if allowedOrigin == "" {
			e.Logger.WarnContext(r.Context(),
				"HOST_ORIGIN not set and no valid origin found; Access-Control-Allow-Origin will be empty")
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// authenticate validates the access cookie and returns the request with
// user id and token attached, or the API error to surface.
func authenticate(r *http.Request) (*http.Request, *apiError.ErrorCode) {
	env := env.EnvFromCtx(r.Context())

	accessToken, err := token.GetAccessToken(r, env)
	if err != nil {
		env.Logger.ErrorContext(r.Context(), "unable to get access token", slog.Any("error", err))
		code := apiError.InvalidAccessToken
		return r, &code
	}

	secret := env.Get("APP_SECRET")
	if secret == "" {
		env.Logger.ErrorContext(r.Context(), "environment variable APP_SECRET not set")
		code := apiError.InternalServerError
		return r, &code
	}
	secretVersion := env.Get("APP_SECRET_VERSION")
	if secretVersion == "" {
		secretVersion = pfJwt.DefaultKID
	}

	accessJwt, err := pfJwt.ValidateJWT(accessToken, secretVersion, []byte(secret))
	if errors.Is(err, jwt.ErrTokenExpired) {
		env.Logger.ErrorContext(r.Context(), "access token expired", slog.Any("err", err))
		code := apiError.ExpiredAccessToken
		return r, &code
	} else if err != nil {
		env.Logger.ErrorContext(r.Context(), "invalid access token", slog.Any("error", err))
		code := apiError.InvalidAccessToken
		return r, &code
	}

	sub, err := accessJwt.Claims.GetSubject()
	if err != nil {
		env.Logger.ErrorContext(r.Context(), "failed to extract subject from jwt", slog.Any("error", err))
		code := apiError.InternalServerError
		return r, &code
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		env.Logger.ErrorContext(r.Context(), "failed to parse user id", slog.Any("error", err))
		code := apiError.InternalServerError
		return r, &code
	}

	r = r.WithContext(log.AppendCtx(r.Context(), slog.Int64("user-id", userID)))
	r = r.WithContext(token.UserIDWithCtx(r.Context(), userID))
	r = r.WithContext(token.AccessTokenWithCtx(r.Context(), accessToken))
	r = r.WithContext(roleWithCtx(r.Context(), accessJwt))
	return r, nil
}

// AuthorizeRequest creates a middleware that validates JWT tokens and checks user roles.
func AuthorizeRequest(requiredRole role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			env := env.EnvFromCtx(r.Context())
			requestID := strconv.FormatUint(requestid.ExtractRequestID(r.Context()), 10)

			r, errCode := authenticate(r)
			if errCode != nil {
				_ = apiError.EncodeError(w, *errCode, errCode.String(), requestID)
				return
			}

			env.Logger.DebugContext(r.Context(), "validating user role")
			userRole := roleFromCtx(r.Context())
			if userRole < requiredRole {
				env.Logger.ErrorContext(r.Context(), "user does not have required role",
					slog.String("user-role", userRole.String()),
					slog.String("required-role", requiredRole.String()))
				_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MaybeAuthenticate attaches the user id when a valid access cookie is
// present but lets anonymous requests through untouched. Routes with
// viewer-relative flags use it so logged-out reads still work.
func MaybeAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env := env.EnvFromCtx(r.Context())

		if _, err := r.Cookie(token.AccessTokenName(env)); err != nil {
			next.ServeHTTP(w, r)
			return
		}

		authed, errCode := authenticate(r)
		if errCode != nil {
			// A cookie was presented but did not validate. Treat the
			// request as anonymous rather than failing the read.
			env.Logger.DebugContext(r.Context(), "ignoring invalid access token on optional-auth route")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, authed)
	})
}

type roleKeyType struct{}

var roleKey roleKeyType

func roleWithCtx(ctx context.Context, accessJwt *jwt.Token) context.Context {
	claims, ok := accessJwt.Claims.(jwt.MapClaims)
	if !ok {
		return ctx
	}
	roleClaim, ok := claims["role"].(string)
	if !ok {
		return ctx
	}
	return context.WithValue(ctx, roleKey, role.ToRole(roleClaim))
}

func roleFromCtx(ctx context.Context) role.Role {
	if v, ok := ctx.Value(roleKey).(role.Role); ok {
		return v
	}
	return role.RoleUnknown
}
