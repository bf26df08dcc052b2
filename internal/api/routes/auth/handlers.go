// Package auth contains handlers for the auth endpoints
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"

	apiError "github.com/plateful/plateful/internal/api/error"
	"github.com/plateful/plateful/internal/api/requestid"
	"github.com/plateful/plateful/internal/api/token"
	"github.com/plateful/plateful/internal/api/validate"
	"github.com/plateful/plateful/internal/argon2id"
	"github.com/plateful/plateful/internal/env"
	mJson "github.com/plateful/plateful/internal/json"
	"github.com/plateful/plateful/internal/jwt"
	"github.com/plateful/plateful/internal/role"
)

// HandleLogin godoc
//
//	@Summary	Exchange credentials for an access token.
//	@Tags		Auth
//	@Accept		json
//	@Param		request	body	LoginRequest	true	"Login Request"
//	@Success	200	{object}	LoginResponse
//	@Failure	401	{object}	apiError.Error	"Unauthorized"
//	@Router		/api/auth/token/login [POST]
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Decode JSON
	var request LoginRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := mJson.DecodeJSON(&request, decoder); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	if err := validate.New().Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	// Retrieve user information
	env.Logger.DebugContext(ctx, "Retrieving user information")
	user, err := env.Database.GetUserByEmail(ctx, request.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "User with email does not exist",
			slog.String("email", request.Email),
			slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email or password is incorrect", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to retrieve user information", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Compare passwords
	env.Logger.DebugContext(ctx, "Comparing passwords")
	match, err := argon2id.Verify(request.Password, user.PasswordHash)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode password hash", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if !match {
		env.Logger.ErrorContext(ctx, "Given password is incorrect")
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email or password is incorrect", requestID)
		return
	}

	// Create access token
	env.Logger.DebugContext(ctx, "Generating access token")
	accessToken, err := token.CreateAccessToken(jwt.JWTParams{
		Role:   role.DBToRole(user.Role).String(),
		UserID: fmt.Sprintf("%d", user.ID),
	}, env)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to create access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Write response
	env.Logger.DebugContext(ctx, "Writing response")
	http.SetCookie(w, token.NewAccessTokenCookie(accessToken, env))
	resp, err := json.Marshal(LoginResponse{AuthToken: accessToken})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleLogout godoc
//
//	@Summary	Invalidate the access cookie.
//	@Tags		Auth
//	@Success	204	"Logged out"
//	@Security	AccessTokenCookie
//	@Router		/api/auth/token/logout [POST]
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	env.Logger.DebugContext(ctx, "Clearing access cookie")
	http.SetCookie(w, token.ExpiredAccessTokenCookie(env))
	w.WriteHeader(http.StatusNoContent)
}
