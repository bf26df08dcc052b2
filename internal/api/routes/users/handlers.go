// Package users contains handlers for the user resource.
package users

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	apiError "github.com/plateful/plateful/internal/api/error"
	"github.com/plateful/plateful/internal/api/pagination"
	"github.com/plateful/plateful/internal/api/requestid"
	"github.com/plateful/plateful/internal/api/token"
	"github.com/plateful/plateful/internal/api/validate"
	"github.com/plateful/plateful/internal/argon2id"
	"github.com/plateful/plateful/internal/database"
	"github.com/plateful/plateful/internal/env"
	mJson "github.com/plateful/plateful/internal/json"
	"github.com/plateful/plateful/internal/password"
	"github.com/plateful/plateful/internal/recipe"
)

func viewerFromCtx(r *http.Request) pgtype.Int8 {
	if id, ok := token.MaybeUserIDFromCtx(r.Context()); ok {
		return pgtype.Int8{Int64: id, Valid: true}
	}
	return pgtype.Int8{}
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// HandleSignup godoc
//
//	@Summary	Create a user account.
//	@Tags		User
//	@Accept		json
//	@Param		request	body	SignupRequest	true	"Signup Request"
//	@Success	201	{object}	SignupResponse
//	@Failure	409	{object}	apiError.Error	"Email or username already taken"
//	@Failure	422	{object}	apiError.Error	"Weak password"
//	@Router		/api/users [POST]
func HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Decode JSON
	var request SignupRequest
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

	// Ensure password strength
	env.Logger.DebugContext(ctx, "Validating password")
	if err := password.ValidatePassword(request.Password); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate password", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.WeakPassword, err.Error(), requestID) // OK to share the error with client.
		return
	}

	// Hash password
	env.Logger.DebugContext(ctx, "Hashing password")
	hash, err := argon2id.EncodeHash(request.Password, argon2id.DefaultParams)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Create user
	env.Logger.DebugContext(ctx, "Creating user")
	userID, err := env.Database.CreateUser(ctx, database.CreateUserParams{
		Email:        request.Email,
		Username:     request.Username,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: hash,
		Role:         database.RoleUser,
	})
	if database.IsUniqueViolation(err, "users_email_key") {
		env.Logger.ErrorContext(ctx, "User with email already exists", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.EmailConflict, "email already in use", requestID)
		return
	} else if database.IsUniqueViolation(err, "users_username_key") {
		env.Logger.ErrorContext(ctx, "User with username already exists", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.UsernameConflict, "username already in use", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Write response
	env.Logger.DebugContext(ctx, "Writing response")
	resp, err := json.Marshal(SignupResponse{
		ID:        userID,
		Email:     request.Email,
		Username:  request.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to marshal response", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if _, err := w.Write(resp); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleListUsers godoc
//
//	@Summary	List users.
//	@Tags		User
//	@Produce	json
//	@Param		page	query	int	false	"Page number"
//	@Param		limit	query	int	false	"Page size"
//	@Success	200	{object}	pagination.Envelope[recipe.UserDocument]
//	@Router		/api/users [GET]
func HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	page, err := pagination.ParseParams(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse pagination params", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Listing users")
	rows, err := env.Database.ListUsers(ctx, database.ListUsersParams{
		Viewer: viewerFromCtx(r),
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	total, err := env.Database.CountUsers(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to count users", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	docs := make([]recipe.UserDocument, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, recipe.NewUserDocument(row))
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pagination.NewEnvelope(docs, r.URL.Path, page, total)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleGetUser godoc
//
//	@Summary	Get a user profile.
//	@Tags		User
//	@Produce	json
//	@Param		id	path	int	true	"User ID"
//	@Success	200	{object}	recipe.UserDocument
//	@Failure	404	{object}	apiError.Error	"User not found"
//	@Router		/api/users/{id} [GET]
func HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	id, err := parseIDParam(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Getting user")
	row, err := env.Database.GetUser(ctx, database.GetUserParams{
		ID:     id,
		Viewer: viewerFromCtx(r),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "User does not exist", slog.Int64("user-id", id))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(recipe.NewUserDocument(row)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleGetMe godoc
//
//	@Summary	Get the authenticated user's profile.
//	@Tags		User
//	@Produce	json
//	@Success	200	{object}	recipe.UserDocument
//	@Security	AccessTokenCookie
//	@Router		/api/users/me [GET]
func HandleGetMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Getting user")
	row, err := env.Database.GetUser(ctx, database.GetUserParams{
		ID:     userID,
		Viewer: pgtype.Int8{Int64: userID, Valid: true},
	})
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "User does not exist", slog.Int64("user-id", userID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(recipe.NewUserDocument(row)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleListSubscriptions godoc
//
//	@Summary	List the users the authenticated user follows, with their recipes.
//	@Tags		User
//	@Produce	json
//	@Success	200	{object}	pagination.Envelope[recipe.UserWithRecipesDocument]
//	@Security	AccessTokenCookie
//	@Router		/api/users/subscriptions [GET]
func HandleListSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	page, err := pagination.ParseParams(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse pagination params", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Listing subscriptions")
	followed, err := env.Database.ListSubscriptions(ctx, database.ListSubscriptionsParams{
		UserID: userID,
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list subscriptions", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	total, err := env.Database.CountSubscriptions(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to count subscriptions", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Load every followed user's recipes in one batch.
	docs := make([]recipe.UserWithRecipesDocument, 0, len(followed))
	if len(followed) > 0 {
		authorIDs := make([]int64, len(followed))
		for i, u := range followed {
			authorIDs[i] = u.ID
		}
		env.Logger.DebugContext(ctx, "Loading recipes for followed users")
		briefs, err := env.Database.ListRecipeBriefsByAuthors(ctx, authorIDs)
		if err != nil {
			env.Logger.ErrorContext(ctx, "Failed to list recipes for followed users", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
		byAuthor := make(map[int64][]recipe.BriefRecipeDocument, len(followed))
		for _, b := range briefs {
			byAuthor[b.Author] = append(byAuthor[b.Author], recipe.BriefRecipeDocument{
				ID:          b.ID,
				Name:        b.Name,
				Image:       env.FileStore.FileURL(b.Image),
				CookingTime: b.CookingTime,
			})
		}
		for _, u := range followed {
			recipes := byAuthor[u.ID]
			if recipes == nil {
				recipes = []recipe.BriefRecipeDocument{}
			}
			docs = append(docs, recipe.UserWithRecipesDocument{
				UserDocument: recipe.NewUserDocument(u),
				Recipes:      recipes,
				RecipesCount: len(recipes),
			})
		}
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pagination.NewEnvelope(docs, r.URL.Path, page, total)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleSubscribe godoc
//
//	@Summary	Subscribe to a user.
//	@Tags		User
//	@Param		id	path	int	true	"User ID to follow"
//	@Success	201	{object}	recipe.UserDocument
//	@Failure	400	{object}	apiError.Error	"Self-subscription or already subscribed"
//	@Failure	404	{object}	apiError.Error	"User not found"
//	@Security	AccessTokenCookie
//	@Router		/api/users/{id}/subscribe [POST]
func HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	followedID, err := parseIDParam(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	if followedID == userID {
		env.Logger.ErrorContext(ctx, "User attempted to subscribe to themselves")
		_ = apiError.EncodeError(w, apiError.SelfSubscription, "cannot subscribe to yourself", requestID)
		return
	}

	// Verify the target exists before inserting.
	env.Logger.DebugContext(ctx, "Checking followed user exists")
	if _, err := env.Database.GetUser(ctx, database.GetUserParams{ID: followedID}); errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "User does not exist", slog.Int64("followed-id", followedID))
		_ = apiError.EncodeError(w, apiError.UserNotFound, "user not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to get user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Creating subscription")
	err = env.Database.CreateSubscription(ctx, database.SubscriptionParams{
		UserID:         userID,
		FollowedUserID: followedID,
	})
	if database.IsUniqueViolation(err, "unique_subscription") {
		env.Logger.ErrorContext(ctx, "Subscription already exists", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.AlreadySubscribed, "already subscribed", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create subscription", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Re-read so the response carries is_subscribed=true.
	row, err := env.Database.GetUser(ctx, database.GetUserParams{
		ID:     followedID,
		Viewer: pgtype.Int8{Int64: userID, Valid: true},
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to re-read followed user", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(recipe.NewUserDocument(row)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleUnsubscribe godoc
//
//	@Summary	Unsubscribe from a user.
//	@Tags		User
//	@Param		id	path	int	true	"User ID to unfollow"
//	@Success	204	"Unsubscribed"
//	@Failure	400	{object}	apiError.Error	"Not subscribed"
//	@Security	AccessTokenCookie
//	@Router		/api/users/{id}/subscribe [DELETE]
func HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	followedID, err := parseIDParam(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse user id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid user id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Deleting subscription")
	rows, err := env.Database.DeleteSubscription(ctx, database.SubscriptionParams{
		UserID:         userID,
		FollowedUserID: followedID,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to delete subscription", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if rows == 0 {
		env.Logger.ErrorContext(ctx, "Subscription does not exist", slog.Int64("followed-id", followedID))
		_ = apiError.EncodeError(w, apiError.NotSubscribed, "not subscribed", requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
