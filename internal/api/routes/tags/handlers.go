// Package tags contains handlers for the tag resource.
package tags

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	apiError "github.com/plateful/plateful/internal/api/error"
	"github.com/plateful/plateful/internal/api/requestid"
	"github.com/plateful/plateful/internal/api/validate"
	"github.com/plateful/plateful/internal/database"
	"github.com/plateful/plateful/internal/env"
	mJson "github.com/plateful/plateful/internal/json"
	"github.com/plateful/plateful/internal/recipe"
)

// HandleListTags godoc
//
//	@Summary	List all tags.
//	@Tags		Tag
//	@Produce	json
//	@Success	200	{array}	recipe.TagDocument
//	@Router		/api/tags [GET]
func HandleListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	env.Logger.DebugContext(ctx, "Listing tags")
	rows, err := env.Database.ListTags(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list tags", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	docs := make([]recipe.TagDocument, 0, len(rows))
	for _, t := range rows {
		docs = append(docs, recipe.NewTagDocument(t))
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(docs); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleGetTag godoc
//
//	@Summary	Get a tag.
//	@Tags		Tag
//	@Produce	json
//	@Param		id	path	int	true	"Tag ID"
//	@Success	200	{object}	recipe.TagDocument
//	@Failure	404	{object}	apiError.Error	"Tag not found"
//	@Router		/api/tags/{id} [GET]
func HandleGetTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse tag id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid tag id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Getting tag")
	tag, err := env.Database.GetTag(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Tag does not exist", slog.Int64("tag-id", id))
		_ = apiError.EncodeError(w, apiError.TagNotFound, "tag not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to get tag", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(recipe.NewTagDocument(tag)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleCreateTag godoc
//
//	@Summary	Create a tag. Admin only.
//	@Tags		Tag
//	@Accept		json
//	@Param		request	body	CreateTagRequest	true	"Create Tag Request"
//	@Success	201	{object}	recipe.TagDocument
//	@Failure	409	{object}	apiError.Error	"Name, slug or color already taken"
//	@Security	AccessTokenCookie
//	@Router		/api/tags [POST]
func HandleCreateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Decode JSON
	var request CreateTagRequest
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

	env.Logger.DebugContext(ctx, "Creating tag")
	tag, err := env.Database.CreateTag(ctx, database.CreateTagParams{
		Name:  request.Name,
		Slug:  request.Slug,
		Color: request.Color,
	})
	if database.IsUniqueViolation(err, "") {
		env.Logger.ErrorContext(ctx, "Tag already exists", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.TagConflict, "tag name, slug or color already in use", requestID)
		return
	} else if database.IsCheckViolation(err, "") {
		// Backstop for values the request validator and the schema
		// CHECK constraints disagree on.
		env.Logger.ErrorContext(ctx, "Tag violates a check constraint", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid tag field", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create tag", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(recipe.NewTagDocument(tag)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
