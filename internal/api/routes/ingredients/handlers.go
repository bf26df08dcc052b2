// Package ingredients contains handlers for the ingredient resource.
package ingredients

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
	"github.com/plateful/plateful/internal/api/requestid"
	"github.com/plateful/plateful/internal/api/validate"
	"github.com/plateful/plateful/internal/database"
	"github.com/plateful/plateful/internal/env"
	mJson "github.com/plateful/plateful/internal/json"
	"github.com/plateful/plateful/internal/recipe"
)

// HandleListIngredients godoc
//
//	@Summary	List ingredients, optionally filtered by name prefix.
//	@Tags		Ingredient
//	@Produce	json
//	@Param		name	query	string	false	"Name prefix"
//	@Success	200	{array}	recipe.IngredientDocument
//	@Router		/api/ingredients [GET]
func HandleListIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	var namePrefix pgtype.Text
	if name := r.URL.Query().Get("name"); name != "" {
		namePrefix = pgtype.Text{String: name, Valid: true}
	}

	env.Logger.DebugContext(ctx, "Listing ingredients")
	rows, err := env.Database.ListIngredients(ctx, namePrefix)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list ingredients", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	docs := make([]recipe.IngredientDocument, 0, len(rows))
	for _, i := range rows {
		docs = append(docs, recipe.NewIngredientDocument(i))
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(docs); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleGetIngredient godoc
//
//	@Summary	Get an ingredient.
//	@Tags		Ingredient
//	@Produce	json
//	@Param		id	path	int	true	"Ingredient ID"
//	@Success	200	{object}	recipe.IngredientDocument
//	@Failure	404	{object}	apiError.Error	"Ingredient not found"
//	@Router		/api/ingredients/{id} [GET]
func HandleGetIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse ingredient id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid ingredient id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Getting ingredient")
	ingredient, err := env.Database.GetIngredient(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Ingredient does not exist", slog.Int64("ingredient-id", id))
		_ = apiError.EncodeError(w, apiError.IngredientNotFound, "ingredient not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to get ingredient", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(recipe.NewIngredientDocument(ingredient)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleCreateIngredient godoc
//
//	@Summary	Create an ingredient. Admin only.
//	@Tags		Ingredient
//	@Accept		json
//	@Param		request	body	CreateIngredientRequest	true	"Create Ingredient Request"
//	@Success	201	{object}	recipe.IngredientDocument
//	@Failure	409	{object}	apiError.Error	"Name already taken"
//	@Security	AccessTokenCookie
//	@Router		/api/ingredients [POST]
func HandleCreateIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	// Decode JSON
	var request CreateIngredientRequest
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

	env.Logger.DebugContext(ctx, "Creating ingredient")
	ingredient, err := env.Database.CreateIngredient(ctx, database.CreateIngredientParams{
		Name:            request.Name,
		MeasurementUnit: request.MeasurementUnit,
	})
	if database.IsUniqueViolation(err, "ingredients_name_key") {
		env.Logger.ErrorContext(ctx, "Ingredient already exists", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.IngredientConflict, "ingredient name already in use", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create ingredient", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(recipe.NewIngredientDocument(ingredient)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
