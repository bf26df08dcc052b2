// Package recipes contains handlers for the recipe resource.
package recipes

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
	"github.com/plateful/plateful/internal/database"
	"github.com/plateful/plateful/internal/env"
	"github.com/plateful/plateful/internal/form"
	mJson "github.com/plateful/plateful/internal/json"
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

func toIngredientAmounts(inputs []IngredientAmountInput) []database.IngredientAmount {
	out := make([]database.IngredientAmount, len(inputs))
	for i, in := range inputs {
		out[i] = database.IngredientAmount{ID: in.ID, Amount: in.Amount}
	}
	return out
}

// encodeReconcileError maps a reconciliation failure onto the matching
// not-found code, falling back to an internal error.
func encodeReconcileError(w http.ResponseWriter, err error, requestID string) {
	if nf := database.AsNotFound(err); nf != nil {
		switch nf.Entity {
		case "ingredient":
			_ = apiError.EncodeError(w, apiError.IngredientNotFound, nf.Error(), requestID)
			return
		case "tag":
			_ = apiError.EncodeError(w, apiError.TagNotFound, nf.Error(), requestID)
			return
		}
	}
	_ = apiError.EncodeInternalError(w, requestID)
}

// parseListFilters reads the recipe list query parameters.
func parseListFilters(r *http.Request, viewer pgtype.Int8, page pagination.Params) (database.ListRecipesParams, error) {
	params := database.ListRecipesParams{
		Viewer:        viewer,
		TagSlugs:      r.URL.Query()["tags"],
		FavoritedOnly: r.URL.Query().Get("is_favorited") == "1",
		InCartOnly:    r.URL.Query().Get("is_in_shopping_cart") == "1",
		Limit:         page.Limit,
		Offset:        page.Offset(),
	}
	if raw := r.URL.Query().Get("author"); raw != "" {
		author, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return params, errors.New("invalid author id")
		}
		params.AuthorID = pgtype.Int8{Int64: author, Valid: true}
	}
	return params, nil
}

// HandleListRecipes godoc
//
//	@Summary	List recipes with filters and pagination.
//	@Tags		Recipes
//	@Produce	json
//	@Param		author				query	int		false	"Author ID"
//	@Param		tags				query	[]string	false	"Tag slugs (any match)"
//	@Param		is_favorited		query	string	false	"1 restricts to the viewer's favorites"
//	@Param		is_in_shopping_cart	query	string	false	"1 restricts to the viewer's cart"
//	@Success	200	{object}	pagination.Envelope[recipe.RecipeDocument]
//	@Router		/api/recipes [GET]
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	page, err := pagination.ParseParams(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse pagination params", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	params, err := parseListFilters(r, viewerFromCtx(r), page)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse list filters", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, err.Error(), requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Listing recipes")
	rels, err := env.Database.ListRecipesWithRelations(ctx, params)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to list recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	total, err := env.Database.CountRecipes(ctx, params)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to count recipes", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Assembling recipe documents")
	docs, err := recipe.FromRelationsList(rels, env.FileStore.FileURL)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to assemble recipe documents", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pagination.NewEnvelope(docs, r.URL.Path, page, total)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleGetRecipe godoc
//
//	@Summary	Get a recipe's full detail view.
//	@Tags		Recipes
//	@Produce	json
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	200	{object}	recipe.RecipeDocument
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Router		/api/recipes/{id} [GET]
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)

	id, err := parseIDParam(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Getting recipe")
	rel, err := env.Database.GetRecipeWithRelations(ctx, database.GetRecipeParams{
		ID:     id,
		Viewer: viewerFromCtx(r),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Recipe does not exist", slog.Int64("recipe-id", id))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	doc, err := recipe.FromRelations(rel, env.FileStore.FileURL)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to assemble recipe document", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleCreateRecipe godoc
//
//	@Summary	Create a recipe with its ingredient and tag sets.
//	@Tags		Recipes
//	@Accept		json
//	@Param		request	body	CreateRecipeRequest	true	"Create Recipe Request"
//	@Success	201	{object}	recipe.RecipeDocument
//	@Failure	404	{object}	apiError.Error	"Referenced ingredient or tag not found"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes [POST]
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Decode JSON
	var request CreateRecipeRequest
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

	// Decode and store the image
	env.Logger.DebugContext(ctx, "Decoding recipe image")
	file, err := form.DecodeImage(ctx, env.HTTP, request.Image)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode recipe image", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid image", requestID)
		return
	}
	imageKey, _, err := env.FileStore.WriteRecipeImage(ctx, file.Suffix, file.Data)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to store recipe image", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Create the recipe and its associations in one transaction
	env.Logger.DebugContext(ctx, "Creating recipe")
	recipeID, err := env.Database.CreateRecipeWithRelations(ctx, database.CreateRecipeWithRelationsParams{
		Name:        request.Name,
		Text:        request.Text,
		Author:      userID,
		CookingTime: request.CookingTime,
		Image:       imageKey,
		Ingredients: toIngredientAmounts(request.Ingredients),
		TagIDs:      request.Tags,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create recipe", slog.Any("error", err))
		encodeReconcileError(w, err, requestID)
		return
	}

	// Read the committed state back for the response
	env.Logger.DebugContext(ctx, "Reading created recipe")
	rel, err := env.Database.GetRecipeWithRelations(ctx, database.GetRecipeParams{
		ID:     recipeID,
		Viewer: pgtype.Int8{Int64: userID, Valid: true},
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to read created recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	doc, err := recipe.FromRelations(rel, env.FileStore.FileURL)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to assemble recipe document", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// requireOwner loads the recipe's author and verifies it matches the
// authenticated user. It writes the error response itself and reports
// whether the caller may proceed.
func requireOwner(w http.ResponseWriter, r *http.Request, recipeID, userID int64, requestID string) bool {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	owner, err := env.Database.GetRecipeOwner(ctx, recipeID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Recipe does not exist", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return false
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to get recipe owner", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return false
	}
	if owner != userID {
		env.Logger.ErrorContext(ctx, "User does not own recipe",
			slog.Int64("recipe-id", recipeID),
			slog.Int64("owner-id", owner))
		_ = apiError.EncodeError(w, apiError.RecipeNotOwned, "recipe not owned", requestID)
		return false
	}
	return true
}

// HandleUpdateRecipe godoc
//
//	@Summary	Update a recipe, reconciling its ingredient and tag sets.
//	@Tags		Recipes
//	@Accept		json
//	@Param		id		path	int					true	"Recipe ID"
//	@Param		request	body	UpdateRecipeRequest	true	"Update Recipe Request"
//	@Success	200	{object}	recipe.RecipeDocument
//	@Failure	403	{object}	apiError.Error	"Recipe not owned"
//	@Failure	404	{object}	apiError.Error	"Recipe, ingredient or tag not found"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{id} [PATCH]
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	recipeID, err := parseIDParam(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	// Decode JSON
	var request UpdateRecipeRequest
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

	env.Logger.DebugContext(ctx, "Checking recipe ownership")
	if !requireOwner(w, r, recipeID, userID, requestID) {
		return
	}

	// Keep the stored image unless a new one was provided.
	env.Logger.DebugContext(ctx, "Resolving recipe image")
	brief, err := env.Database.GetRecipeBrief(ctx, recipeID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	imageKey := brief.Image
	if request.Image != "" {
		file, err := form.DecodeImage(ctx, env.HTTP, request.Image)
		if err != nil {
			env.Logger.ErrorContext(ctx, "Failed to decode recipe image", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.BadRequest, "invalid image", requestID)
			return
		}
		imageKey, _, err = env.FileStore.WriteRecipeImage(ctx, file.Suffix, file.Data)
		if err != nil {
			env.Logger.ErrorContext(ctx, "Failed to store recipe image", slog.Any("error", err))
			_ = apiError.EncodeInternalError(w, requestID)
			return
		}
	}

	// Update the recipe and reconcile its associations in one transaction
	env.Logger.DebugContext(ctx, "Updating recipe")
	err = env.Database.UpdateRecipeWithRelations(ctx, database.UpdateRecipeWithRelationsParams{
		ID:          recipeID,
		Name:        request.Name,
		Text:        request.Text,
		CookingTime: request.CookingTime,
		Image:       imageKey,
		Ingredients: toIngredientAmounts(request.Ingredients),
		TagIDs:      request.Tags,
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to update recipe", slog.Any("error", err))
		encodeReconcileError(w, err, requestID)
		return
	}

	// Read the committed state back for the response
	env.Logger.DebugContext(ctx, "Reading updated recipe")
	rel, err := env.Database.GetRecipeWithRelations(ctx, database.GetRecipeParams{
		ID:     recipeID,
		Viewer: pgtype.Int8{Int64: userID, Valid: true},
	})
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to read updated recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	doc, err := recipe.FromRelations(rel, env.FileStore.FileURL)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to assemble recipe document", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// HandleDeleteRecipe godoc
//
//	@Summary	Delete a recipe.
//	@Tags		Recipes
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204	"Deleted"
//	@Failure	403	{object}	apiError.Error	"Recipe not owned"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{id} [DELETE]
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	recipeID, err := parseIDParam(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Checking recipe ownership")
	if !requireOwner(w, r, recipeID, userID, requestID) {
		return
	}

	env.Logger.DebugContext(ctx, "Deleting recipe")
	if _, err := env.Database.DeleteRecipe(ctx, recipeID); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to delete recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// membership describes one of the user-recipe membership sets so the
// add/remove handlers can share their logic.
type membership struct {
	create       func(env *env.Env, r *http.Request, userID, recipeID int64) error
	remove       func(env *env.Env, r *http.Request, userID, recipeID int64) (int64, error)
	conflictCode apiError.ErrorCode
	missingCode  apiError.ErrorCode
}

var favoriteMembership = membership{
	create: func(env *env.Env, r *http.Request, userID, recipeID int64) error {
		return env.Database.CreateFavorite(r.Context(), database.FavoriteParams{UserID: userID, RecipeID: recipeID})
	},
	remove: func(env *env.Env, r *http.Request, userID, recipeID int64) (int64, error) {
		return env.Database.DeleteFavorite(r.Context(), database.FavoriteParams{UserID: userID, RecipeID: recipeID})
	},
	conflictCode: apiError.AlreadyFavorited,
	missingCode:  apiError.NotFavorited,
}

var cartMembership = membership{
	create: func(env *env.Env, r *http.Request, userID, recipeID int64) error {
		return env.Database.CreateCartItem(r.Context(), database.CartItemParams{UserID: userID, RecipeID: recipeID})
	},
	remove: func(env *env.Env, r *http.Request, userID, recipeID int64) (int64, error) {
		return env.Database.DeleteCartItem(r.Context(), database.CartItemParams{UserID: userID, RecipeID: recipeID})
	},
	conflictCode: apiError.AlreadyInShoppingCart,
	missingCode:  apiError.NotInShoppingCart,
}

func handleAddMembership(w http.ResponseWriter, r *http.Request, m membership) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	recipeID, err := parseIDParam(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	// Verify the recipe exists before inserting.
	env.Logger.DebugContext(ctx, "Getting recipe")
	brief, err := env.Database.GetRecipeBrief(ctx, recipeID)
	if errors.Is(err, pgx.ErrNoRows) {
		env.Logger.ErrorContext(ctx, "Recipe does not exist", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, apiError.RecipeNotFound, "recipe not found", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to get recipe", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Creating membership")
	err = m.create(env, r, userID, recipeID)
	if database.IsUniqueViolation(err, "") {
		env.Logger.ErrorContext(ctx, "Membership already exists", slog.Any("error", err))
		_ = apiError.EncodeError(w, m.conflictCode, m.conflictCode.String(), requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create membership", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(recipe.NewBriefRecipeDocument(brief, env.FileStore.FileURL)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

func handleRemoveMembership(w http.ResponseWriter, r *http.Request, m membership) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	recipeID, err := parseIDParam(r)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to parse recipe id", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid recipe id", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Deleting membership")
	rows, err := m.remove(env, r, userID, recipeID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to delete membership", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}
	if rows == 0 {
		env.Logger.ErrorContext(ctx, "Membership does not exist", slog.Int64("recipe-id", recipeID))
		_ = apiError.EncodeError(w, m.missingCode, m.missingCode.String(), requestID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleFavorite godoc
//
//	@Summary	Favorite a recipe.
//	@Tags		Recipes
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	201	{object}	recipe.BriefRecipeDocument
//	@Failure	400	{object}	apiError.Error	"Already favorited"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{id}/favorite [POST]
func HandleFavorite(w http.ResponseWriter, r *http.Request) {
	handleAddMembership(w, r, favoriteMembership)
}

// HandleUnfavorite godoc
//
//	@Summary	Remove a recipe from favorites.
//	@Tags		Recipes
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204	"Removed"
//	@Failure	400	{object}	apiError.Error	"Not favorited"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{id}/favorite [DELETE]
func HandleUnfavorite(w http.ResponseWriter, r *http.Request) {
	handleRemoveMembership(w, r, favoriteMembership)
}

// HandleAddToCart godoc
//
//	@Summary	Add a recipe to the shopping cart.
//	@Tags		Recipes
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	201	{object}	recipe.BriefRecipeDocument
//	@Failure	400	{object}	apiError.Error	"Already in cart"
//	@Failure	404	{object}	apiError.Error	"Recipe not found"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{id}/shopping_cart [POST]
func HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	handleAddMembership(w, r, cartMembership)
}

// HandleRemoveFromCart godoc
//
//	@Summary	Remove a recipe from the shopping cart.
//	@Tags		Recipes
//	@Param		id	path	int	true	"Recipe ID"
//	@Success	204	"Removed"
//	@Failure	400	{object}	apiError.Error	"Not in cart"
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/{id}/shopping_cart [DELETE]
func HandleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	handleRemoveMembership(w, r, cartMembership)
}

// HandleDownloadShoppingCart godoc
//
//	@Summary	Aggregate ingredient totals across the shopping cart.
//	@Tags		Recipes
//	@Produce	json
//	@Success	200	{array}	ShoppingCartItem
//	@Security	AccessTokenCookie
//	@Router		/api/recipes/download_shopping_cart [GET]
func HandleDownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := strconv.FormatUint(requestid.ExtractRequestID(ctx), 10)
	userID, err := token.UserIDFromCtx(ctx)
	if err != nil {
		env.Logger.ErrorContext(ctx, "failed to extract user id from context", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Aggregating shopping cart")
	totals, err := env.Database.GetShoppingCartTotals(ctx, userID)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to aggregate shopping cart", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	items := make([]ShoppingCartItem, 0, len(totals))
	for _, t := range totals {
		items = append(items, ShoppingCartItem{
			Name:            t.Name,
			MeasurementUnit: t.MeasurementUnit,
			Total:           t.Total,
		})
	}

	env.Logger.DebugContext(ctx, "Writing response")
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}
