package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	CheckUsersTableExists(ctx context.Context) (bool, error)
	CountRecipes(ctx context.Context, arg ListRecipesParams) (int64, error)
	CountSubscriptions(ctx context.Context, userID int64) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CreateAmount(ctx context.Context, arg AmountParams) error
	CreateCartItem(ctx context.Context, arg CartItemParams) error
	CreateFavorite(ctx context.Context, arg FavoriteParams) error
	CreateIngredient(ctx context.Context, arg CreateIngredientParams) (Ingredient, error)
	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (int64, error)
	CreateRecipeTag(ctx context.Context, arg RecipeTagParams) error
	CreateSubscription(ctx context.Context, arg SubscriptionParams) error
	CreateTag(ctx context.Context, arg CreateTagParams) (Tag, error)
	CreateUser(ctx context.Context, arg CreateUserParams) (int64, error)
	DeleteAmountsNotIn(ctx context.Context, arg DeleteAmountsNotInParams) (int64, error)
	DeleteCartItem(ctx context.Context, arg CartItemParams) (int64, error)
	DeleteFavorite(ctx context.Context, arg FavoriteParams) (int64, error)
	DeleteRecipe(ctx context.Context, id int64) (int64, error)
	DeleteRecipeTagsNotIn(ctx context.Context, arg DeleteRecipeTagsNotInParams) (int64, error)
	DeleteSubscription(ctx context.Context, arg SubscriptionParams) (int64, error)
	GetAdminCount(ctx context.Context) (int64, error)
	GetIngredient(ctx context.Context, id int64) (Ingredient, error)
	GetRecipe(ctx context.Context, arg GetRecipeParams) (ListRecipesRow, error)
	GetRecipeBrief(ctx context.Context, id int64) (RecipeBriefRow, error)
	GetRecipeOwner(ctx context.Context, id int64) (int64, error)
	GetShoppingCartTotals(ctx context.Context, userID int64) ([]ShoppingCartTotalRow, error)
	GetTag(ctx context.Context, id int64) (Tag, error)
	GetUser(ctx context.Context, arg GetUserParams) (GetUserRow, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListAmounts(ctx context.Context, recipeID int64) ([]Amount, error)
	ListIngredients(ctx context.Context, namePrefix pgtype.Text) ([]Ingredient, error)
	ListIngredientsByIDs(ctx context.Context, ids []int64) ([]Ingredient, error)
	ListRecipeBriefsByAuthors(ctx context.Context, authorIDs []int64) ([]AuthorRecipeBriefRow, error)
	ListRecipeIngredients(ctx context.Context, recipeIDs []int64) ([]RecipeIngredientRow, error)
	ListRecipeTagIDs(ctx context.Context, recipeID int64) ([]int64, error)
	ListRecipeTags(ctx context.Context, recipeIDs []int64) ([]RecipeTagRow, error)
	ListRecipes(ctx context.Context, arg ListRecipesParams) ([]ListRecipesRow, error)
	ListSubscriptions(ctx context.Context, arg ListSubscriptionsParams) ([]GetUserRow, error)
	ListTags(ctx context.Context) ([]Tag, error)
	ListTagsByIDs(ctx context.Context, ids []int64) ([]Tag, error)
	ListUsers(ctx context.Context, arg ListUsersParams) ([]GetUserRow, error)
	UpdateAmount(ctx context.Context, arg AmountParams) error
	UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) error
}

var _ Querier = (*Queries)(nil)
