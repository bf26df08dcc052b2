// Package database is the persistence layer: sqlc-style queries over
// pgx plus the transactional recipe workflows built on top of them.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/plateful/plateful/internal/sql"
)

type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store is the full surface handlers consume: the row-level Querier
// plus the multi-statement recipe operations.
type Store interface {
	Querier

	ListRecipesWithRelations(ctx context.Context, arg ListRecipesParams) ([]RecipeWithRelations, error)
	GetRecipeWithRelations(ctx context.Context, arg GetRecipeParams) (RecipeWithRelations, error)
	CreateRecipeWithRelations(ctx context.Context, arg CreateRecipeWithRelationsParams) (int64, error)
	UpdateRecipeWithRelations(ctx context.Context, arg UpdateRecipeWithRelationsParams) error
}

type Database struct {
	Querier

	Pool    Pool
	queries *Queries
}

var _ Store = (*Database)(nil)

func NewDatabase(pool *pgxpool.Pool) *Database {
	q := New(pool)
	return &Database{
		Querier: q,
		Pool:    pool,
		queries: q,
	}
}

// EnsureSchema applies the embedded schema when the database has not
// been initialized yet.
func (d *Database) EnsureSchema(ctx context.Context) error {
	exists, err := d.CheckUsersTableExists(ctx)
	if err != nil {
		return fmt.Errorf("ensuring schema exists: %w", err)
	}
	if exists {
		return nil
	}
	if _, err := d.queries.db.Exec(ctx, sql.Schema()); err != nil {
		return fmt.Errorf("applying database schema: %w", err)
	}
	return nil
}

// IngredientWithAmount is an ingredient's own fields plus the
// per-recipe amount.
type IngredientWithAmount struct {
	ID              int64
	Name            string
	MeasurementUnit string
	Amount          int16
}

// RecipeWithRelations is the fully resolved read shape: the recipe row
// with author and viewer flags, plus its complete tag and
// ingredient-amount sets. No further round trips are needed to render
// it.
type RecipeWithRelations struct {
	Recipe      ListRecipesRow
	Tags        []Tag
	Ingredients []IngredientWithAmount
}

// ListRecipesWithRelations resolves the matching recipes and their
// relations in three queries total: one filtered recipe select and two
// batched relation loads keyed by recipe id.
func (d *Database) ListRecipesWithRelations(ctx context.Context, arg ListRecipesParams) ([]RecipeWithRelations, error) {
	recipes, err := d.ListRecipes(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	if len(recipes) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	tags, ingredients, err := d.loadRelations(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]RecipeWithRelations, len(recipes))
	for i, r := range recipes {
		items[i] = RecipeWithRelations{
			Recipe:      r,
			Tags:        tags[r.ID],
			Ingredients: ingredients[r.ID],
		}
	}
	return items, nil
}

// GetRecipeWithRelations is the single-recipe variant of
// ListRecipesWithRelations. Absence surfaces as pgx.ErrNoRows.
func (d *Database) GetRecipeWithRelations(ctx context.Context, arg GetRecipeParams) (RecipeWithRelations, error) {
	recipe, err := d.GetRecipe(ctx, arg)
	if err != nil {
		return RecipeWithRelations{}, err
	}
	tags, ingredients, err := d.loadRelations(ctx, []int64{recipe.ID})
	if err != nil {
		return RecipeWithRelations{}, err
	}
	return RecipeWithRelations{
		Recipe:      recipe,
		Tags:        tags[recipe.ID],
		Ingredients: ingredients[recipe.ID],
	}, nil
}

func (d *Database) loadRelations(ctx context.Context, ids []int64) (map[int64][]Tag, map[int64][]IngredientWithAmount, error) {
	tagRows, err := d.ListRecipeTags(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("loading recipe tags: %w", err)
	}
	tags := make(map[int64][]Tag, len(ids))
	for _, t := range tagRows {
		tags[t.RecipeID] = append(tags[t.RecipeID], Tag{
			ID:    t.ID,
			Name:  t.Name,
			Slug:  t.Slug,
			Color: t.Color,
		})
	}

	ingredientRows, err := d.ListRecipeIngredients(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("loading recipe ingredients: %w", err)
	}
	ingredients := make(map[int64][]IngredientWithAmount, len(ids))
	for _, r := range ingredientRows {
		ingredients[r.RecipeID] = append(ingredients[r.RecipeID], IngredientWithAmount{
			ID:              r.ID,
			Name:            r.Name,
			MeasurementUnit: r.MeasurementUnit,
			Amount:          r.Amount,
		})
	}
	return tags, ingredients, nil
}
