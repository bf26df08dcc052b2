package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// ListRecipesParams selects the recipes visible to a viewer. Viewer is
// nullable: anonymous viewers always read false for both viewer-relative
// flags. TagSlugs is existential — a recipe matches when it carries at
// least one of the slugs. FavoritedOnly and InCartOnly restrict the
// result to the viewer's favorite/cart memberships.
type ListRecipesParams struct {
	Viewer        pgtype.Int8
	AuthorID      pgtype.Int8
	TagSlugs      []string
	FavoritedOnly bool
	InCartOnly    bool
	Limit         int32
	Offset        int32
}

type ListRecipesRow struct {
	ID                 int64
	Name               string
	Text               string
	PubDate            pgtype.Timestamptz
	CookingTime        int16
	Image              string
	AuthorID           int64
	AuthorEmail        string
	AuthorUsername     string
	AuthorFirstName    string
	AuthorLastName     string
	AuthorIsSubscribed bool
	IsFavorited        bool
	IsInShoppingCart   bool
}

// The per-viewer flags are correlated EXISTS checks, never joins: a join
// against favorite/shopping_cart would fan out one row per matching
// membership, while EXISTS yields exactly one flag pair per recipe.
const listRecipesColumns = `
SELECT r.id, r.name, r.text, r.pub_date, r.cooking_time, r.image,
       u.id, u.email, u.username, u.first_name, u.last_name,
       EXISTS(
           SELECT 1 FROM subscriptions s
           WHERE s.user_id = $1 AND s.followed_user_id = u.id
       ) AS author_is_subscribed,
       EXISTS(
           SELECT 1 FROM favorite f
           WHERE f.recipe_id = r.id AND f.user_id = $1
       ) AS is_favorited,
       EXISTS(
           SELECT 1 FROM shopping_cart sc
           WHERE sc.recipe_id = r.id AND sc.user_id = $1
       ) AS is_in_shopping_cart
`

const listRecipesFrom = `
FROM recipes r
JOIN users u ON u.id = r.author
`

// appendRecipeFilters translates the optional filters into WHERE
// predicates. $1 is always the viewer; later placeholders are numbered
// from the current length of args.
func appendRecipeFilters(arg ListRecipesParams, conds []string, args []interface{}) ([]string, []interface{}) {
	if arg.AuthorID.Valid {
		args = append(args, arg.AuthorID.Int64)
		conds = append(conds, fmt.Sprintf("r.author = $%d", len(args)))
	}
	if len(arg.TagSlugs) > 0 {
		args = append(args, arg.TagSlugs)
		conds = append(conds, fmt.Sprintf(`EXISTS(
            SELECT 1 FROM recipe_tag_association rta
            JOIN tags t ON t.id = rta.tag_id
            WHERE rta.recipe_id = r.id AND t.slug = ANY($%d::text[])
        )`, len(args)))
	}
	if arg.FavoritedOnly {
		conds = append(conds, `EXISTS(
            SELECT 1 FROM favorite ff
            WHERE ff.recipe_id = r.id AND ff.user_id = $1
        )`)
	}
	if arg.InCartOnly {
		conds = append(conds, `EXISTS(
            SELECT 1 FROM shopping_cart scf
            WHERE scf.recipe_id = r.id AND scf.user_id = $1
        )`)
	}
	return conds, args
}

// ListRecipes returns the recipes matching arg, newest first, each
// annotated with the viewer's favorite/cart flags and joined to its
// author. Unknown tag slugs simply match nothing.
func (q *Queries) ListRecipes(ctx context.Context, arg ListRecipesParams) ([]ListRecipesRow, error) {
	var sb strings.Builder
	sb.WriteString(listRecipesColumns)
	sb.WriteString(listRecipesFrom)

	args := []interface{}{arg.Viewer}
	conds, args := appendRecipeFilters(arg, nil, args)
	if len(conds) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
		sb.WriteString("\n")
	}

	args = append(args, arg.Limit)
	limitIdx := len(args)
	args = append(args, arg.Offset)
	fmt.Fprintf(&sb, "ORDER BY r.pub_date DESC, r.id DESC\nLIMIT $%d OFFSET $%d", limitIdx, limitIdx+1)

	rows, err := q.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListRecipesRow
	for rows.Next() {
		var i ListRecipesRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Text,
			&i.PubDate,
			&i.CookingTime,
			&i.Image,
			&i.AuthorID,
			&i.AuthorEmail,
			&i.AuthorUsername,
			&i.AuthorFirstName,
			&i.AuthorLastName,
			&i.AuthorIsSubscribed,
			&i.IsFavorited,
			&i.IsInShoppingCart,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// CountRecipes counts the recipes matching the same filters as
// ListRecipes, ignoring Limit/Offset.
func (q *Queries) CountRecipes(ctx context.Context, arg ListRecipesParams) (int64, error) {
	var sb strings.Builder
	sb.WriteString("SELECT count(*)\n")
	sb.WriteString(listRecipesFrom)

	args := []interface{}{arg.Viewer}
	conds, args := appendRecipeFilters(arg, nil, args)
	if len(conds) > 0 {
		sb.WriteString("WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	row := q.db.QueryRow(ctx, sb.String(), args...)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getRecipe = listRecipesColumns + listRecipesFrom + `WHERE r.id = $2`

type GetRecipeParams struct {
	ID     int64
	Viewer pgtype.Int8
}

// GetRecipe loads a single recipe with the same shape as ListRecipes.
// Absence surfaces as pgx.ErrNoRows.
func (q *Queries) GetRecipe(ctx context.Context, arg GetRecipeParams) (ListRecipesRow, error) {
	row := q.db.QueryRow(ctx, getRecipe, arg.Viewer, arg.ID)
	var i ListRecipesRow
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Text,
		&i.PubDate,
		&i.CookingTime,
		&i.Image,
		&i.AuthorID,
		&i.AuthorEmail,
		&i.AuthorUsername,
		&i.AuthorFirstName,
		&i.AuthorLastName,
		&i.AuthorIsSubscribed,
		&i.IsFavorited,
		&i.IsInShoppingCart,
	)
	return i, err
}

const listRecipeTags = `
SELECT rta.recipe_id, t.id, t.name, t.slug, t.color
FROM recipe_tag_association rta
JOIN tags t ON t.id = rta.tag_id
WHERE rta.recipe_id = ANY($1::bigint[])
ORDER BY rta.recipe_id, t.id
`

type RecipeTagRow struct {
	RecipeID int64
	ID       int64
	Name     string
	Slug     string
	Color    string
}

func (q *Queries) ListRecipeTags(ctx context.Context, recipeIDs []int64) ([]RecipeTagRow, error) {
	rows, err := q.db.Query(ctx, listRecipeTags, recipeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecipeTagRow
	for rows.Next() {
		var i RecipeTagRow
		if err := rows.Scan(&i.RecipeID, &i.ID, &i.Name, &i.Slug, &i.Color); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRecipeIngredients = `
SELECT a.recipe_id, i.id, i.name, i.measurement_unit, a.amount
FROM amounts a
JOIN ingredients i ON i.id = a.ingredient_id
WHERE a.recipe_id = ANY($1::bigint[])
ORDER BY a.recipe_id, i.id
`

type RecipeIngredientRow struct {
	RecipeID        int64
	ID              int64
	Name            string
	MeasurementUnit string
	Amount          int16
}

func (q *Queries) ListRecipeIngredients(ctx context.Context, recipeIDs []int64) ([]RecipeIngredientRow, error) {
	rows, err := q.db.Query(ctx, listRecipeIngredients, recipeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []RecipeIngredientRow
	for rows.Next() {
		var i RecipeIngredientRow
		if err := rows.Scan(&i.RecipeID, &i.ID, &i.Name, &i.MeasurementUnit, &i.Amount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createRecipe = `
INSERT INTO recipes (name, text, author, cooking_time, image)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

type CreateRecipeParams struct {
	Name        string
	Text        string
	Author      int64
	CookingTime int16
	Image       string
}

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (int64, error) {
	row := q.db.QueryRow(ctx, createRecipe,
		arg.Name,
		arg.Text,
		arg.Author,
		arg.CookingTime,
		arg.Image,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const updateRecipe = `
UPDATE recipes
SET name = $2, text = $3, cooking_time = $4, image = $5
WHERE id = $1
`

type UpdateRecipeParams struct {
	ID          int64
	Name        string
	Text        string
	CookingTime int16
	Image       string
}

func (q *Queries) UpdateRecipe(ctx context.Context, arg UpdateRecipeParams) error {
	_, err := q.db.Exec(ctx, updateRecipe,
		arg.ID,
		arg.Name,
		arg.Text,
		arg.CookingTime,
		arg.Image,
	)
	return err
}

const deleteRecipe = `
DELETE FROM recipes WHERE id = $1
`

// DeleteRecipe removes a recipe. Amounts, tag associations, favorite
// and shopping cart rows cascade with it.
func (q *Queries) DeleteRecipe(ctx context.Context, id int64) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteRecipe, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getRecipeOwner = `
SELECT author FROM recipes WHERE id = $1
`

func (q *Queries) GetRecipeOwner(ctx context.Context, id int64) (int64, error) {
	row := q.db.QueryRow(ctx, getRecipeOwner, id)
	var author int64
	err := row.Scan(&author)
	return author, err
}

const getRecipeBrief = `
SELECT id, name, image, cooking_time FROM recipes WHERE id = $1
`

type RecipeBriefRow struct {
	ID          int64
	Name        string
	Image       string
	CookingTime int16
}

func (q *Queries) GetRecipeBrief(ctx context.Context, id int64) (RecipeBriefRow, error) {
	row := q.db.QueryRow(ctx, getRecipeBrief, id)
	var i RecipeBriefRow
	err := row.Scan(&i.ID, &i.Name, &i.Image, &i.CookingTime)
	return i, err
}

const listRecipeBriefsByAuthors = `
SELECT author, id, name, image, cooking_time
FROM recipes
WHERE author = ANY($1::bigint[])
ORDER BY author, pub_date DESC, id DESC
`

type AuthorRecipeBriefRow struct {
	Author      int64
	ID          int64
	Name        string
	Image       string
	CookingTime int16
}

func (q *Queries) ListRecipeBriefsByAuthors(ctx context.Context, authorIDs []int64) ([]AuthorRecipeBriefRow, error) {
	rows, err := q.db.Query(ctx, listRecipeBriefsByAuthors, authorIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AuthorRecipeBriefRow
	for rows.Next() {
		var i AuthorRecipeBriefRow
		if err := rows.Scan(&i.Author, &i.ID, &i.Name, &i.Image, &i.CookingTime); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
