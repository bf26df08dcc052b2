package database

import "context"

const listAmounts = `
SELECT recipe_id, ingredient_id, amount FROM amounts WHERE recipe_id = $1
`

func (q *Queries) ListAmounts(ctx context.Context, recipeID int64) ([]Amount, error) {
	rows, err := q.db.Query(ctx, listAmounts, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Amount
	for rows.Next() {
		var i Amount
		if err := rows.Scan(&i.RecipeID, &i.IngredientID, &i.Amount); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createAmount = `
INSERT INTO amounts (recipe_id, ingredient_id, amount) VALUES ($1, $2, $3)
`

type AmountParams struct {
	RecipeID     int64
	IngredientID int64
	Amount       int16
}

func (q *Queries) CreateAmount(ctx context.Context, arg AmountParams) error {
	_, err := q.db.Exec(ctx, createAmount, arg.RecipeID, arg.IngredientID, arg.Amount)
	return err
}

const updateAmount = `
UPDATE amounts SET amount = $3 WHERE recipe_id = $1 AND ingredient_id = $2
`

func (q *Queries) UpdateAmount(ctx context.Context, arg AmountParams) error {
	_, err := q.db.Exec(ctx, updateAmount, arg.RecipeID, arg.IngredientID, arg.Amount)
	return err
}

const deleteAmountsNotIn = `
DELETE FROM amounts
WHERE recipe_id = $1 AND ingredient_id != ALL($2::bigint[])
`

type DeleteAmountsNotInParams struct {
	RecipeID      int64
	IngredientIDs []int64
}

// DeleteAmountsNotIn removes the recipe's orphaned ingredient
// associations — every amount row whose ingredient is no longer in the
// desired set. An empty set removes all of the recipe's amounts.
func (q *Queries) DeleteAmountsNotIn(ctx context.Context, arg DeleteAmountsNotInParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteAmountsNotIn, arg.RecipeID, arg.IngredientIDs)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listRecipeTagIDs = `
SELECT tag_id FROM recipe_tag_association WHERE recipe_id = $1
`

func (q *Queries) ListRecipeTagIDs(ctx context.Context, recipeID int64) ([]int64, error) {
	rows, err := q.db.Query(ctx, listRecipeTagIDs, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createRecipeTag = `
INSERT INTO recipe_tag_association (recipe_id, tag_id) VALUES ($1, $2)
`

type RecipeTagParams struct {
	RecipeID int64
	TagID    int64
}

func (q *Queries) CreateRecipeTag(ctx context.Context, arg RecipeTagParams) error {
	_, err := q.db.Exec(ctx, createRecipeTag, arg.RecipeID, arg.TagID)
	return err
}

const deleteRecipeTagsNotIn = `
DELETE FROM recipe_tag_association
WHERE recipe_id = $1 AND tag_id != ALL($2::bigint[])
`

type DeleteRecipeTagsNotInParams struct {
	RecipeID int64
	TagIDs   []int64
}

func (q *Queries) DeleteRecipeTagsNotIn(ctx context.Context, arg DeleteRecipeTagsNotInParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteRecipeTagsNotIn, arg.RecipeID, arg.TagIDs)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
