package database

import (
	"context"
	"fmt"
)

// IngredientAmount is a desired member of a recipe's ingredient set:
// the ingredient id plus the per-recipe amount.
type IngredientAmount struct {
	ID     int64
	Amount int16
}

// reconcileIngredients makes the recipe's persisted amount rows match
// desired exactly, writing only the deltas:
//
//  1. members already associated get their amount updated in place,
//  2. new members are verified against the ingredients table and
//     inserted — an unknown id fails with NotFoundError so the caller
//     can name it,
//  3. orphans (associated but no longer desired) are deleted in one
//     statement.
//
// Duplicate ids in desired collapse to the last occurrence; an empty
// desired set removes every association. Callers are expected to run
// this inside a transaction.
func reconcileIngredients(ctx context.Context, q Querier, recipeID int64, desired []IngredientAmount) error {
	desired = dedupeIngredients(desired)

	current, err := q.ListAmounts(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("loading current amounts: %w", err)
	}
	associated := make(map[int64]int16, len(current))
	for _, a := range current {
		associated[a.IngredientID] = a.Amount
	}

	var missing []int64
	for _, d := range desired {
		if _, ok := associated[d.ID]; !ok {
			missing = append(missing, d.ID)
		}
	}
	known := make(map[int64]bool, len(missing))
	if len(missing) > 0 {
		ingredients, err := q.ListIngredientsByIDs(ctx, missing)
		if err != nil {
			return fmt.Errorf("checking ingredients exist: %w", err)
		}
		for _, ing := range ingredients {
			known[ing.ID] = true
		}
	}

	keep := make([]int64, 0, len(desired))
	for _, d := range desired {
		keep = append(keep, d.ID)
		if amount, ok := associated[d.ID]; ok {
			if amount == d.Amount {
				continue
			}
			err := q.UpdateAmount(ctx, AmountParams{
				RecipeID:     recipeID,
				IngredientID: d.ID,
				Amount:       d.Amount,
			})
			if err != nil {
				return fmt.Errorf("updating amount for ingredient %d: %w", d.ID, err)
			}
			continue
		}
		if !known[d.ID] {
			return &NotFoundError{Entity: "ingredient", ID: d.ID}
		}
		err := q.CreateAmount(ctx, AmountParams{
			RecipeID:     recipeID,
			IngredientID: d.ID,
			Amount:       d.Amount,
		})
		if err != nil {
			return fmt.Errorf("creating amount for ingredient %d: %w", d.ID, err)
		}
		associated[d.ID] = d.Amount
	}

	if _, err := q.DeleteAmountsNotIn(ctx, DeleteAmountsNotInParams{
		RecipeID:      recipeID,
		IngredientIDs: keep,
	}); err != nil {
		return fmt.Errorf("deleting orphaned amounts: %w", err)
	}
	return nil
}

// reconcileTags is the payload-free analogue of reconcileIngredients:
// already-associated tags are no-ops, new tags are verified and
// inserted, orphans are deleted.
func reconcileTags(ctx context.Context, q Querier, recipeID int64, tagIDs []int64) error {
	tagIDs = dedupeIDs(tagIDs)

	current, err := q.ListRecipeTagIDs(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("loading current tags: %w", err)
	}
	associated := make(map[int64]bool, len(current))
	for _, id := range current {
		associated[id] = true
	}

	var missing []int64
	for _, id := range tagIDs {
		if !associated[id] {
			missing = append(missing, id)
		}
	}
	known := make(map[int64]bool, len(missing))
	if len(missing) > 0 {
		tags, err := q.ListTagsByIDs(ctx, missing)
		if err != nil {
			return fmt.Errorf("checking tags exist: %w", err)
		}
		for _, t := range tags {
			known[t.ID] = true
		}
	}

	for _, id := range tagIDs {
		if associated[id] {
			continue
		}
		if !known[id] {
			return &NotFoundError{Entity: "tag", ID: id}
		}
		if err := q.CreateRecipeTag(ctx, RecipeTagParams{RecipeID: recipeID, TagID: id}); err != nil {
			return fmt.Errorf("creating tag association %d: %w", id, err)
		}
		associated[id] = true
	}

	if _, err := q.DeleteRecipeTagsNotIn(ctx, DeleteRecipeTagsNotInParams{
		RecipeID: recipeID,
		TagIDs:   tagIDs,
	}); err != nil {
		return fmt.Errorf("deleting orphaned tag associations: %w", err)
	}
	return nil
}

// dedupeIngredients collapses repeated ingredient ids, keeping the last
// amount seen so a duplicate id in the payload acts as an idempotent
// re-update rather than a constraint violation.
func dedupeIngredients(desired []IngredientAmount) []IngredientAmount {
	seen := make(map[int64]int, len(desired))
	out := desired[:0:0]
	for _, d := range desired {
		if idx, ok := seen[d.ID]; ok {
			out[idx] = d
			continue
		}
		seen[d.ID] = len(out)
		out = append(out, d)
	}
	return out
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
