package database

import (
	"context"
	"errors"
	"fmt"
)

// mutationState tracks the recipe mutation lifecycle. Transitions only
// move forward; a failure at any point rolls the transaction back so
// the request leaves no trace.
type mutationState int

const (
	stateDraft mutationState = iota
	statePersistedScalar
	stateFullyReconciled
	stateCommitted
)

func (s mutationState) String() string {
	switch s {
	case stateDraft:
		return "draft"
	case statePersistedScalar:
		return "persisted-scalar"
	case stateFullyReconciled:
		return "fully-reconciled"
	case stateCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

type CreateRecipeWithRelationsParams struct {
	Name        string
	Text        string
	Author      int64
	CookingTime int16
	Image       string
	Ingredients []IngredientAmount
	TagIDs      []int64
}

// CreateRecipeWithRelations persists a new recipe and its full
// ingredient and tag sets in one transaction. Either the recipe exists
// with exactly the requested associations, or nothing was written.
func (d *Database) CreateRecipeWithRelations(ctx context.Context, arg CreateRecipeWithRelationsParams) (int64, error) {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	state := stateDraft
	qtx := d.queries.WithTx(tx)

	id, err := qtx.CreateRecipe(ctx, CreateRecipeParams{
		Name:        arg.Name,
		Text:        arg.Text,
		Author:      arg.Author,
		CookingTime: arg.CookingTime,
		Image:       arg.Image,
	})
	if err != nil {
		return 0, fmt.Errorf("creating recipe (state %s): %w", state, err)
	}
	state = statePersistedScalar

	if err := reconcileRelations(ctx, qtx, id, arg.Ingredients, arg.TagIDs); err != nil {
		return 0, fmt.Errorf("reconciling recipe %d (state %s): %w", id, state, err)
	}
	state = stateFullyReconciled

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing recipe %d (state %s): %w", id, state, err)
	}
	state = stateCommitted
	_ = state

	return id, nil
}

type UpdateRecipeWithRelationsParams struct {
	ID          int64
	Name        string
	Text        string
	CookingTime int16
	Image       string
	Ingredients []IngredientAmount
	TagIDs      []int64
}

// UpdateRecipeWithRelations rewrites the recipe's scalar fields and
// reconciles both association sets to match the request exactly, all in
// one transaction. The desired sets replace the persisted sets: members
// absent from the request are deleted.
func (d *Database) UpdateRecipeWithRelations(ctx context.Context, arg UpdateRecipeWithRelationsParams) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	state := stateDraft
	qtx := d.queries.WithTx(tx)

	if err := qtx.UpdateRecipe(ctx, UpdateRecipeParams{
		ID:          arg.ID,
		Name:        arg.Name,
		Text:        arg.Text,
		CookingTime: arg.CookingTime,
		Image:       arg.Image,
	}); err != nil {
		return fmt.Errorf("updating recipe %d (state %s): %w", arg.ID, state, err)
	}
	state = statePersistedScalar

	if err := reconcileRelations(ctx, qtx, arg.ID, arg.Ingredients, arg.TagIDs); err != nil {
		return fmt.Errorf("reconciling recipe %d (state %s): %w", arg.ID, state, err)
	}
	state = stateFullyReconciled

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing recipe %d (state %s): %w", arg.ID, state, err)
	}
	return nil
}

func reconcileRelations(ctx context.Context, q Querier, recipeID int64, ingredients []IngredientAmount, tagIDs []int64) error {
	if err := reconcileIngredients(ctx, q, recipeID, ingredients); err != nil {
		return err
	}
	return reconcileTags(ctx, q, recipeID, tagIDs)
}

// AsNotFound unwraps a NotFoundError from a reconciliation failure, or
// returns nil when err is some other fault.
func AsNotFound(err error) *NotFoundError {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf
	}
	return nil
}
