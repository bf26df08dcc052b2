// Package recipe assembles database rows into the JSON documents the
// API serves.
package recipe

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/plateful/plateful/internal/database"
)

// ErrRender marks an assembled document that failed outward-shape
// validation. Handlers treat it as an internal error, never a client
// error: by the time a row reaches the assembler it already passed
// input validation, so a bad shape means corrupt state.
var ErrRender = errors.New("rendering document")

var docValidate = validator.New(validator.WithRequiredStructEnabled())

type TagDocument struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	Slug  string `json:"slug" validate:"required"`
	Color string `json:"color" validate:"required,len=7"`
}

type IngredientDocument struct {
	ID              int64  `json:"id"`
	Name            string `json:"name" validate:"required"`
	MeasurementUnit string `json:"measurement_unit"`
}

// IngredientAmountDocument is an ingredient plus the per-recipe amount.
type IngredientAmountDocument struct {
	ID              int64  `json:"id"`
	Name            string `json:"name" validate:"required"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int16  `json:"amount" validate:"gt=0"`
}

type UserDocument struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username" validate:"required"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type RecipeDocument struct {
	ID               int64                      `json:"id"`
	Tags             []TagDocument              `json:"tags" validate:"min=1,dive"`
	Author           UserDocument               `json:"author"`
	Ingredients      []IngredientAmountDocument `json:"ingredients" validate:"min=1,dive"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name" validate:"required"`
	Image            string                     `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      int16                      `json:"cooking_time" validate:"gt=0"`
	PubDate          string                     `json:"pub_date"`
}

// BriefRecipeDocument is the compact shape used in favorites, carts and
// subscription listings.
type BriefRecipeDocument struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int16  `json:"cooking_time"`
}

type UserWithRecipesDocument struct {
	UserDocument
	Recipes      []BriefRecipeDocument `json:"recipes"`
	RecipesCount int                   `json:"recipes_count"`
}

func NewTagDocument(t database.Tag) TagDocument {
	return TagDocument{
		ID:    t.ID,
		Name:  t.Name,
		Slug:  t.Slug,
		Color: t.Color,
	}
}

func NewIngredientDocument(i database.Ingredient) IngredientDocument {
	return IngredientDocument{
		ID:              i.ID,
		Name:            i.Name,
		MeasurementUnit: i.MeasurementUnit,
	}
}

func NewUserDocument(u database.GetUserRow) UserDocument {
	return UserDocument{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: u.IsSubscribed,
	}
}

func NewBriefRecipeDocument(r database.RecipeBriefRow, imageURL func(string) string) BriefRecipeDocument {
	return BriefRecipeDocument{
		ID:          r.ID,
		Name:        r.Name,
		Image:       imageURL(r.Image),
		CookingTime: r.CookingTime,
	}
}

// FromRelations builds the full detail document from a resolved store
// tuple. imageURL maps the stored image key to an absolute URL.
func FromRelations(rel database.RecipeWithRelations, imageURL func(string) string) (RecipeDocument, error) {
	row := rel.Recipe

	doc := RecipeDocument{
		ID: row.ID,
		Author: UserDocument{
			ID:           row.AuthorID,
			Email:        row.AuthorEmail,
			Username:     row.AuthorUsername,
			FirstName:    row.AuthorFirstName,
			LastName:     row.AuthorLastName,
			IsSubscribed: row.AuthorIsSubscribed,
		},
		IsFavorited:      row.IsFavorited,
		IsInShoppingCart: row.IsInShoppingCart,
		Name:             row.Name,
		Image:            imageURL(row.Image),
		Text:             row.Text,
		CookingTime:      row.CookingTime,
	}
	if row.PubDate.Valid {
		doc.PubDate = row.PubDate.Time.UTC().Format(time.RFC3339)
	}

	doc.Tags = make([]TagDocument, 0, len(rel.Tags))
	for _, t := range rel.Tags {
		doc.Tags = append(doc.Tags, NewTagDocument(t))
	}

	doc.Ingredients = make([]IngredientAmountDocument, 0, len(rel.Ingredients))
	for _, ing := range rel.Ingredients {
		doc.Ingredients = append(doc.Ingredients, IngredientAmountDocument{
			ID:              ing.ID,
			Name:            ing.Name,
			MeasurementUnit: ing.MeasurementUnit,
			Amount:          ing.Amount,
		})
	}

	if err := docValidate.Struct(doc); err != nil {
		return RecipeDocument{}, fmt.Errorf("%w: recipe %d: %w", ErrRender, row.ID, err)
	}
	return doc, nil
}

// FromRelationsList assembles documents for every tuple, preserving
// order. A single malformed tuple fails the whole batch.
func FromRelationsList(rels []database.RecipeWithRelations, imageURL func(string) string) ([]RecipeDocument, error) {
	docs := make([]RecipeDocument, 0, len(rels))
	for _, rel := range rels {
		doc, err := FromRelations(rel, imageURL)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
