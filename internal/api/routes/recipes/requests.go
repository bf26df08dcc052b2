package recipes

// IngredientAmountInput references an existing ingredient by id with
// the per-recipe amount.
type IngredientAmountInput struct {
	ID     int64 `json:"id" validate:"required"`
	Amount int16 `json:"amount" validate:"gt=0"`
}

type CreateRecipeRequest struct {
	Name        string                  `json:"name" validate:"required,max=200"`
	Text        string                  `json:"text" validate:"required"`
	CookingTime int16                   `json:"cooking_time" validate:"gt=0"`
	Image       string                  `json:"image" validate:"required"`
	Ingredients []IngredientAmountInput `json:"ingredients" validate:"min=1,dive"`
	Tags        []int64                 `json:"tags" validate:"min=1"`
}

// UpdateRecipeRequest is the same shape with an optional image: an
// empty image keeps the stored one.
type UpdateRecipeRequest struct {
	Name        string                  `json:"name" validate:"required,max=200"`
	Text        string                  `json:"text" validate:"required"`
	CookingTime int16                   `json:"cooking_time" validate:"gt=0"`
	Image       string                  `json:"image"`
	Ingredients []IngredientAmountInput `json:"ingredients" validate:"min=1,dive"`
	Tags        []int64                 `json:"tags" validate:"min=1"`
}
