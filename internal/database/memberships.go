package database

import "context"

// Favorite, shopping cart and subscription rows are pure membership
// relations. Inserts surface duplicate pairs as unique violations
// (unique_favorite, unique_shopping_cart, unique_subscription) and
// deletes report the number of rows removed so callers can distinguish
// "removed" from "was never there".

const createFavorite = `
INSERT INTO favorite (user_id, recipe_id) VALUES ($1, $2)
`

type FavoriteParams struct {
	UserID   int64
	RecipeID int64
}

func (q *Queries) CreateFavorite(ctx context.Context, arg FavoriteParams) error {
	_, err := q.db.Exec(ctx, createFavorite, arg.UserID, arg.RecipeID)
	return err
}

const deleteFavorite = `
DELETE FROM favorite WHERE user_id = $1 AND recipe_id = $2
`

func (q *Queries) DeleteFavorite(ctx context.Context, arg FavoriteParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteFavorite, arg.UserID, arg.RecipeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const createCartItem = `
INSERT INTO shopping_cart (user_id, recipe_id) VALUES ($1, $2)
`

type CartItemParams struct {
	UserID   int64
	RecipeID int64
}

func (q *Queries) CreateCartItem(ctx context.Context, arg CartItemParams) error {
	_, err := q.db.Exec(ctx, createCartItem, arg.UserID, arg.RecipeID)
	return err
}

const deleteCartItem = `
DELETE FROM shopping_cart WHERE user_id = $1 AND recipe_id = $2
`

func (q *Queries) DeleteCartItem(ctx context.Context, arg CartItemParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteCartItem, arg.UserID, arg.RecipeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getShoppingCartTotals = `
SELECT i.name, i.measurement_unit, sum(a.amount)::bigint AS total
FROM shopping_cart sc
JOIN amounts a ON a.recipe_id = sc.recipe_id
JOIN ingredients i ON i.id = a.ingredient_id
WHERE sc.user_id = $1
GROUP BY i.name, i.measurement_unit
ORDER BY i.name
`

type ShoppingCartTotalRow struct {
	Name            string
	MeasurementUnit string
	Total           int64
}

// GetShoppingCartTotals aggregates ingredient amounts across every
// recipe in the user's shopping cart.
func (q *Queries) GetShoppingCartTotals(ctx context.Context, userID int64) ([]ShoppingCartTotalRow, error) {
	rows, err := q.db.Query(ctx, getShoppingCartTotals, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ShoppingCartTotalRow
	for rows.Next() {
		var i ShoppingCartTotalRow
		if err := rows.Scan(&i.Name, &i.MeasurementUnit, &i.Total); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createSubscription = `
INSERT INTO subscriptions (user_id, followed_user_id) VALUES ($1, $2)
`

type SubscriptionParams struct {
	UserID         int64
	FollowedUserID int64
}

func (q *Queries) CreateSubscription(ctx context.Context, arg SubscriptionParams) error {
	_, err := q.db.Exec(ctx, createSubscription, arg.UserID, arg.FollowedUserID)
	return err
}

const deleteSubscription = `
DELETE FROM subscriptions WHERE user_id = $1 AND followed_user_id = $2
`

func (q *Queries) DeleteSubscription(ctx context.Context, arg SubscriptionParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteSubscription, arg.UserID, arg.FollowedUserID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listSubscriptions = `
SELECT u.id, u.email, u.username, u.first_name, u.last_name,
       TRUE AS is_subscribed
FROM subscriptions s
JOIN users u ON u.id = s.followed_user_id
WHERE s.user_id = $1
ORDER BY u.id
LIMIT $2 OFFSET $3
`

type ListSubscriptionsParams struct {
	UserID int64
	Limit  int32
	Offset int32
}

func (q *Queries) ListSubscriptions(ctx context.Context, arg ListSubscriptionsParams) ([]GetUserRow, error) {
	rows, err := q.db.Query(ctx, listSubscriptions, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetUserRow
	for rows.Next() {
		var i GetUserRow
		if err := rows.Scan(
			&i.ID,
			&i.Email,
			&i.Username,
			&i.FirstName,
			&i.LastName,
			&i.IsSubscribed,
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

const countSubscriptions = `
SELECT count(*) FROM subscriptions WHERE user_id = $1
`

func (q *Queries) CountSubscriptions(ctx context.Context, userID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countSubscriptions, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
