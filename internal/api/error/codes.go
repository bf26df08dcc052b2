package error

import "net/http"

type ErrorCode string

const (
	UnknownError            ErrorCode = "unknown_error"
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = "bad_request"
	UnprocessibleEntity     ErrorCode = "unprocessible_entity"
	InvalidCredentials      ErrorCode = "invalid_credentials"
	InvalidAccessToken      ErrorCode = "invalid_access_token"
	ExpiredAccessToken      ErrorCode = "expired_access_token"
	InsufficientPermissions ErrorCode = "insufficient_permissions"
	WeakPassword            ErrorCode = "weak_password"
	EmailConflict           ErrorCode = "email_conflict"
	UsernameConflict        ErrorCode = "username_conflict"
	TagConflict             ErrorCode = "tag_conflict"
	IngredientConflict      ErrorCode = "ingredient_conflict"
	RecipeNotFound          ErrorCode = "recipe_not_found"
	RecipeNotOwned          ErrorCode = "recipe_not_owned"
	IngredientNotFound      ErrorCode = "ingredient_not_found"
	TagNotFound             ErrorCode = "tag_not_found"
	UserNotFound            ErrorCode = "user_not_found"
	AlreadyFavorited        ErrorCode = "already_favorited"
	NotFavorited            ErrorCode = "not_favorited"
	AlreadyInShoppingCart   ErrorCode = "already_in_shopping_cart"
	NotInShoppingCart       ErrorCode = "not_in_shopping_cart"
	AlreadySubscribed       ErrorCode = "already_subscribed"
	NotSubscribed           ErrorCode = "not_subscribed"
	SelfSubscription        ErrorCode = "self_subscription"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:            0, // No error code - unknown
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	UnprocessibleEntity:     http.StatusUnprocessableEntity,
	InvalidCredentials:      http.StatusUnauthorized,
	InvalidAccessToken:      http.StatusUnauthorized,
	ExpiredAccessToken:      http.StatusUnauthorized,
	InsufficientPermissions: http.StatusForbidden,
	WeakPassword:            http.StatusUnprocessableEntity,
	EmailConflict:           http.StatusConflict,
	UsernameConflict:        http.StatusConflict,
	TagConflict:             http.StatusConflict,
	IngredientConflict:      http.StatusConflict,
	RecipeNotFound:          http.StatusNotFound,
	RecipeNotOwned:          http.StatusForbidden,
	IngredientNotFound:      http.StatusNotFound,
	TagNotFound:             http.StatusNotFound,
	UserNotFound:            http.StatusNotFound,
	AlreadyFavorited:        http.StatusBadRequest,
	NotFavorited:            http.StatusBadRequest,
	AlreadyInShoppingCart:   http.StatusBadRequest,
	NotInShoppingCart:       http.StatusBadRequest,
	AlreadySubscribed:       http.StatusBadRequest,
	NotSubscribed:           http.StatusBadRequest,
	SelfSubscription:        http.StatusBadRequest,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
