// Package validate builds the request validator with the custom rules
// the API relies on.
package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// The same patterns the schema CHECK constraints enforce, applied at
// the edge so bad input fails before reaching the database.
var (
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
	slugRe     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	colorRe    = regexp.MustCompile(`^#[0-9a-f]{6}$`)
)

func username(fl validator.FieldLevel) bool {
	return usernameRe.MatchString(fl.Field().String())
}

func slug(fl validator.FieldLevel) bool {
	return slugRe.MatchString(fl.Field().String())
}

// color is stricter than the builtin hexcolor rule: the stored form is
// lowercase six-digit hex, so uppercase input must fail here rather
// than at the insert.
func color(fl validator.FieldLevel) bool {
	return colorRe.MatchString(fl.Field().String())
}

func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", username)
	_ = v.RegisterValidation("slug", slug)
	_ = v.RegisterValidation("color", color)
	return v
}
