// Package password gates user passwords on length, character classes
// and estimated entropy.
package password

import (
	"errors"
	"regexp"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

const (
	minimumLength      = 10
	minimumEntropyBits = 60
)

var (
	ErrTooShort    = errors.New("password must be at least 10 characters long")
	ErrNoUppercase = errors.New("password must contain at least one uppercase letter")
	ErrNoLowercase = errors.New("password must contain at least one lowercase letter")
	ErrNoDigit     = errors.New("password must contain at least one digit")
	ErrNoSpecial   = errors.New("password must contain at least one special character")
	ErrTooWeak     = errors.New("password is too weak")
)

var charsetChecks = []struct {
	re  *regexp.Regexp
	err error
}{
	{regexp.MustCompile(`[A-Z]`), ErrNoUppercase},
	{regexp.MustCompile(`[a-z]`), ErrNoLowercase},
	{regexp.MustCompile(`[0-9]`), ErrNoDigit},
	{regexp.MustCompile(`[!@#$%^&*()\-_=+{};:,.<>/?\\|"']`), ErrNoSpecial},
}

// ValidatePassword returns the first rule the password breaks. The
// entropy check runs last so its error can carry the estimator detail.
func ValidatePassword(password string) error {
	if len(password) < minimumLength {
		return ErrTooShort
	}
	for _, check := range charsetChecks {
		if !check.re.MatchString(password) {
			return check.err
		}
	}
	if err := passwordvalidator.Validate(password, minimumEntropyBits); err != nil {
		return errors.Join(ErrTooWeak, err)
	}
	return nil
}
