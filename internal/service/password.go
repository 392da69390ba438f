package service

import (
	"unicode"

	apperrors "spudhouse/internal/errors"
)

// ValidatePassword enforces the password policy applied uniformly to
// registration, change-password, and reset-password: at least 8 characters
// with one lowercase letter, one uppercase letter, and one digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return apperrors.ErrWeakPassword
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return apperrors.ErrWeakPassword
	}
	return nil
}
