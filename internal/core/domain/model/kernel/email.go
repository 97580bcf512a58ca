package kernel

import (
	"regexp"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
// Emails must be created via the NewEmail constructor.
var ErrEmailIsNotConstructed = errs.NewFieldValidationError(
	"Email", "value", "email must be created via NewEmail constructor", nil)

// emailPattern requires a local part, a domain, and at least one
// dot-separated label after the '@'. It is checked against the
// normalized (trimmed, lower-cased) value.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a value object representing a normalized email address.
// Normalization (whitespace trimming and lower-casing) happens at
// construction time, so two addresses differing only in case or
// surrounding whitespace compare equal.
//
// Example:
//
//	email, err := kernel.NewEmail("  User@Example.COM  ")
//	if err != nil {
//	    // handle validation error
//	}
//	email.Value()  // "user@example.com"
//	email.Domain() // "example.com"
type Email struct {
	value string
	guard guard.ConstructorGuard
}

// NewEmail creates an Email from a raw string. The input is trimmed and
// lower-cased before validation. Returns a ValidationError when the
// result is empty or does not match the email pattern.
func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, errs.NewFieldValidationError("Email", "value", "email must not be empty", raw)
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, errs.NewFieldValidationError("Email", "value", "email format is invalid", raw)
	}

	return Email{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Value returns the normalized email address.
func (e Email) Value() string {
	return e.value
}

// Domain returns the portion of the address after the first '@'.
// It returns an empty string when no '@' is present, which is unreachable
// for constructed values.
func (e Email) Domain() string {
	at := strings.Index(e.value, "@")
	if at < 0 {
		return ""
	}
	return e.value[at+1:]
}

// IsEqual compares two emails by their normalized value.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// String returns the normalized email address.
// Implements fmt.Stringer.
func (e Email) String() string {
	return e.value
}

// Validate checks that the Email was created via NewEmail.
// The zero value fails with ErrEmailIsNotConstructed.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}
