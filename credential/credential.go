package credential

import "regexp"

// local@domain.tld: no whitespace or extra "@" on either side, and at least
// one dot in the domain part.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether email has the accepted local@domain.tld shape.
// The rule is intentionally simple; it gates input quality, not RFC 5322
// conformance.
func ValidEmail(email string) bool {
	return emailShape.MatchString(email)
}

// Reason names why a password was rejected.
type Reason string

const (
	// ReasonNone accompanies an accepted password.
	ReasonNone Reason = ""
	// ReasonTooShort marks passwords under the minimum length.
	ReasonTooShort Reason = "too short"
	// ReasonMissingComplexity marks passwords lacking a lowercase letter, an
	// uppercase letter, or a digit.
	ReasonMissingComplexity Reason = "missing complexity"
)

// MinPasswordLength is the minimum accepted password length, in runes.
const MinPasswordLength = 8

// Check is the outcome of [CheckPassword].
type Check struct {
	OK     bool
	Reason Reason
}

// CheckPassword applies the password policy: at least [MinPasswordLength]
// characters, and at least one lowercase letter, one uppercase letter, and
// one digit. There is no maximum length and no special-character requirement.
func CheckPassword(password string) Check {
	runes := []rune(password)
	if len(runes) < MinPasswordLength {
		return Check{Reason: ReasonTooShort}
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return Check{Reason: ReasonMissingComplexity}
	}

	return Check{OK: true}
}
