package pulseauth

import "errors"

// Error messages double as the inline reason strings the UI shows, so they
// read as full sentences rather than the usual terse Go error text.
var (
	// ErrInvalidEmail rejects input that is not shaped like local@domain.tld.
	// The user directory is never consulted for an invalid email.
	ErrInvalidEmail = errors.New("please enter a valid email address")
	// ErrPasswordTooShort rejects signup passwords under the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	// ErrPasswordComplexity rejects signup passwords missing a lowercase
	// letter, an uppercase letter, or a digit.
	ErrPasswordComplexity = errors.New("password must contain uppercase, lowercase, and number")
	// ErrPasswordMismatch rejects signups whose confirmation differs from the
	// password.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrTermsNotAccepted rejects signups without the terms checkbox.
	ErrTermsNotAccepted = errors.New("please accept the terms and conditions")
	// ErrEmailExists rejects signups for an already-registered email.
	ErrEmailExists = errors.New("an account with this email already exists")
	// ErrInvalidCredentials covers unknown email, wrong role, and wrong
	// password. Deliberately undifferentiated so a caller cannot learn which
	// factor failed.
	ErrInvalidCredentials = errors.New("invalid email, password, or role")
	// ErrInvalidRole rejects roles outside the closed farmer/government set.
	ErrInvalidRole = errors.New("invalid account role")
	// ErrUserNotFound is returned by [Directory] lookups for unknown emails.
	ErrUserNotFound = errors.New("user not found")
	// ErrDirectoryUnavailable wraps transport failures of a remote directory.
	ErrDirectoryUnavailable = errors.New("user directory unavailable")
	// ErrEngineNotReady is returned when an Engine is used before Build.
	ErrEngineNotReady = errors.New("engine not initialized")
)
