package app

import "errors"

var (
	// ErrInvalidCredentials is returned when the supplied credentials do not match.
	// The message is safe to show to end users.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrUsernameAndPasswordRequired = errors.New("username and password required")
	ErrUsernameAlreadyExists       = errors.New("username already exists")
	ErrInvalidRole                 = errors.New("role must be admin or user")
	ErrOwnerImmutable              = errors.New("owner account cannot be modified")

	// ErrWeakPassword is returned when a new account's password fails
	// the complexity policy. The wrapped message names what is missing.
	ErrWeakPassword = errors.New("password does not meet the policy")

	// ErrUnknownDay is returned when a day identifier is not one of the
	// seven fixed names. Matching is case-sensitive.
	ErrUnknownDay = errors.New("unknown day")

	// ErrEventNotFound is returned when no entry with the requested
	// display time exists for the day.
	ErrEventNotFound = errors.New("event not found")

	// ErrPartialReplacement is returned when a bulk schedule replacement
	// failed after the old table may already have been cleared.
	ErrPartialReplacement = errors.New("schedule replacement incomplete")

	ErrAssetNotFound       = errors.New("asset not found")
	ErrAssetTooLarge       = errors.New("asset exceeds size limit")
	ErrAssetDeletionFailed = errors.New("asset deletion failed")

	ErrRecordNotFound = errors.New("record not found")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrMissingFields      = errors.New("required fields missing")
)
