package domain

import "errors"

var (
	// ErrDuplicateKey signals a signup colliding with an existing record
	// on username/name, email, or mobile.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidCredentials covers both an unknown login subject and a
	// wrong password; callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every token verification failure: bad
	// signature, malformed structure, wrong algorithm, or expiry.
	ErrInvalidToken = errors.New("invalid token")

	ErrUserNotFound   = errors.New("user not found")
	ErrVendorNotFound = errors.New("vendor not found")
	ErrForbidden      = errors.New("access forbidden")

	// ErrInvalidQuantity rejects order items with a non-positive quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrAuthUnavailable means the remote identity-resolution call could
	// not be completed; distinct from ErrInvalidToken so callers can
	// tell "your credentials are bad" from "we couldn't check".
	ErrAuthUnavailable = errors.New("auth service unavailable")
)
