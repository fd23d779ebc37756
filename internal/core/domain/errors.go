package domain

import "errors"

// Sentinel errors returned by the core. Network failures during site
// verification are not part of this taxonomy: they collapse to a false
// verification result and are never surfaced to callers.
var (
	// auth
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// site registration
	ErrDuplicateDomain = errors.New("domain already registered")

	// event recording
	ErrSiteNotFound     = errors.New("site not found")
	ErrSiteNotVerified  = errors.New("site not verified")
	ErrInvalidEventType = errors.New("invalid event type")
)
