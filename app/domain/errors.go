package domain

import "errors"

// Session store errors
var (
	// ErrSessionNotFound marks absence of a session or alias mapping. It is
	// not a fault: callers must tell "no session" apart from a store failure.
	ErrSessionNotFound  = errors.New("session not found")
	ErrStoreUnavailable = errors.New("session store unavailable")

	// ErrUserDecode marks a stored session payload that is present but does
	// not match any accepted user record shape. Terminal, never retried.
	ErrUserDecode = errors.New("user payload decode failed")

	// Session TTL sentinels (redis TTL replies -2 and -1)
	ErrSessionTTLMissing = errors.New("session ttl missing")
	ErrSessionNoExpiry   = errors.New("session has no expiry")
)

// Notice email cache errors
var (
	ErrNoticeEmailNotCached     = errors.New("notice email not cached")
	ErrNoticeEmailInvalid       = errors.New("cached notice email invalid")
	ErrNoticeEmailWriteRejected = errors.New("notice email write not acknowledged")
)

// Profile resolution errors
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrProfileQuery     = errors.New("profile query failed")
	ErrOutputValidation = errors.New("output record validation failed")
)
