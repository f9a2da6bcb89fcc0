package notionhub

import "errors"

var (
	// ErrBuilderUsed is returned when Build is called twice on one Builder.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrMissingBaseURL is returned when no API base URL is configured.
	ErrMissingBaseURL = errors.New("api base url required")
	// ErrMissingCredentialStore is returned when neither a credential store
	// nor a Redis client/address is supplied.
	ErrMissingCredentialStore = errors.New("credential store required: provide one or configure redis")
	// ErrInvalidGuardPath is returned when a configured guard path does not
	// begin with '/'.
	ErrInvalidGuardPath = errors.New("guard paths must begin with '/'")
	// ErrInvalidTimeout is returned for a non-positive API timeout.
	ErrInvalidTimeout = errors.New("api timeout must be positive")
)
