package domain

import "errors"

// Sentinel errors for the three failure kinds the client distinguishes.
// Callers match them with errors.Is; wrapped messages keep the detail.
var (
	// ErrConfig marks a fatal precondition failure (missing API key,
	// unusable output directory). Raised before any network call.
	ErrConfig = errors.New("configuration error")

	// ErrProvider marks a remote API failure: transport errors, non-success
	// responses, or an empty/malformed image payload.
	ErrProvider = errors.New("provider failure")

	// ErrStorage marks a local filesystem failure while persisting a
	// generated image.
	ErrStorage = errors.New("storage failure")
)
