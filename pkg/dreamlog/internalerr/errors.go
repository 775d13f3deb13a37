package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")

	// Journal analysis
	ErrNoDreams         = errors.New("no dreams found")
	ErrStatsUnavailable = errors.New("statistics unavailable")
	ErrNoScores         = errors.New("no scored days")
)
