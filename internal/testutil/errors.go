package testutil

import "errors"

// Common test errors
var (
	ErrCacheDown   = errors.New("cache unavailable")
	ErrTestFailure = errors.New("test failure")
)
