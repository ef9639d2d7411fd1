package ipapi

import "errors"

var (
	ErrAddressInvalid  = errors.New("address is invalid")
	ErrAuth            = errors.New("authentication with provider failed")
	ErrTooManyRequests = errors.New("too many requests sent to provider")
	ErrNotFound        = errors.New("provider has no data for address")
	ErrBadHTTPStatus   = errors.New("bad HTTP status received")
	ErrProviderFailure = errors.New("provider reported a failure")
)
