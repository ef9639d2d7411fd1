package intel

import "errors"

var (
	ErrAddressInvalid        = errors.New("address is invalid")
	ErrRateLimited           = errors.New("rate limited")
	ErrEnrichmentUnavailable = errors.New("enrichment service unavailable")
	ErrEnrichmentAuth        = errors.New("enrichment authentication failed")
	ErrAddressNotFound       = errors.New("no data found for address")
)
