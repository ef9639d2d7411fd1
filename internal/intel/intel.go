// Package intel orchestrates cache-aside address lookups: the record
// store answers hits, and misses go through rate limit admission, one
// enrichment call, classification and a store write.
package intel

import (
	"time"

	"github.com/liforra/ipintel/internal/query"
	"golang.org/x/sync/singleflight"
)

type Intel struct {
	db       Database
	querier  *query.Querier
	fetcher  Fetcher
	limiter  Limiter
	reverser Reverser // nil when reverse DNS is disabled
	logger   Logger
	notifier Notifier
	timeNow  func() time.Time
	inFlight singleflight.Group
}

func New(db Database, fetcher Fetcher, limiter Limiter,
	reverser Reverser, logger Logger, notifier Notifier) *Intel {
	return &Intel{
		db:       db,
		querier:  query.New(db, query.DefaultPageSize),
		fetcher:  fetcher,
		limiter:  limiter,
		reverser: reverser,
		logger:   logger,
		notifier: notifier,
		timeNow:  time.Now,
	}
}
