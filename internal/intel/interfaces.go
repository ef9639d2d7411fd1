package intel

import (
	"context"
	"net/netip"
	"time"

	"github.com/liforra/ipintel/internal/ipapi"
	"github.com/liforra/ipintel/internal/records"
)

//go:generate mockgen -destination=mock_intel/interfaces.go . Database,Fetcher,Limiter,Reverser

type Database interface {
	Select(address netip.Addr) (record records.Record, ok bool)
	SelectAll() (allRecords []records.Record)
	Len() int
	Update(record records.Record) (err error)
	Reload()
}

type Fetcher interface {
	Fetch(ctx context.Context, address netip.Addr) (
		record ipapi.Record, err error)
	FetchBatch(ctx context.Context, addresses []netip.Addr) (
		results map[netip.Addr]ipapi.Record, err error)
}

type Limiter interface {
	Allow(identity string) (allowed bool, retryAfter time.Duration)
}

type Reverser interface {
	Lookup(ctx context.Context, address netip.Addr) (
		hostname string, err error)
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}

type Notifier interface {
	Notify(message string)
}
