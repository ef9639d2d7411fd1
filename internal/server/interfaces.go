package server

import (
	"context"

	"github.com/liforra/ipintel/internal/query"
	"github.com/liforra/ipintel/internal/records"
)

//go:generate mockgen -destination=mock_server/interfaces.go . IntelLayer

type IntelLayer interface {
	Lookup(ctx context.Context, identity, address string) (
		record records.Record, err error)
	Refresh(ctx context.Context, identity, address string) (
		record records.Record, err error)
	Paginate(pageNumber uint) (page query.Page, err error)
	Search(term string) (matching []records.Record)
	Stats() (stats query.Stats)
	Reload()
}

type Logger interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}
