package data

import (
	"github.com/liforra/ipintel/internal/records"
)

//go:generate mockgen -destination=mock_data/interfaces.go . PersistentDatabase

type PersistentDatabase interface {
	Close() error
	StoreRecord(record records.Record) (err error)
	StoreAllRecords(allRecords []records.Record) (err error)
	GetAllRecords() (allRecords []records.Record)
	Check() error
}
