package data

import (
	"context"
	"fmt"
	"net/netip"
	"sync"

	"github.com/liforra/ipintel/internal/records"
)

type Database struct {
	data  map[netip.Addr]records.Record
	dirty bool
	sync.RWMutex
	persistentDB PersistentDatabase
}

// NewDatabase creates a new in memory database, loading existing
// records from the persistent database.
func NewDatabase(persistentDB PersistentDatabase) *Database {
	allRecords := persistentDB.GetAllRecords()
	data := make(map[netip.Addr]records.Record, len(allRecords))
	for _, record := range allRecords {
		data[record.Address] = record
	}
	return &Database{
		data:         data,
		persistentDB: persistentDB,
	}
}

func (db *Database) String() string {
	return "database"
}

func (db *Database) Start(_ context.Context) (_ <-chan error, err error) {
	return nil, nil //nolint:nilnil
}

func (db *Database) Stop() (err error) {
	err = db.Persist()
	if err != nil {
		return fmt.Errorf("persisting records: %w", err)
	}

	db.Lock() // ensure write operation finishes
	defer db.Unlock()
	return db.persistentDB.Close()
}
