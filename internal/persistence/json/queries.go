package json

import (
	"github.com/liforra/ipintel/internal/records"
)

// StoreRecord upserts a single record and writes the database file.
func (db *Database) StoreRecord(record records.Record) (err error) {
	db.Lock()
	defer db.Unlock()

	db.data.Records[record.Address.String()] = record
	return db.write()
}

// StoreAllRecords replaces every record and writes the database file.
func (db *Database) StoreAllRecords(allRecords []records.Record) (err error) {
	db.Lock()
	defer db.Unlock()

	db.data.Records = make(map[string]records.Record, len(allRecords))
	for _, record := range allRecords {
		db.data.Records[record.Address.String()] = record
	}
	return db.write()
}

// GetAllRecords returns a copy of every stored record, in no
// particular order.
func (db *Database) GetAllRecords() (allRecords []records.Record) {
	db.Lock()
	defer db.Unlock()

	allRecords = make([]records.Record, 0, len(db.data.Records))
	for _, record := range db.data.Records {
		allRecords = append(allRecords, record)
	}
	return allRecords
}
