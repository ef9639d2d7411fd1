package data

import (
	"fmt"
	"net/netip"

	"github.com/liforra/ipintel/internal/records"
)

// Select returns the record for the given address, if any.
func (db *Database) Select(address netip.Addr) (
	record records.Record, ok bool) {
	db.RLock()
	defer db.RUnlock()
	record, ok = db.data[address]
	return record, ok
}

// SelectAll returns a copy of every record, in no particular order.
func (db *Database) SelectAll() (allRecords []records.Record) {
	db.RLock()
	defer db.RUnlock()
	allRecords = make([]records.Record, 0, len(db.data))
	for _, record := range db.data {
		allRecords = append(allRecords, record)
	}
	return allRecords
}

// Len returns the number of records.
func (db *Database) Len() int {
	db.RLock()
	defer db.RUnlock()
	return len(db.data)
}

// Update upserts the record in memory and stores it in the persistent
// database. On a persistence failure, the in-memory data stays
// authoritative and is marked dirty for a later Persist call.
func (db *Database) Update(record records.Record) (err error) {
	db.Lock()
	defer db.Unlock()

	db.data[record.Address] = record

	err = db.persistentDB.StoreRecord(record)
	if err != nil {
		db.dirty = true
		return fmt.Errorf("storing record for %s: %w", record.Address, err)
	}
	return nil
}

// Persist flushes all in-memory records to the persistent database if
// any earlier write to it failed.
func (db *Database) Persist() (err error) {
	db.Lock()
	defer db.Unlock()

	if !db.dirty {
		return nil
	}

	allRecords := make([]records.Record, 0, len(db.data))
	for _, record := range db.data {
		allRecords = append(allRecords, record)
	}

	err = db.persistentDB.StoreAllRecords(allRecords)
	if err != nil {
		return fmt.Errorf("storing all records: %w", err)
	}
	db.dirty = false
	return nil
}

// IsDirty reports whether in-memory records are ahead of the
// persistent database.
func (db *Database) IsDirty() bool {
	db.RLock()
	defer db.RUnlock()
	return db.dirty
}

// Reload replaces every record with the ones from the persistent
// database. The new record map is built before taking the write lock,
// so concurrent readers never observe a half-reloaded store.
func (db *Database) Reload() {
	allRecords := db.persistentDB.GetAllRecords()
	data := make(map[netip.Addr]records.Record, len(allRecords))
	for _, record := range allRecords {
		data[record.Address] = record
	}

	db.Lock()
	defer db.Unlock()
	db.data = data
	db.dirty = false
}
