package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"sync"

	"github.com/liforra/ipintel/internal/records"
)

// Database is the JSON file database holding the enriched address
// records, as a single mapping from address to record.
type Database struct {
	data     dataModel
	filepath string
	sync.Mutex
}

type dataModel struct {
	Records map[string]records.Record `json:"records"`
}

// NewDatabase opens or creates the JSON file database.
func NewDatabase(dataDir string) (*Database, error) {
	db := Database{
		filepath: filepath.Join(dataDir, "records.json"),
		data: dataModel{
			Records: map[string]records.Record{},
		},
	}

	raw, err := os.ReadFile(db.filepath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = db.write()
			if err != nil {
				return nil, fmt.Errorf("creating database file: %w", err)
			}
			return &db, nil
		}
		return nil, fmt.Errorf("reading database file: %w", err)
	}

	err = json.Unmarshal(raw, &db.data)
	if err != nil {
		return nil, fmt.Errorf("decoding database file: %w", err)
	}
	if db.data.Records == nil {
		db.data.Records = map[string]records.Record{}
	}

	err = db.Check()
	if err != nil {
		return nil, fmt.Errorf("%s validation error: %w", db.filepath, err)
	}

	return &db, nil
}

var (
	ErrAddressKeyNotValid = errors.New("address key is not valid")
	ErrAddressMismatch    = errors.New("record address does not match its key")
	ErrFetchTimeEmpty     = errors.New("record fetch time is empty")
)

func (db *Database) Check() error {
	for key, record := range db.data.Records {
		keyAddress, err := netip.ParseAddr(key)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrAddressKeyNotValid, key)
		}
		switch {
		case record.Address != keyAddress:
			return fmt.Errorf("%w: key %s has record address %s",
				ErrAddressMismatch, key, record.Address)
		case record.FetchedAt.IsZero():
			return fmt.Errorf("%w: for record %s", ErrFetchTimeEmpty, key)
		}
	}
	return nil
}

// write writes the data to a temporary file and renames it over the
// database file, so a crash mid-write cannot corrupt the database.
func (db *Database) write() error {
	data, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding data: %w", err)
	}

	temporaryPath := db.filepath + ".tmp"
	const permissions = os.FileMode(0o600)
	err = os.WriteFile(temporaryPath, data, permissions)
	if err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}

	err = os.Rename(temporaryPath, db.filepath)
	if err != nil {
		return fmt.Errorf("renaming temporary file: %w", err)
	}

	return nil
}

func (db *Database) Close() error {
	db.Lock() // ensure a write operation finishes
	defer db.Unlock()
	return nil
}

func (db *Database) String() string {
	return "JSON database at " + db.filepath
}
