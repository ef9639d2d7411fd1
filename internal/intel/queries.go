package intel

import (
	"net/netip"

	"github.com/liforra/ipintel/internal/query"
	"github.com/liforra/ipintel/internal/records"
)

// Get returns the cached record for the given address, if any,
// without any network call.
func (i *Intel) Get(address string) (record records.Record, ok bool) {
	addr, err := parseAddress(address)
	if err != nil {
		return record, false
	}
	return i.db.Select(addr)
}

// Paginate returns the given page of cached records.
func (i *Intel) Paginate(pageNumber uint) (page query.Page, err error) {
	return i.querier.Paginate(pageNumber)
}

// Search returns cached records matching the given term.
func (i *Intel) Search(term string) (matching []records.Record) {
	return i.querier.Search(term)
}

// Stats returns aggregate statistics over the cached records.
func (i *Intel) Stats() (stats query.Stats) {
	return i.querier.Stats()
}

// Reload replaces the cached records with the persisted ones.
func (i *Intel) Reload() {
	i.db.Reload()
	i.logger.Info("reloaded records from persistence")
}

// Addresses returns every cached address, for administrative use.
func (i *Intel) Addresses() (addresses []netip.Addr) {
	allRecords := i.db.SelectAll()
	addresses = make([]netip.Addr, 0, len(allRecords))
	for _, record := range allRecords {
		addresses = append(addresses, record.Address)
	}
	return addresses
}
