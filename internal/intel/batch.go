package intel

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/liforra/ipintel/internal/records"
)

// LookupBatch returns records for all given addresses, serving cached
// ones from the store and fetching the rest in one batch operation.
// The batch fetch consumes a single rate limit slot regardless of how
// many addresses it carries. Addresses the provider has no data for
// are absent from the returned map.
func (i *Intel) LookupBatch(ctx context.Context, identity string,
	addresses []string) (results map[netip.Addr]records.Record, err error) {
	addrs := make([]netip.Addr, len(addresses))
	for index, address := range addresses {
		addrs[index], err = parseAddress(address)
		if err != nil {
			return nil, err
		}
	}

	results = make(map[netip.Addr]records.Record, len(addrs))
	var missing []netip.Addr
	for _, addr := range addrs {
		record, ok := i.db.Select(addr)
		if ok {
			results[addr] = record
			continue
		}
		missing = append(missing, addr)
	}

	if len(missing) == 0 {
		return results, nil
	}

	allowed, retryAfter := i.limiter.Allow(identity)
	if !allowed {
		return nil, fmt.Errorf("%w: retry in %s",
			ErrRateLimited, retryAfter.Round(retryAfterRounding))
	}

	providerRecords, err := i.fetcher.FetchBatch(ctx, missing)
	if err != nil {
		return nil, i.mapFetchError(missing[0], err)
	}

	for addr, providerRecord := range providerRecords {
		record := i.buildRecord(ctx, providerRecord)
		err = i.db.Update(record)
		if err != nil {
			i.logger.Error("persisting record: " + err.Error())
			i.notifier.Notify("persisting record for " + addr.String() +
				": " + err.Error())
		}
		results[addr] = record
	}

	return results, nil
}
