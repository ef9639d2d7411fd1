package intel

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/liforra/ipintel/internal/classify"
	"github.com/liforra/ipintel/internal/ipapi"
	"github.com/liforra/ipintel/internal/records"
)

// Lookup returns the record for the given address, fetching it from
// the enrichment provider on a cache miss. A cache hit never consumes
// rate limit quota. Concurrent misses for one address share a single
// fetch and a single rate limit slot.
func (i *Intel) Lookup(ctx context.Context, identity, address string) (
	record records.Record, err error) {
	addr, err := parseAddress(address)
	if err != nil {
		return record, err
	}

	record, ok := i.db.Select(addr)
	if ok {
		return record, nil
	}

	result, err, _ := i.inFlight.Do(addr.String(), func() (any, error) {
		// another flight may have stored the record between the
		// cache check and this call
		record, ok := i.db.Select(addr)
		if ok {
			return record, nil
		}
		return i.fetchAndStore(ctx, identity, addr)
	})
	if err != nil {
		return records.Record{}, err
	}
	return result.(records.Record), nil
}

// Refresh fetches the address from the enrichment provider even if it
// is cached, still consuming a rate limit slot.
func (i *Intel) Refresh(ctx context.Context, identity, address string) (
	record records.Record, err error) {
	addr, err := parseAddress(address)
	if err != nil {
		return record, err
	}
	return i.fetchAndStore(ctx, identity, addr)
}

func parseAddress(address string) (addr netip.Addr, err error) {
	addr, err = netip.ParseAddr(strings.TrimSpace(address))
	if err != nil {
		return addr, fmt.Errorf("%w: %q", ErrAddressInvalid, address)
	}
	return addr.Unmap(), nil
}

func (i *Intel) fetchAndStore(ctx context.Context, identity string,
	addr netip.Addr) (record records.Record, err error) {
	allowed, retryAfter := i.limiter.Allow(identity)
	if !allowed {
		return record, fmt.Errorf("%w: retry in %s",
			ErrRateLimited, retryAfter.Round(retryAfterRounding))
	}

	providerRecord, err := i.fetcher.Fetch(ctx, addr)
	if err != nil {
		return record, i.mapFetchError(addr, err)
	}

	record = i.buildRecord(ctx, providerRecord)

	err = i.db.Update(record)
	if err != nil {
		// the store stays authoritative in memory, so the lookup
		// still succeeds
		i.logger.Error("persisting record: " + err.Error())
		i.notifier.Notify("persisting record for " + addr.String() +
			": " + err.Error())
	}

	return record, nil
}

// buildRecord classifies the provider record and adds the reverse DNS
// hostname when available.
func (i *Intel) buildRecord(ctx context.Context,
	providerRecord ipapi.Record) (record records.Record) {
	flags := classify.Classify(providerRecord)

	region := providerRecord.RegionName
	if region == "" {
		region = providerRecord.Region
	}

	record = records.Record{
		Address:     providerRecord.Address,
		Country:     providerRecord.Country,
		CountryCode: providerRecord.CountryCode,
		Region:      region,
		City:        providerRecord.City,
		ISP:         providerRecord.ISP,
		Org:         providerRecord.Org,
		ASN:         providerRecord.AS,
		Latitude:    providerRecord.Latitude,
		Longitude:   providerRecord.Longitude,
		Timezone:    providerRecord.Timezone,
		VPN:         flags.VPN,
		Proxy:       flags.Proxy,
		Hosting:     flags.Hosting,
		VPNProvider: flags.VPNProvider,
		Raw:         providerRecord.RawFields(),
		FetchedAt:   i.timeNow(),
	}

	if i.reverser != nil {
		hostname, err := i.reverser.Lookup(ctx, providerRecord.Address)
		if err != nil {
			i.logger.Debug("reverse DNS for " +
				providerRecord.Address.String() + ": " + err.Error())
		} else {
			record.Hostname = hostname
		}
	}

	return record
}

const retryAfterRounding = 100 * time.Millisecond

func (i *Intel) mapFetchError(addr netip.Addr, err error) error {
	switch {
	case errors.Is(err, ipapi.ErrAddressInvalid):
		return fmt.Errorf("%w: %s", ErrAddressInvalid, addr)
	case errors.Is(err, ipapi.ErrAuth):
		i.notifier.Notify("enrichment authentication failed: " + err.Error())
		return fmt.Errorf("%w: %w", ErrEnrichmentAuth, err)
	case errors.Is(err, ipapi.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrAddressNotFound, addr)
	case errors.Is(err, ipapi.ErrTooManyRequests),
		errors.Is(err, ipapi.ErrBadHTTPStatus),
		errors.Is(err, ipapi.ErrProviderFailure):
		return fmt.Errorf("%w: %w", ErrEnrichmentUnavailable, err)
	default: // network error or timeout
		return fmt.Errorf("%w: %w", ErrEnrichmentUnavailable, err)
	}
}
