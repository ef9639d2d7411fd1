package config

import (
	"fmt"
	"strconv"

	"github.com/qdm12/gosettings/reader"
)

// readIPAPI reads the enrichment provider settings.
func (c *Config) readIPAPI(r *reader.Reader) {
	c.IPAPI.BaseURL = r.Get("IPAPI_BASE_URL", reader.ForceLowercase(false))
	c.IPAPI.Key = r.Get("IPAPI_KEY", reader.ForceLowercase(false))
}

// readRateLimit reads the per-identity rate limit settings.
func (c *Config) readRateLimit(r *reader.Reader) (err error) {
	limitStringPtr := r.Get("RATE_LIMIT")
	if limitStringPtr != nil {
		limit, err := strconv.ParseUint(*limitStringPtr, 10, 32)
		if err != nil {
			return fmt.Errorf("environment variable RATE_LIMIT: %w", err)
		}
		limitUint := uint(limit)
		c.RateLimit.Limit = &limitUint
	}

	c.RateLimit.Window, err = r.Duration("RATE_LIMIT_WINDOW")
	return err
}

// readRDNS reads the reverse DNS enrichment settings.
func (c *Config) readRDNS(r *reader.Reader) (err error) {
	c.RDNS.Enabled, err = r.BoolPtr("RDNS_ENABLED")
	if err != nil {
		return err
	}

	c.RDNS.Nameserver = r.Get("RDNS_NAMESERVER")

	c.RDNS.Timeout, err = r.Duration("RDNS_TIMEOUT")
	return err
}

// readNotify reads the shoutrrr notification settings.
func (c *Config) readNotify(r *reader.Reader) {
	c.Notify.Addresses = r.CSV("SHOUTRRR_ADDRESSES", reader.ForceLowercase(false))
}
