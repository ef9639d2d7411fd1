package ipapi

import (
	"net/netip"
	"strconv"
)

// Record is the provider data for a single address, as returned by
// the ip-api.com JSON API.
type Record struct {
	Address     netip.Addr
	Country     string
	CountryCode string
	Region      string
	RegionName  string
	City        string
	Zip         string
	Latitude    float64
	Longitude   float64
	Timezone    string
	ISP         string
	Org         string
	AS          string
	Proxy       bool
	Hosting     bool
}

// RawFields returns the provider fields as a flat string mapping,
// keyed by the provider's own field names.
func (r Record) RawFields() map[string]string {
	fields := map[string]string{
		"country":     r.Country,
		"countryCode": r.CountryCode,
		"region":      r.Region,
		"regionName":  r.RegionName,
		"city":        r.City,
		"zip":         r.Zip,
		"lat":         strconv.FormatFloat(r.Latitude, 'f', -1, 64),
		"lon":         strconv.FormatFloat(r.Longitude, 'f', -1, 64),
		"timezone":    r.Timezone,
		"isp":         r.ISP,
		"org":         r.Org,
		"as":          r.AS,
		"proxy":       strconv.FormatBool(r.Proxy),
		"hosting":     strconv.FormatBool(r.Hosting),
	}
	for key, value := range fields {
		if value == "" {
			delete(fields, key)
		}
	}
	return fields
}
