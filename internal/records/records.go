package records

import (
	"fmt"
	"net/netip"
	"time"
)

// Record contains all the intelligence gathered for a single IP address.
type Record struct {
	Address     netip.Addr `json:"address"`
	Country     string     `json:"country,omitempty"`
	CountryCode string     `json:"country_code,omitempty"`
	Region      string     `json:"region,omitempty"`
	City        string     `json:"city,omitempty"`
	ISP         string     `json:"isp,omitempty"`
	Org         string     `json:"org,omitempty"`
	ASN         string     `json:"asn,omitempty"`
	Latitude    float64    `json:"latitude,omitempty"`
	Longitude   float64    `json:"longitude,omitempty"`
	Timezone    string     `json:"timezone,omitempty"`
	Hostname    string     `json:"hostname,omitempty"`
	VPN         bool       `json:"vpn"`
	Proxy       bool       `json:"proxy"`
	Hosting     bool       `json:"hosting"`
	VPNProvider string     `json:"vpn_provider,omitempty"`
	// Raw holds the provider response fields as received, so that
	// a classification rule change can be replayed without refetching.
	Raw       map[string]string `json:"raw,omitempty"`
	FetchedAt time.Time         `json:"fetched_at"`
}

func (r Record) String() string {
	location := r.City
	if location != "" && r.Country != "" {
		location += ", "
	}
	location += r.Country
	s := fmt.Sprintf("%s: %s (%s)", r.Address, location, r.ISP)
	switch {
	case r.VPN:
		s += " [VPN"
		if r.VPNProvider != "" {
			s += ": " + r.VPNProvider
		}
		s += "]"
	case r.Proxy:
		s += " [proxy]"
	}
	if r.Hosting {
		s += " [hosting]"
	}
	return s
}

// TextFields returns every textual field of the record, used for
// substring searching.
func (r Record) TextFields() []string {
	return []string{
		r.Address.String(),
		r.Country,
		r.CountryCode,
		r.Region,
		r.City,
		r.ISP,
		r.Org,
		r.ASN,
		r.Timezone,
		r.Hostname,
		r.VPNProvider,
	}
}
