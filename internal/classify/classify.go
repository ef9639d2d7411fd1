// Package classify derives VPN, proxy and hosting flags from provider
// data. Classification is pure and deterministic: explicit provider
// booleans are preferred, and heuristic rules only ever set a flag when
// a known provider name fragment matches.
package classify

import (
	"strings"

	"github.com/liforra/ipintel/internal/ipapi"
)

// Flags are the anomaly flags derived for an address.
type Flags struct {
	VPN     bool
	Proxy   bool
	Hosting bool
	// VPNProvider is the display name of the matched VPN provider,
	// empty when VPN is false.
	VPNProvider string
}

// Classify derives flags from the given provider record. Identical
// input always yields identical flags, and unmatched input yields
// all-false flags.
func Classify(record ipapi.Record) (flags Flags) {
	flags.Proxy = record.Proxy
	flags.Hosting = record.Hosting

	for _, rule := range rules {
		if !strings.Contains(ruleText(record, rule.field), rule.fragment) {
			continue
		}
		switch rule.flag {
		case flagVPN:
			if !flags.VPN {
				flags.VPN = true
				flags.VPNProvider = rule.label
			}
		case flagHosting:
			flags.Hosting = true
		case flagProxy:
			flags.Proxy = true
		}
	}

	return flags
}

func ruleText(record ipapi.Record, field field) string {
	switch field {
	case fieldISPOrg:
		return strings.ToLower(record.ISP + " " + record.Org)
	case fieldAS:
		return strings.ToLower(record.AS)
	default:
		return ""
	}
}
