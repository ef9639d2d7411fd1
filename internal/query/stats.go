package query

// Stats are aggregate statistics over the record store, always derived
// on demand and never persisted.
type Stats struct {
	TotalRecords    uint `json:"total_records"`
	UniqueCountries uint `json:"unique_countries"`
	VPNCount        uint `json:"vpn_count"`
	ProxyCount      uint `json:"proxy_count"`
	HostingCount    uint `json:"hosting_count"`
}

// Stats computes aggregate statistics in a single pass. The flag
// counts are independent: a record can count towards several.
func (q *Querier) Stats() (stats Stats) {
	allRecords := q.db.SelectAll()
	countries := make(map[string]struct{})

	stats.TotalRecords = uint(len(allRecords))
	for _, record := range allRecords {
		if record.Country != "" {
			countries[record.Country] = struct{}{}
		}
		if record.VPN {
			stats.VPNCount++
		}
		if record.Proxy {
			stats.ProxyCount++
		}
		if record.Hosting {
			stats.HostingCount++
		}
	}
	stats.UniqueCountries = uint(len(countries))
	return stats
}
