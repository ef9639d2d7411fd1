package classify

type flag uint8

const (
	flagVPN flag = iota
	flagProxy
	flagHosting
)

type field uint8

const (
	// fieldISPOrg matches against the ISP and organization names.
	fieldISPOrg field = iota
	// fieldAS matches against the autonomous system name.
	fieldAS
)

type rule struct {
	field    field
	fragment string // lowercase substring to match
	flag     flag
	label    string // provider display name, for VPN rules
}

// rules are evaluated in order; the first matching VPN rule decides
// the provider label. Extending detection is a data change only.
var rules = []rule{ //nolint:gochecknoglobals
	// Commercial VPN providers, matched in ISP and organization names.
	{fieldISPOrg, "mullvad", flagVPN, "Mullvad"},
	{fieldISPOrg, "protonvpn", flagVPN, "Proton"},
	{fieldISPOrg, "proton ag", flagVPN, "Proton"},
	{fieldISPOrg, "proton", flagVPN, "Proton"},
	{fieldISPOrg, "nordvpn", flagVPN, "NordVPN"},
	{fieldISPOrg, "expressvpn", flagVPN, "ExpressVPN"},
	{fieldISPOrg, "surfshark", flagVPN, "Surfshark"},
	{fieldISPOrg, "cyberghost", flagVPN, "CyberGhost"},
	{fieldISPOrg, "private internet access", flagVPN, "PIA"},
	{fieldISPOrg, "privateinternetaccess", flagVPN, "PIA"},
	{fieldISPOrg, "ipvanish", flagVPN, "IPVanish"},
	{fieldISPOrg, "tunnelbear", flagVPN, "TunnelBear"},
	{fieldISPOrg, "windscribe", flagVPN, "Windscribe"},
	{fieldISPOrg, "hide.me", flagVPN, "Hide.me"},
	{fieldISPOrg, "vyprvpn", flagVPN, "VyprVPN"},
	{fieldISPOrg, "vypr", flagVPN, "VyprVPN"},
	{fieldISPOrg, "purevpn", flagVPN, "PureVPN"},
	{fieldISPOrg, "hotspot shield", flagVPN, "Hotspot Shield"},
	{fieldISPOrg, "zenmate", flagVPN, "ZenMate"},
	{fieldISPOrg, "astrill", flagVPN, "Astrill"},
	{fieldISPOrg, "ivpn", flagVPN, "IVPN"},
	{fieldISPOrg, "perfect privacy", flagVPN, "Perfect Privacy"},
	{fieldISPOrg, "azirevpn", flagVPN, "AzireVPN"},
	{fieldAS, "mullvad", flagVPN, "Mullvad"},
	{fieldAS, "nordvpn", flagVPN, "NordVPN"},
	{fieldAS, "expressvpn", flagVPN, "ExpressVPN"},

	// Hosting and cloud providers, for when the provider's own
	// hosting boolean is missing from the raw data.
	{fieldISPOrg, "amazon", flagHosting, ""},
	{fieldISPOrg, "google cloud", flagHosting, ""},
	{fieldISPOrg, "microsoft azure", flagHosting, ""},
	{fieldISPOrg, "digitalocean", flagHosting, ""},
	{fieldISPOrg, "hetzner", flagHosting, ""},
	{fieldISPOrg, "ovh", flagHosting, ""},
	{fieldISPOrg, "linode", flagHosting, ""},
	{fieldISPOrg, "vultr", flagHosting, ""},
	{fieldISPOrg, "contabo", flagHosting, ""},
	{fieldISPOrg, "scaleway", flagHosting, ""},
	{fieldISPOrg, "oracle cloud", flagHosting, ""},
	{fieldAS, "amazon", flagHosting, ""},
	{fieldAS, "hetzner", flagHosting, ""},
	{fieldAS, "ovh", flagHosting, ""},
}
