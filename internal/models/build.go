package models

type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

func (b BuildInformation) VersionString() string {
	const commitShortHashLength = 7
	if b.Version == "unknown" && b.Commit != "unknown" &&
		len(b.Commit) >= commitShortHashLength {
		return "dev-" + b.Commit[:commitShortHashLength]
	}
	return b.Version
}
