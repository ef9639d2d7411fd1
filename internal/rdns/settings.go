package rdns

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type Settings struct {
	// Enabled controls whether reverse DNS enrichment runs at all.
	Enabled *bool
	// Nameserver is the address of the DNS server to query.
	Nameserver *string
	Timeout    time.Duration
}

func (s *Settings) SetDefaults() {
	s.Enabled = gosettings.DefaultPointer(s.Enabled, true)
	s.Nameserver = gosettings.DefaultPointer(s.Nameserver, "1.1.1.1:53")
	const defaultTimeout = 3 * time.Second
	s.Timeout = gosettings.DefaultComparable(s.Timeout, defaultTimeout)
}

func (s Settings) MergeWith(other Settings) (merged Settings) {
	merged.Enabled = gosettings.OverrideWithPointer(other.Enabled, s.Enabled)
	merged.Nameserver = gosettings.OverrideWithPointer(other.Nameserver, s.Nameserver)
	merged.Timeout = gosettings.DefaultComparable(s.Timeout, other.Timeout)
	return merged
}

var (
	ErrNameserverHostEmpty = errors.New("nameserver host is empty")
	ErrNameserverPortEmpty = errors.New("nameserver port is empty")
)

func (s Settings) Validate() (err error) {
	host, port, err := net.SplitHostPort(*s.Nameserver)
	if err != nil {
		return fmt.Errorf("splitting host and port from nameserver: %w", err)
	}
	switch {
	case host == "":
		return fmt.Errorf("%w: in %s", ErrNameserverHostEmpty, *s.Nameserver)
	case port == "":
		return fmt.Errorf("%w: in %s", ErrNameserverPortEmpty, *s.Nameserver)
	}
	return nil
}

func (s Settings) String() string {
	return s.ToLinesNode().String()
}

func (s Settings) ToLinesNode() *gotree.Node {
	if !*s.Enabled {
		return gotree.New("Reverse DNS: disabled")
	}
	node := gotree.New("Reverse DNS")
	node.Appendf("Nameserver: %s", *s.Nameserver)
	node.Appendf("Timeout: %s", s.Timeout)
	return node
}
