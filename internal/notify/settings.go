package notify

import (
	"fmt"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/types"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type Settings struct {
	// Addresses are shoutrrr service addresses. An empty slice
	// disables notifications.
	Addresses []string
	Params    types.Params
	Logger    Erroer
}

func (s *Settings) SetDefaults() {
	s.Addresses = gosettings.DefaultSlice(s.Addresses, []string{})
	if s.Params == nil {
		s.Params = types.Params{
			"title": "IP intel",
		}
	}
	s.Logger = gosettings.DefaultComparable[Erroer](s.Logger, &noopLogger{})
}

func (s Settings) MergeWith(other Settings) (merged Settings) {
	merged.Addresses = gosettings.OverrideWithSlice(other.Addresses, s.Addresses)
	merged.Params = s.Params
	if merged.Params == nil {
		merged.Params = other.Params
	}
	merged.Logger = gosettings.DefaultComparable[Erroer](s.Logger, other.Logger)
	return merged
}

func (s Settings) Validate() (err error) {
	_, err = shoutrrr.CreateSender(s.Addresses...)
	if err != nil {
		return fmt.Errorf("shoutrrr addresses: %w", err)
	}
	return nil
}

func (s Settings) String() string {
	return s.ToLinesNode().String()
}

func (s Settings) ToLinesNode() *gotree.Node {
	if len(s.Addresses) == 0 {
		return gotree.New("Notifications: disabled")
	}

	node := gotree.New("Notifications")
	childNode := node.Appendf("Addresses")
	for _, address := range s.Addresses {
		childNode.Appendf(address)
	}
	return node
}

type noopLogger struct{}

func (l noopLogger) Error(_ string) {}
