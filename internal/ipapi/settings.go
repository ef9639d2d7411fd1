package ipapi

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type Settings struct {
	// BaseURL is the provider base URL. It defaults to the free
	// endpoint; set it to the pro endpoint when using an API key.
	BaseURL *string
	// Key is the provider API key. It can be empty for the free
	// endpoint.
	Key *string
}

func (s *Settings) SetDefaults() {
	s.BaseURL = gosettings.DefaultPointer(s.BaseURL, "http://ip-api.com")
	s.Key = gosettings.DefaultPointer(s.Key, "")
}

func (s Settings) MergeWith(other Settings) (merged Settings) {
	merged.BaseURL = gosettings.OverrideWithPointer(other.BaseURL, s.BaseURL)
	merged.Key = gosettings.OverrideWithPointer(other.Key, s.Key)
	return merged
}

var ErrBaseURLNotValid = errors.New("base URL is not valid")

func (s Settings) Validate() (err error) {
	_, err = url.Parse(*s.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBaseURLNotValid, err)
	}
	return nil
}

func (s Settings) String() string {
	return s.ToLinesNode().String()
}

func (s Settings) ToLinesNode() *gotree.Node {
	node := gotree.New("IP API")
	node.Appendf("Base URL: %s", *s.BaseURL)
	if *s.Key != "" {
		node.Appendf("Key: [set]")
	}
	return node
}
