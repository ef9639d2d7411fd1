package ratelimit

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gotree"
)

type Settings struct {
	// Limit is the maximum number of admitted calls per identity
	// within each window.
	Limit *uint
	// Window is the fixed window duration.
	Window time.Duration
}

func (s *Settings) SetDefaults() {
	const defaultLimit = 10
	s.Limit = gosettings.DefaultPointer(s.Limit, uint(defaultLimit))
	const defaultWindow = time.Minute
	s.Window = gosettings.DefaultComparable(s.Window, defaultWindow)
}

func (s Settings) MergeWith(other Settings) (merged Settings) {
	merged.Limit = gosettings.OverrideWithPointer(other.Limit, s.Limit)
	merged.Window = gosettings.DefaultComparable(s.Window, other.Window)
	return merged
}

var (
	ErrLimitIsZero    = errors.New("limit is zero")
	ErrWindowTooSmall = errors.New("window is too small")
)

func (s Settings) Validate() (err error) {
	if *s.Limit == 0 {
		return fmt.Errorf("%w", ErrLimitIsZero)
	}
	const minAllowableWindow = time.Second
	if s.Window < minAllowableWindow {
		return fmt.Errorf("%w: %s is below the minimum %s",
			ErrWindowTooSmall, s.Window, minAllowableWindow)
	}
	return nil
}

func (s Settings) String() string {
	return s.ToLinesNode().String()
}

func (s Settings) ToLinesNode() *gotree.Node {
	node := gotree.New("Rate limit")
	node.Appendf("Limit: %d calls", *s.Limit)
	node.Appendf("Window: %s", s.Window)
	return node
}
