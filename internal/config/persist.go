package config

import (
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Persist struct {
	// Period is how often dirty records are flushed to disk.
	// A period of zero disables the periodic flush.
	Period *time.Duration
}

func (p *Persist) setDefaults() {
	const defaultPeriod = time.Minute
	p.Period = gosettings.DefaultPointer(p.Period, defaultPeriod)
}

func (p Persist) Validate() (err error) {
	return nil
}

func (p Persist) String() string {
	return p.toLinesNode().String()
}

func (p Persist) toLinesNode() *gotree.Node {
	if *p.Period == 0 {
		return gotree.New("Persist: disabled")
	}
	node := gotree.New("Persist")
	node.Appendf("Period: %s", *p.Period)
	return node
}

func (p *Persist) read(reader *reader.Reader) (err error) {
	p.Period, err = reader.DurationPtr("PERSIST_PERIOD")
	return err
}
