package health

import (
	"errors"
)

var ErrPersistenceBehind = errors.New("persistence is behind the in-memory store")

// MakeIsHealthy returns the health check function: the process is
// healthy while persisted records keep up with the in-memory store.
func MakeIsHealthy(db Dirtier, logger Logger) func() error {
	return func() (err error) {
		if db.IsDirty() {
			logger.Warn("unhealthy: " + ErrPersistenceBehind.Error())
			return ErrPersistenceBehind
		}
		return nil
	}
}
