package health

import (
	"github.com/qdm12/goservices/httpserver"
)

// NewServer creates an HTTP server answering health queries
// on the given address.
func NewServer(address string, logger Logger, check func() error) (
	server *httpserver.Server, err error) {
	name := "health"
	return httpserver.New(httpserver.Settings{
		Handler: newHandler(check),
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}
