// Package server exposes the read and administrative operations of
// the intelligence layer over HTTP. It returns structured data only;
// rendering is the caller's concern.
package server

import (
	"github.com/qdm12/goservices/httpserver"
)

func New(address, rootURL string, intel IntelLayer, logger Logger) (
	server *httpserver.Server, err error) {
	handler := newHandler(rootURL, intel, logger)
	name := "server"
	return httpserver.New(httpserver.Settings{
		Handler: handler,
		Name:    &name,
		Address: &address,
		Logger:  logger,
	})
}
