package server

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type handlers struct {
	intel  IntelLayer
	logger Logger
}

func newHandler(rootURL string, intel IntelLayer, logger Logger) http.Handler {
	handlers := &handlers{
		intel:  intel,
		logger: logger,
	}

	router := chi.NewRouter()
	router.Use(middleware.CleanPath)

	router.Get(rootURL+"/api/v1/records", handlers.getRecords)
	router.Get(rootURL+"/api/v1/records/{address}", handlers.lookup)
	router.Post(rootURL+"/api/v1/records/{address}/refresh", handlers.refresh)
	router.Get(rootURL+"/api/v1/search", handlers.search)
	router.Get(rootURL+"/api/v1/stats", handlers.stats)
	router.Post(rootURL+"/api/v1/reload", handlers.reload)

	return router
}

// identity extracts the rate limiting identity of the request, which
// is the client IP address.
func identity(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
