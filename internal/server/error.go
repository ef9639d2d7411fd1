package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/liforra/ipintel/internal/intel"
	"github.com/liforra/ipintel/internal/query"
)

type errJSONWrapper struct {
	Error string `json:"error"`
}

func httpError(w http.ResponseWriter, status int, errString string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if errString == "" {
		errString = http.StatusText(status)
	}
	body := errJSONWrapper{Error: errString}
	_ = json.NewEncoder(w).Encode(body)
}

// lookupError writes the HTTP status matching the typed error from
// the intelligence layer.
func lookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, intel.ErrAddressInvalid):
		httpError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, intel.ErrRateLimited):
		httpError(w, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, intel.ErrAddressNotFound):
		httpError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, intel.ErrEnrichmentAuth),
		errors.Is(err, intel.ErrEnrichmentUnavailable):
		httpError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, query.ErrPageNotFound):
		httpError(w, http.StatusNotFound, err.Error())
	default:
		httpError(w, http.StatusInternalServerError, err.Error())
	}
}
