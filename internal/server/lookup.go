package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *handlers) lookup(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	record, err := h.intel.Lookup(r.Context(), identity(r), address)
	if err != nil {
		lookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(record)
	if err != nil {
		h.logger.Error("encoding record: " + err.Error())
		httpError(w, http.StatusInternalServerError, "")
	}
}

func (h *handlers) refresh(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")

	record, err := h.intel.Refresh(r.Context(), identity(r), address)
	if err != nil {
		lookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(record)
	if err != nil {
		h.logger.Error("encoding record: " + err.Error())
		httpError(w, http.StatusInternalServerError, "")
	}
}
