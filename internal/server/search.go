package server

import (
	"encoding/json"
	"net/http"
)

func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	matching := h.intel.Search(term)

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(matching)
	if err != nil {
		h.logger.Error("encoding search results: " + err.Error())
		httpError(w, http.StatusInternalServerError, "")
	}
}

func (h *handlers) stats(w http.ResponseWriter, r *http.Request) {
	stats := h.intel.Stats()

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(stats)
	if err != nil {
		h.logger.Error("encoding stats: " + err.Error())
		httpError(w, http.StatusInternalServerError, "")
	}
}

func (h *handlers) reload(w http.ResponseWriter, _ *http.Request) {
	h.intel.Reload()
	w.WriteHeader(http.StatusNoContent)
}
