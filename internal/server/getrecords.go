package server

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func (h *handlers) getRecords(w http.ResponseWriter, r *http.Request) {
	pageNumber := uint(1)
	pageString := r.URL.Query().Get("page")
	if pageString != "" {
		page64, err := strconv.ParseUint(pageString, 10, 32)
		if err != nil {
			httpError(w, http.StatusBadRequest,
				"page number "+pageString+" is not valid")
			return
		}
		pageNumber = uint(page64)
	}

	page, err := h.intel.Paginate(pageNumber)
	if err != nil {
		lookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(page)
	if err != nil {
		h.logger.Error("encoding page: " + err.Error())
		httpError(w, http.StatusInternalServerError, "")
	}
}
