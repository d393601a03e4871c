package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/browsing"
)

func GetFilterOptions(service browsing.BrowsingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, r, "GetFilterOptions", service.FilterOptions())
	}
}
