package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/browsing"
)

func GetPerson(service browsing.BrowsingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		detail, err := service.GetPerson(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, "GetPerson", err)
			return
		}

		writeResponse(w, r, "GetPerson", detail)
	}
}
