package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
)

// ListCompanies retorna a página de empresas com filtros, ordenação e links de navegação
func ListCompanies(service browsing.BrowsingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := domain.ParseCompanyListingQuery(r.URL.Query())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPagination, "Parâmetro page deve ser um inteiro positivo", map[string]string{
				"page": r.URL.Query().Get("page"),
			})
			return
		}

		listing, err := service.ListCompanies(r.Context(), query)
		if err != nil {
			writeServiceError(w, r, "ListCompanies", err)
			return
		}

		writeResponse(w, r, "ListCompanies", listing)
	}
}

// GetCompany retorna o detalhe da empresa pelo domínio
func GetCompany(service browsing.BrowsingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		companyDomain := httprouter.ParamsFromContext(r.Context()).ByName("domain")

		detail, err := service.GetCompany(r.Context(), companyDomain)
		if err != nil {
			writeServiceError(w, r, "GetCompany", err)
			return
		}

		writeResponse(w, r, "GetCompany", detail)
	}
}
