package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

// writeServiceError traduz os erros dos casos de uso para a resposta padronizada
func writeServiceError(w http.ResponseWriter, r *http.Request, area string, err error) {
	var browsingErr *browsing.BrowsingError
	if errors.As(err, &browsingErr) {
		if apiErrors.StatusFor(browsingErr.Code) >= http.StatusInternalServerError {
			log.ForContext(r.Context()).WithError(err).Errorf("%s: %s", area, browsingErr.Details)
		}
		apiErrors.WriteError(w, browsingErr.Code, browsingErr.Details, nil)
		return
	}

	var rankingErr *ranking.RankingError
	if errors.As(err, &rankingErr) {
		log.ForContext(r.Context()).WithError(err).Errorf("%s: %s", area, rankingErr.Details)
		apiErrors.WriteError(w, rankingErr.Code, rankingErr.Details, nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Errorf("%s: erro inesperado", area)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

func writeResponse(w http.ResponseWriter, r *http.Request, area string, payload any) {
	if err := utils.WriteJSON(w, http.StatusOK, payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Errorf("%s: erro ao enviar resposta", area)
	}
}
