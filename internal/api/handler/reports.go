package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ranking"
)

// GetSpendingMovement retorna as maiores quedas e altas de gasto entre as duas janelas.
// Período inválido cai no padrão sem erro.
func GetSpendingMovement(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.GetSpendingMovement(r.Context(), r.URL.Query().Get("period"))
		if err != nil {
			writeServiceError(w, r, "GetSpendingMovement", err)
			return
		}

		writeResponse(w, r, "GetSpendingMovement", report)
	}
}
