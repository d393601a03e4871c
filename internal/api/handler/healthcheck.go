package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		response := map[string]string{
			"status":   "ok",
			"database": "ok",
			"time":     time.Now().Format(time.RFC3339),
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
			status = http.StatusServiceUnavailable
			response["status"] = "degraded"
			response["database"] = "unavailable"
		}

		if err := utils.WriteJSON(w, status, response); err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
