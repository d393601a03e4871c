package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/browsing"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/ranking"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Companies(service browsing.BrowsingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/companies",
			Method:  http.MethodGet,
			Handler: ListCompanies(service),
		},
		{
			Path:    "/v1/companies/:domain",
			Method:  http.MethodGet,
			Handler: GetCompany(service),
		},
	}
}

func People(service browsing.BrowsingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/people/:id",
			Method:  http.MethodGet,
			Handler: GetPerson(service),
		},
	}
}

func Filters(service browsing.BrowsingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Reports(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/spending-movement",
			Method:  http.MethodGet,
			Handler: GetSpendingMovement(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
