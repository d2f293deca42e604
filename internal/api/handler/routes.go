package handler

import (
	"net/http"

	"github.com/montelucce/dashboard-api/internal/api/handler/router"
	"github.com/montelucce/dashboard-api/internal/usecases/exporting"
	"github.com/montelucce/dashboard-api/internal/usecases/ordering"
	"github.com/montelucce/dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Orders(orderService ordering.OrderService, reportService reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orders",
			Method:  http.MethodPost,
			Handler: CreateOrder(orderService),
		},
		{
			Path:    "/v1/orders",
			Method:  http.MethodGet,
			Handler: ListOrders(orderService, reportService),
		},
		{
			Path:    "/v1/orders/:id/profit",
			Method:  http.MethodPost,
			Handler: CalculateOrderProfit(orderService),
		},
	}
}

func Revenue(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue",
			Method:  http.MethodGet,
			Handler: GetRevenue(service),
		},
		{
			Path:    "/v1/revenue/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
	}
}

func Export(reportService reporting.Reporter, exportService exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orders/export",
			Method:  http.MethodGet,
			Handler: ExportOrders(reportService, exportService),
		},
	}
}
