package handler

import (
	"net/http"

	"github.com/montelucce/dashboard-api/internal/domain"
	"github.com/montelucce/dashboard-api/internal/usecases/reporting"
	"github.com/montelucce/dashboard-api/pkg/apiErrors"
	"github.com/montelucce/dashboard-api/pkg/log"
)

// GetRevenue retorna o relatório de receita do período selecionado,
// agregado por dia (padrão) ou por mês
func GetRevenue(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periodParam := r.URL.Query().Get("period")
		if periodParam == "" {
			periodParam = domain.PeriodLast30Days.String()
		}

		period, err := domain.ParsePeriod(periodParam)
		if err != nil {
			logger.WithField("period", periodParam).Warn("revenue: período inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		groupBy := r.URL.Query().Get("group_by")

		report, err := service.Revenue(period, groupBy)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"period":   period.String(),
				"group_by": groupBy,
			}).Error("revenue: erro ao montar relatório")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"period":       period.String(),
			"group_by":     report.GroupBy,
			"orders_count": report.Summary.OrdersCount,
		}).Info("revenue: relatório gerado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("revenue: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// GetAvailablePeriods retorna os seletores de período suportados
func GetAvailablePeriods(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periods := service.AvailablePeriods()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(periods); err != nil {
			logger.WithError(err).Error("periods: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
