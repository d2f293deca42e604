package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/montelucce/dashboard-api/internal/domain"
	"github.com/montelucce/dashboard-api/internal/usecases/exporting"
	"github.com/montelucce/dashboard-api/internal/usecases/reporting"
	"github.com/montelucce/dashboard-api/pkg/apiErrors"
	"github.com/montelucce/dashboard-api/pkg/log"
)

// ExportOrders baixa o CSV dos pedidos do período selecionado
func ExportOrders(reportService reporting.Reporter, exportService exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		periodParam := r.URL.Query().Get("period")
		if periodParam == "" {
			periodParam = domain.PeriodLast30Days.String()
		}

		period, err := domain.ParsePeriod(periodParam)
		if err != nil {
			logger.WithField("period", periodParam).Warn("export: período inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
			return
		}

		orders, err := reportService.OrdersByPeriod(period)
		if err != nil {
			logger.WithError(err).WithField("period", period.String()).
				Error("export: erro ao carregar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "erro ao carregar pedidos", nil)
			return
		}

		filename := exportService.Filename(period, time.Now())

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := exportService.Export(w, orders); err != nil {
			// Cabeçalhos já foram enviados; só resta registrar a falha
			logger.WithError(err).WithField("period", period.String()).
				Error("export: erro ao gerar CSV")
			return
		}

		logger.WithFields(log.Fields{
			"period":   period.String(),
			"orders":   len(orders),
			"filename": filename,
		}).Info("export: CSV gerado com sucesso")
	})
}
