package handler

import (
	"errors"
	"net/http"

	"github.com/montelucce/dashboard-api/internal/domain"
	"github.com/montelucce/dashboard-api/internal/usecases/ordering"
	"github.com/montelucce/dashboard-api/internal/usecases/reporting"
	"github.com/montelucce/dashboard-api/pkg/apiErrors"
	"github.com/montelucce/dashboard-api/pkg/log"
)

// CreateOrder registra um pedido enviado pelo formulário da loja
func CreateOrder(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		input := &domain.NewOrderInput{}
		if err := json.NewDecoder(r.Body).Decode(input); err != nil {
			logger.WithError(err).Warn("orders: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido", nil)
			return
		}

		order, err := service.CreateOrder(input)
		if err != nil {
			writeOrderingError(w, logger, err)
			return
		}

		logger.WithField("order_id", order.ID).Info("orders: pedido registrado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(order); err != nil {
			logger.WithError(err).Error("orders: erro ao codificar resposta")
		}
	})
}

// ListOrders retorna os pedidos em ordem de data decrescente; aceita um
// seletor de período opcional na query string
func ListOrders(orderService ordering.OrderService, reportService reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var period domain.Period
		if periodParam := r.URL.Query().Get("period"); periodParam != "" {
			parsed, err := domain.ParsePeriod(periodParam)
			if err != nil {
				logger.WithField("period", periodParam).Warn("orders: período inválido")
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
				return
			}
			period = parsed
		}

		orders, err := orderService.ListOrders()
		if err != nil {
			logger.WithError(err).Error("orders: erro ao listar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "erro ao listar pedidos", nil)
			return
		}

		if period != "" {
			orders = reportService.FilterByPeriod(orders, period)
		}

		logger.WithField("orders_returned", len(orders)).Info("orders: listagem concluída")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(orders); err != nil {
			logger.WithError(err).Error("orders: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// writeOrderingError traduz erros do caso de uso de pedidos para a
// resposta padronizada da API
func writeOrderingError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, ordering.ErrOrderNotFound):
		apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, err.Error(), nil)
	case errors.Is(err, ordering.ErrOrderIDRequired),
		errors.Is(err, ordering.ErrMissingRequiredFields):
		logger.WithError(err).Warn("orders: dados obrigatórios ausentes")
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, ordering.ErrInvalidAmount),
		errors.Is(err, ordering.ErrNegativeAmount):
		logger.WithError(err).Warn("orders: valores inválidos")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logger.WithError(err).Error("orders: erro interno")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "erro ao processar pedido", nil)
	}
}
