package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/montelucce/dashboard-api/internal/usecases/ordering"
	"github.com/montelucce/dashboard-api/pkg/apiErrors"
	"github.com/montelucce/dashboard-api/pkg/log"
)

// CalculateOrderProfit executa o fluxo calcular-e-salvar da calculadora
// de lucro para um pedido
func CalculateOrderProfit(service ordering.OrderService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("order_id", id).Info("profit: calculando lucro do pedido")

		input := &ordering.ProfitInput{}
		if err := json.NewDecoder(r.Body).Decode(input); err != nil {
			logger.WithError(err).Warn("profit: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "corpo da requisição inválido", nil)
			return
		}

		result, err := service.CalculateProfit(r.Context(), id, input)
		if err != nil {
			writeOrderingError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"order_id": id,
			"margin":   result.Margin,
		}).Info("profit: cálculo concluído")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("profit: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}
