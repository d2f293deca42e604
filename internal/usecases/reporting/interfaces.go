package reporting

import (
	"github.com/montelucce/dashboard-api/internal/domain"
)

// Reporter define a consulta de receita do dashboard: filtragem por
// período e agregação por dia ou por mês
type Reporter interface {
	// Revenue monta o relatório completo (resumo + buckets) de um período
	Revenue(period domain.Period, groupBy string) (*domain.RevenueReport, error)

	// OrdersByPeriod lista os pedidos que caem no período informado
	OrdersByPeriod(period domain.Period) ([]*domain.Order, error)

	// FilterByPeriod aplica o filtro de período a uma lista já carregada
	FilterByPeriod(orders []*domain.Order, period domain.Period) []*domain.Order

	// AvailablePeriods retorna os seletores de período suportados
	AvailablePeriods() *domain.AvailablePeriods
}
