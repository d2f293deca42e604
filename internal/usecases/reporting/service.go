package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/montelucce/dashboard-api/infrastructure/repository"
	"github.com/montelucce/dashboard-api/internal/domain"
	"github.com/montelucce/dashboard-api/pkg/log"
	"github.com/shopspring/decimal"
)

const (
	GroupByDay   = "day"
	GroupByMonth = "month"
)

// Service implementa Reporter. O relógio é injetado para manter a
// resolução de período determinística; todos os cálculos de calendário
// usam o fuso de referência configurado.
type Service struct {
	orderRepository repository.OrderRepository
	location        *time.Location
	nowFn           func() time.Time
}

// NewService cria o serviço de relatórios usando o relógio do sistema
func NewService(orderRepo repository.OrderRepository, location *time.Location) *Service {
	return &Service{
		orderRepository: orderRepo,
		location:        location,
		nowFn:           time.Now,
	}
}

// WithClock substitui a fonte de "agora" (testes e reprocessamentos)
func (s *Service) WithClock(nowFn func() time.Time) *Service {
	s.nowFn = nowFn
	return s
}

// Revenue carrega os pedidos, filtra pelo período e agrega por dia ou
// por mês, junto com o resumo dos cards
func (s *Service) Revenue(period domain.Period, groupBy string) (*domain.RevenueReport, error) {
	if groupBy == "" {
		groupBy = GroupByDay
	}
	if groupBy != GroupByDay && groupBy != GroupByMonth {
		return nil, fmt.Errorf("agrupamento inválido: %q", groupBy)
	}

	orders, err := s.orderRepository.ListByDateDesc()
	if err != nil {
		log.L.WithError(err).WithField("period", period.String()).
			Error("revenue: erro ao carregar pedidos")
		return nil, err
	}

	rng := period.Range(s.nowFn(), s.location)
	filtered := filterByRange(orders, rng)

	report := &domain.RevenueReport{
		Period:  period,
		GroupBy: groupBy,
		Summary: s.Summarize(filtered),
	}

	switch groupBy {
	case GroupByDay:
		report.Daily = s.AggregateByDay(filtered, rng)
	case GroupByMonth:
		report.Monthly = s.AggregateByMonth(filtered)
	}

	return report, nil
}

// OrdersByPeriod lista os pedidos do período, mantendo a ordenação por
// data decrescente vinda do repositório
func (s *Service) OrdersByPeriod(period domain.Period) ([]*domain.Order, error) {
	orders, err := s.orderRepository.ListByDateDesc()
	if err != nil {
		return nil, err
	}

	return s.FilterByPeriod(orders, period), nil
}

// FilterByPeriod mantém apenas os pedidos cuja data cai no intervalo
// resolvido do período, bordas incluídas. Lista vazia não é erro.
func (s *Service) FilterByPeriod(orders []*domain.Order, period domain.Period) []*domain.Order {
	return filterByRange(orders, period.Range(s.nowFn(), s.location))
}

func filterByRange(orders []*domain.Order, rng domain.DateRange) []*domain.Order {
	filtered := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if rng.Contains(order.Date) {
			filtered = append(filtered, order)
		}
	}
	return filtered
}

// AggregateByDay soma receita, custo e lucro por dia-calendário do fuso
// de referência. Todos os dias do intervalo são pré-semeados com zeros
// para que o gráfico tenha um eixo contínuo mesmo sem pedidos.
func (s *Service) AggregateByDay(orders []*domain.Order, rng domain.DateRange) []*domain.DailyBucket {
	buckets := make(map[time.Time]*domain.DailyBucket)

	for day := s.dayOf(rng.Start); !day.After(rng.End); day = day.AddDate(0, 0, 1) {
		buckets[day] = &domain.DailyBucket{
			Date:    day,
			Revenue: decimal.Zero,
			Cost:    decimal.Zero,
			Profit:  decimal.Zero,
		}
	}

	for _, order := range orders {
		day := s.dayOf(order.Date)

		bucket, ok := buckets[day]
		if !ok {
			// Pedido fora do intervalo semeado; entra mesmo assim para
			// que a soma dos buckets feche com a soma dos pedidos
			bucket = &domain.DailyBucket{Date: day}
			buckets[day] = bucket
		}

		bucket.Revenue = bucket.Revenue.Add(order.Revenue())
		bucket.Cost = bucket.Cost.Add(order.Cost())
		bucket.Profit = bucket.Profit.Add(order.ProfitOrZero())
	}

	result := make([]*domain.DailyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	return result
}

// AggregateByMonth soma receita, custo e lucro por (ano, mês). Apenas
// meses com pedidos aparecem, em ordem crescente.
func (s *Service) AggregateByMonth(orders []*domain.Order) []*domain.MonthlyBucket {
	type monthKey struct {
		year  int
		month time.Month
	}

	buckets := make(map[monthKey]*domain.MonthlyBucket)
	keys := make([]monthKey, 0)

	for _, order := range orders {
		date := order.Date.In(s.location)
		key := monthKey{year: date.Year(), month: date.Month()}

		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MonthlyBucket{
				Month:   time.Date(key.year, key.month, 1, 0, 0, 0, 0, s.location).Format("01-2006"),
				Revenue: decimal.Zero,
				Cost:    decimal.Zero,
				Profit:  decimal.Zero,
			}
			buckets[key] = bucket
			keys = append(keys, key)
		}

		bucket.Revenue = bucket.Revenue.Add(order.Revenue())
		bucket.Cost = bucket.Cost.Add(order.Cost())
		bucket.Profit = bucket.Profit.Add(order.ProfitOrZero())
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	result := make([]*domain.MonthlyBucket, 0, len(keys))
	for _, key := range keys {
		result = append(result, buckets[key])
	}

	return result
}

// Summarize calcula os totais dos cards do dashboard
func (s *Service) Summarize(orders []*domain.Order) *domain.RevenueSummary {
	summary := &domain.RevenueSummary{
		TotalRevenue:  decimal.Zero,
		TotalProfit:   decimal.Zero,
		AverageTicket: decimal.Zero,
		OrdersCount:   len(orders),
	}

	for _, order := range orders {
		summary.TotalRevenue = summary.TotalRevenue.Add(order.Revenue())
		summary.TotalProfit = summary.TotalProfit.Add(order.ProfitOrZero())
	}

	if len(orders) > 0 {
		summary.AverageTicket = summary.TotalRevenue.
			Div(decimal.NewFromInt(int64(len(orders)))).
			Round(2)
	}

	return summary
}

// AvailablePeriods retorna os seletores de período suportados pela API
func (s *Service) AvailablePeriods() *domain.AvailablePeriods {
	return domain.ListAvailablePeriods()
}

// dayOf normaliza um instante para a meia-noite do dia correspondente no
// fuso de referência; é a chave de bucket diário
func (s *Service) dayOf(t time.Time) time.Time {
	t = t.In(s.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.location)
}
