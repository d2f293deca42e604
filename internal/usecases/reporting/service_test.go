package reporting

import (
	"testing"
	"time"

	"github.com/montelucce/dashboard-api/infrastructure/repository/mocks"
	"github.com/montelucce/dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Âncora fixa usada em todos os testes: 15 de junho de 2024, meio-dia UTC
var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testNow
}

func newTestService(t *testing.T) (*Service, *mocks.MockOrderRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	service := NewService(repo, time.UTC).WithClock(fixedClock)
	return service, repo
}

func testOrder(id string, date time.Time, productPrice, shippingCost float64) *domain.Order {
	return &domain.Order{
		ID:           id,
		CustomerName: "Cliente " + id,
		Email:        "cliente@example.com",
		ProductBrand: "Montelucce",
		ProductPrice: decimal.NewFromFloat(productPrice),
		ShippingCost: decimal.NewFromFloat(shippingCost),
		Date:         date,
	}
}

func withProfit(order *domain.Order, cost, price float64) *domain.Order {
	c := decimal.NewFromFloat(cost)
	p := decimal.NewFromFloat(price)
	order.Profit = &domain.OrderProfit{
		ProductCost:  c,
		SellingPrice: p,
		Profit:       p.Sub(c).Sub(order.ShippingCost),
	}
	return order
}

func TestService_FilterByPeriod(t *testing.T) {
	service, _ := newTestService(t)

	atStart := testOrder("A", time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), 100, 10)
	beforeStart := testOrder("B", time.Date(2024, 6, 7, 23, 59, 59, 0, time.UTC), 100, 10)
	middle := testOrder("C", time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC), 100, 10)
	atEnd := testOrder("D", time.Date(2024, 6, 15, 23, 59, 59, 999999999, time.UTC), 100, 10)

	tests := []struct {
		name    string
		orders  []*domain.Order
		period  domain.Period
		wantIDs []string
	}{
		{
			name:    "últimos 7 dias incluem as bordas e excluem o instante anterior",
			orders:  []*domain.Order{atStart, beforeStart, middle, atEnd},
			period:  domain.PeriodLast7Days,
			wantIDs: []string{"A", "C", "D"},
		},
		{
			name:    "hoje mantém apenas o dia corrente",
			orders:  []*domain.Order{atStart, middle, atEnd},
			period:  domain.PeriodToday,
			wantIDs: []string{"D"},
		},
		{
			name:    "nenhum pedido no período retorna lista vazia, não erro",
			orders:  []*domain.Order{beforeStart},
			period:  domain.PeriodToday,
			wantIDs: []string{},
		},
		{
			name:    "entrada vazia",
			orders:  []*domain.Order{},
			period:  domain.PeriodLast30Days,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := service.FilterByPeriod(tt.orders, tt.period)

			gotIDs := make([]string, 0, len(filtered))
			for _, order := range filtered {
				gotIDs = append(gotIDs, order.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestService_AggregateByDay_SeedsEveryDay(t *testing.T) {
	service, _ := newTestService(t)

	rng := domain.PeriodLast7Days.Range(testNow, time.UTC)

	orders := []*domain.Order{
		withProfit(testOrder("A", time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), 500, 30), 200, 600),
		testOrder("B", time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC), 150, 20),
	}

	buckets := service.AggregateByDay(orders, rng)

	// 8 dias-calendário entre 08/06 e 15/06, todos presentes mesmo sem pedidos
	require.Len(t, buckets, 8)

	// Ordenação crescente por dia
	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i-1].Date.Before(buckets[i].Date))
	}

	// Dia sem pedidos aparece zerado
	assert.Equal(t, "0.00", buckets[0].Revenue.StringFixed(2))
	assert.Equal(t, "0.00", buckets[0].Profit.StringFixed(2))

	// 10/06 soma os dois pedidos: 600 (venda calculada) + 150 (preço de tabela)
	day10 := buckets[2]
	assert.True(t, day10.Date.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "750.00", day10.Revenue.StringFixed(2))
	// Custo: 200 + 30 de frete do pedido A, mais 20 de frete do pedido B
	assert.Equal(t, "250.00", day10.Cost.StringFixed(2))
	assert.Equal(t, "370.00", day10.Profit.StringFixed(2))
}

func TestService_AggregateByDay_IsACorrectFold(t *testing.T) {
	service, _ := newTestService(t)

	rng := domain.PeriodLast30Days.Range(testNow, time.UTC)

	orders := []*domain.Order{
		withProfit(testOrder("A", time.Date(2024, 5, 20, 8, 0, 0, 0, time.UTC), 500, 30), 200, 600),
		withProfit(testOrder("B", time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC), 300, 15), 180, 350),
		testOrder("C", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), 120, 10),
		testOrder("D", time.Date(2024, 6, 14, 23, 0, 0, 0, time.UTC), 80, 12),
	}

	buckets := service.AggregateByDay(orders, rng)

	totalRevenue := decimal.Zero
	totalProfit := decimal.Zero
	for _, bucket := range buckets {
		totalRevenue = totalRevenue.Add(bucket.Revenue)
		totalProfit = totalProfit.Add(bucket.Profit)
	}

	wantRevenue := decimal.Zero
	wantProfit := decimal.Zero
	for _, order := range orders {
		wantRevenue = wantRevenue.Add(order.Revenue())
		wantProfit = wantProfit.Add(order.ProfitOrZero())
	}

	assert.True(t, totalRevenue.Equal(wantRevenue), "receita: esperado %s, obtido %s", wantRevenue, totalRevenue)
	assert.True(t, totalProfit.Equal(wantProfit), "lucro: esperado %s, obtido %s", wantProfit, totalProfit)
}

func TestService_AggregateByMonth(t *testing.T) {
	service, _ := newTestService(t)

	orders := []*domain.Order{
		testOrder("A", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC), 100, 10),
		withProfit(testOrder("B", time.Date(2024, 4, 10, 10, 0, 0, 0, time.UTC), 500, 30), 200, 600),
		testOrder("C", time.Date(2024, 4, 25, 10, 0, 0, 0, time.UTC), 50, 5),
	}

	buckets := service.AggregateByMonth(orders)

	// Apenas meses com pedidos, em ordem crescente
	require.Len(t, buckets, 2)
	assert.Equal(t, "04-2024", buckets[0].Month)
	assert.Equal(t, "06-2024", buckets[1].Month)

	assert.Equal(t, "650.00", buckets[0].Revenue.StringFixed(2))
	assert.Equal(t, "370.00", buckets[0].Profit.StringFixed(2))
	assert.Equal(t, "100.00", buckets[1].Revenue.StringFixed(2))
}

func TestService_AggregateByMonth_EmptyInput(t *testing.T) {
	service, _ := newTestService(t)

	buckets := service.AggregateByMonth(nil)
	assert.Empty(t, buckets)
}

func TestService_Summarize(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name        string
		orders      []*domain.Order
		wantRevenue string
		wantProfit  string
		wantCount   int
		wantTicket  string
	}{
		{
			name: "mistura de pedidos calculados e pendentes",
			orders: []*domain.Order{
				withProfit(testOrder("A", testNow, 500, 30), 200, 600),
				testOrder("B", testNow, 150, 20),
			},
			wantRevenue: "750.00",
			wantProfit:  "370.00",
			wantCount:   2,
			wantTicket:  "375.00",
		},
		{
			name:        "sem pedidos o ticket médio é zero",
			orders:      []*domain.Order{},
			wantRevenue: "0.00",
			wantProfit:  "0.00",
			wantCount:   0,
			wantTicket:  "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := service.Summarize(tt.orders)

			assert.Equal(t, tt.wantRevenue, summary.TotalRevenue.StringFixed(2))
			assert.Equal(t, tt.wantProfit, summary.TotalProfit.StringFixed(2))
			assert.Equal(t, tt.wantCount, summary.OrdersCount)
			assert.Equal(t, tt.wantTicket, summary.AverageTicket.StringFixed(2))
		})
	}
}

func TestService_Revenue(t *testing.T) {
	service, repo := newTestService(t)

	inRange := withProfit(testOrder("A", time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC), 500, 30), 200, 600)
	outOfRange := testOrder("B", time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), 999, 99)

	repo.EXPECT().
		ListByDateDesc().
		Return([]*domain.Order{inRange, outOfRange}, nil)

	report, err := service.Revenue(domain.PeriodLast7Days, "")
	require.NoError(t, err)

	assert.Equal(t, domain.PeriodLast7Days, report.Period)
	assert.Equal(t, GroupByDay, report.GroupBy)
	assert.Equal(t, 1, report.Summary.OrdersCount)
	assert.Equal(t, "600.00", report.Summary.TotalRevenue.StringFixed(2))
	assert.Len(t, report.Daily, 8)
	assert.Empty(t, report.Monthly)
}

func TestService_Revenue_GroupByMonth(t *testing.T) {
	service, repo := newTestService(t)

	repo.EXPECT().
		ListByDateDesc().
		Return([]*domain.Order{
			testOrder("A", time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC), 100, 10),
			testOrder("B", time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), 200, 10),
		}, nil)

	report, err := service.Revenue(domain.PeriodLast3Month, GroupByMonth)
	require.NoError(t, err)

	assert.Empty(t, report.Daily)
	require.Len(t, report.Monthly, 2)
	assert.Equal(t, "05-2024", report.Monthly[0].Month)
	assert.Equal(t, "06-2024", report.Monthly[1].Month)
}

func TestService_Revenue_InvalidGroupBy(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Revenue(domain.PeriodLast7Days, "week")
	assert.Error(t, err)
}
