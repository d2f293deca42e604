package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/montelucce/dashboard-api/infrastructure/repository/mocks"
	"github.com/montelucce/dashboard-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (OrderService, *mocks.MockOrderRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRepository(ctrl)
	return NewService(repo), repo
}

func storedOrder(id string, productPrice, shippingCost string) *domain.Order {
	return &domain.Order{
		ID:            id,
		CustomerName:  "João Silva",
		Email:         "joao@example.com",
		CPF:           "123.456.789-00",
		Address:       "Rua Exemplo",
		AddressNumber: "42",
		ZipCode:       "88000-000",
		ProductBrand:  "Montelucce",
		ProductPrice:  decimal.RequireFromString(productPrice),
		ShippingCost:  decimal.RequireFromString(shippingCost),
		Date:          time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

func validInput() *domain.NewOrderInput {
	return &domain.NewOrderInput{
		CustomerName:  "João Silva",
		Email:         "joao@example.com",
		CPF:           "123.456.789-00",
		Address:       "Rua Exemplo",
		AddressNumber: "42",
		ZipCode:       "88000-000",
		ProductBrand:  "Montelucce",
		ProductPrice:  decimal.RequireFromString("500"),
		ShippingCost:  decimal.RequireFromString("30"),
	}
}

func TestService_CreateOrder(t *testing.T) {
	tests := []struct {
		name    string
		input   *domain.NewOrderInput
		setup   func(repo *mocks.MockOrderRepository)
		wantErr error
	}{
		{
			name:  "pedido válido é criado",
			input: validInput(),
			setup: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(input *domain.NewOrderInput) (*domain.Order, error) {
						order := storedOrder("ord_1", "500", "30")
						order.CustomerName = input.CustomerName
						return order, nil
					})
			},
		},
		{
			name: "campo obrigatório ausente falha fechado, sem escrita",
			input: func() *domain.NewOrderInput {
				input := validInput()
				input.CustomerName = "   "
				return input
			}(),
			setup:   func(repo *mocks.MockOrderRepository) {},
			wantErr: ErrMissingRequiredFields,
		},
		{
			name: "preço negativo é rejeitado",
			input: func() *domain.NewOrderInput {
				input := validInput()
				input.ProductPrice = decimal.RequireFromString("-10")
				return input
			}(),
			setup:   func(repo *mocks.MockOrderRepository) {},
			wantErr: ErrNegativeAmount,
		},
		{
			name:    "entrada nula",
			input:   nil,
			setup:   func(repo *mocks.MockOrderRepository) {},
			wantErr: ErrMissingRequiredFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			order, err := service.CreateOrder(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, order)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, order)
			assert.Equal(t, "João Silva", order.CustomerName)
			assert.Nil(t, order.Profit)
		})
	}
}

func TestService_CalculateProfit(t *testing.T) {
	ctx := context.Background()

	t.Run("cenário da calculadora: 600 - 200 - 30 = 370, margem 61.67", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().
			GetByID("ord_1").
			Return(storedOrder("ord_1", "500", "30"), nil)

		repo.EXPECT().
			UpdateProfit(gomock.Any(), "ord_1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, profit *domain.OrderProfit) (*domain.Order, error) {
				// O trio persiste junto e consistente
				assert.Equal(t, "200.00", profit.ProductCost.StringFixed(2))
				assert.Equal(t, "600.00", profit.SellingPrice.StringFixed(2))
				assert.Equal(t, "370.00", profit.Profit.StringFixed(2))

				order := storedOrder(id, "500", "30")
				order.Profit = profit
				return order, nil
			})

		result, err := service.CalculateProfit(ctx, "ord_1", &ProfitInput{
			ProductCost:  "200",
			SellingPrice: "600",
		})
		require.NoError(t, err)

		require.NotNil(t, result.Order.Profit)
		assert.Equal(t, "370.00", result.Order.Profit.Profit.StringFixed(2))
		assert.InDelta(t, 61.67, result.Margin, 0.001)
	})

	t.Run("recalcular com as mesmas entradas persiste o mesmo trio", func(t *testing.T) {
		service, repo := newTestService(t)

		var persisted []*domain.OrderProfit

		repo.EXPECT().
			GetByID("ord_1").
			Return(storedOrder("ord_1", "500", "30"), nil).
			Times(2)

		repo.EXPECT().
			UpdateProfit(gomock.Any(), "ord_1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, profit *domain.OrderProfit) (*domain.Order, error) {
				persisted = append(persisted, profit)
				order := storedOrder(id, "500", "30")
				order.Profit = profit
				return order, nil
			}).
			Times(2)

		input := &ProfitInput{ProductCost: "200", SellingPrice: "600"}

		first, err := service.CalculateProfit(ctx, "ord_1", input)
		require.NoError(t, err)
		second, err := service.CalculateProfit(ctx, "ord_1", input)
		require.NoError(t, err)

		require.Len(t, persisted, 2)
		assert.True(t, persisted[0].Profit.Equal(persisted[1].Profit))
		assert.True(t, persisted[0].ProductCost.Equal(persisted[1].ProductCost))
		assert.True(t, persisted[0].SellingPrice.Equal(persisted[1].SellingPrice))
		assert.Equal(t, first.Margin, second.Margin)
	})

	t.Run("entrada não numérica é rejeitada antes de qualquer leitura ou escrita", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CalculateProfit(ctx, "ord_1", &ProfitInput{
			ProductCost:  "abc",
			SellingPrice: "600",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("valores negativos são rejeitados", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CalculateProfit(ctx, "ord_1", &ProfitInput{
			ProductCost:  "-200",
			SellingPrice: "600",
		})
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("campos vazios são rejeitados", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CalculateProfit(ctx, "ord_1", &ProfitInput{
			ProductCost:  "",
			SellingPrice: "600",
		})
		assert.ErrorIs(t, err, ErrMissingRequiredFields)
	})

	t.Run("pedido inexistente", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().
			GetByID("ord_404").
			Return(nil, nil)

		_, err := service.CalculateProfit(ctx, "ord_404", &ProfitInput{
			ProductCost:  "200",
			SellingPrice: "600",
		})
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("id vazio", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CalculateProfit(ctx, "", &ProfitInput{
			ProductCost:  "200",
			SellingPrice: "600",
		})
		assert.ErrorIs(t, err, ErrOrderIDRequired)
	})
}
