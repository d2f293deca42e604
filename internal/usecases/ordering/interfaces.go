package ordering

import (
	"context"

	"github.com/montelucce/dashboard-api/internal/domain"
)

// OrderService define o ciclo de vida de um pedido: criação via
// formulário, listagem e o fluxo de cálculo e gravação de lucro
type OrderService interface {
	// CreateOrder valida e registra um novo pedido
	CreateOrder(input *domain.NewOrderInput) (*domain.Order, error)

	// ListOrders retorna os pedidos ordenados por data decrescente
	ListOrders() ([]*domain.Order, error)

	// CalculateProfit calcula o lucro de um pedido a partir dos valores
	// digitados e persiste o trio custo/venda/lucro atomicamente
	CalculateProfit(ctx context.Context, orderID string, input *ProfitInput) (*ProfitResult, error)
}

// ProfitInput carrega os valores digitados na calculadora, ainda como
// texto. A validação numérica acontece antes de qualquer escrita.
type ProfitInput struct {
	ProductCost  string `json:"product_cost"`
	SellingPrice string `json:"selling_price"`
}

// ProfitResult é o retorno do fluxo de cálculo de lucro
type ProfitResult struct {
	Order  *domain.Order `json:"order"`
	Margin float64       `json:"margin"` // percentual, 2 casas
}
