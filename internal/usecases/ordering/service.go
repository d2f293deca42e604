package ordering

import (
	"context"
	"strings"

	"github.com/montelucce/dashboard-api/infrastructure/repository"
	"github.com/montelucce/dashboard-api/internal/domain"
	"github.com/montelucce/dashboard-api/pkg/log"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Service struct {
	orderRepository repository.OrderRepository
}

// NewService cria o serviço de pedidos
func NewService(orderRepo repository.OrderRepository) OrderService {
	return &Service{
		orderRepository: orderRepo,
	}
}

// CreateOrder valida os campos obrigatórios do formulário e registra o
// pedido. Nenhuma escrita acontece se a validação falhar.
func (s *Service) CreateOrder(input *domain.NewOrderInput) (*domain.Order, error) {
	if input == nil {
		return nil, ErrMissingRequiredFields
	}

	if missing := missingFields(input); len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingRequiredFields, "campos: %s", strings.Join(missing, ", "))
	}

	if input.ProductPrice.Sign() < 0 || input.ShippingCost.Sign() < 0 {
		return nil, errors.Wrap(ErrNegativeAmount, "preço do produto e frete devem ser não negativos")
	}

	order, err := s.orderRepository.Create(input)
	if err != nil {
		log.L.WithError(err).WithField("customer", input.CustomerName).
			Error("orders: erro ao criar pedido")
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"order_id": order.ID,
		"brand":    order.ProductBrand,
	}).Info("orders: pedido criado com sucesso")

	return order, nil
}

// ListOrders retorna os pedidos ordenados por data decrescente
func (s *Service) ListOrders() ([]*domain.Order, error) {
	orders, err := s.orderRepository.ListByDateDesc()
	if err != nil {
		log.L.WithError(err).Error("orders: erro ao listar pedidos")
		return nil, err
	}

	return orders, nil
}

// CalculateProfit executa o fluxo calcular-e-salvar: valida as entradas,
// calcula lucro com o frete fixado na criação do pedido e persiste o trio
// custo/venda/lucro em uma única escrita. Recalcular com as mesmas
// entradas produz o mesmo trio persistido.
func (s *Service) CalculateProfit(ctx context.Context, orderID string, input *ProfitInput) (*ProfitResult, error) {
	if orderID == "" {
		return nil, ErrOrderIDRequired
	}
	if input == nil {
		return nil, ErrMissingRequiredFields
	}

	productCost, sellingPrice, err := parseProfitInput(input)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepository.GetByID(orderID)
	if err != nil {
		log.L.WithError(err).WithField("order_id", orderID).
			Error("profit: erro ao buscar pedido")
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	profit := ComputeProfit(sellingPrice, productCost, order.ShippingCost)

	triplet := &domain.OrderProfit{
		ProductCost:  productCost,
		SellingPrice: sellingPrice,
		Profit:       profit,
	}

	updated, err := s.orderRepository.UpdateProfit(ctx, orderID, triplet)
	if err != nil {
		log.L.WithError(err).WithField("order_id", orderID).
			Error("profit: erro ao persistir cálculo de lucro")
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	margin := ComputeMargin(profit, sellingPrice)

	log.L.WithFields(log.Fields{
		"order_id": orderID,
		"profit":   profit.StringFixed(2),
		"margin":   margin,
	}).Info("profit: lucro calculado e persistido")

	return &ProfitResult{Order: updated, Margin: margin}, nil
}

// parseProfitInput rejeita entradas não numéricas ou negativas antes de
// qualquer mutação de estado
func parseProfitInput(input *ProfitInput) (productCost, sellingPrice decimal.Decimal, err error) {
	if strings.TrimSpace(input.ProductCost) == "" || strings.TrimSpace(input.SellingPrice) == "" {
		return decimal.Zero, decimal.Zero, errors.Wrap(ErrMissingRequiredFields, "campos: product_cost, selling_price")
	}

	productCost, err = decimal.NewFromString(strings.TrimSpace(input.ProductCost))
	if err != nil {
		return decimal.Zero, decimal.Zero, errors.Wrapf(ErrInvalidAmount, "product_cost: %q", input.ProductCost)
	}

	sellingPrice, err = decimal.NewFromString(strings.TrimSpace(input.SellingPrice))
	if err != nil {
		return decimal.Zero, decimal.Zero, errors.Wrapf(ErrInvalidAmount, "selling_price: %q", input.SellingPrice)
	}

	if productCost.Sign() < 0 || sellingPrice.Sign() < 0 {
		return decimal.Zero, decimal.Zero, errors.Wrap(ErrNegativeAmount, "custo e preço de venda devem ser não negativos")
	}

	return productCost, sellingPrice, nil
}

func missingFields(input *domain.NewOrderInput) []string {
	required := []struct {
		name  string
		value string
	}{
		{"customer_name", input.CustomerName},
		{"email", input.Email},
		{"cpf", input.CPF},
		{"address", input.Address},
		{"address_number", input.AddressNumber},
		{"zip_code", input.ZipCode},
		{"product_brand", input.ProductBrand},
	}

	missing := make([]string, 0)
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	return missing
}
