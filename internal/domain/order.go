package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa um pedido de cliente registrado pelo formulário da loja
type Order struct {
	ID                string          `json:"id"`
	CustomerName      string          `json:"customer_name"`
	Email             string          `json:"email"`
	CPF               string          `json:"cpf"`
	Address           string          `json:"address"`
	AddressNumber     string          `json:"address_number"`
	AddressComplement *string         `json:"address_complement,omitempty"`
	ZipCode           string          `json:"zip_code"`
	ProductBrand      string          `json:"product_brand"`
	ProductPrice      decimal.Decimal `json:"product_price"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
	Date              time.Time       `json:"date"`
	Profit            *OrderProfit    `json:"profit,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// OrderProfit agrupa o trio custo/venda/lucro de um pedido já calculado.
// Um pedido sem cálculo carrega Profit == nil; quando presente, os três
// valores existem juntos e Profit.Profit é sempre derivável dos outros dois
// mais o frete do pedido. Não existe estado parcial representável.
type OrderProfit struct {
	ProductCost  decimal.Decimal `json:"product_cost"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Profit       decimal.Decimal `json:"profit"`
}

// Calculated indica se o pedido já passou pelo fluxo de cálculo de lucro
func (o *Order) Calculated() bool {
	return o.Profit != nil
}

// Revenue retorna a contribuição de receita do pedido: o preço de venda
// quando o lucro já foi calculado, senão o preço de tabela do produto
func (o *Order) Revenue() decimal.Decimal {
	if o.Profit != nil {
		return o.Profit.SellingPrice
	}
	return o.ProductPrice
}

// Cost retorna o custo total do pedido (custo do produto, se conhecido,
// mais o frete fixado na criação)
func (o *Order) Cost() decimal.Decimal {
	if o.Profit != nil {
		return o.Profit.ProductCost.Add(o.ShippingCost)
	}
	return o.ShippingCost
}

// ProfitOrZero retorna o lucro calculado ou zero para pedidos pendentes
func (o *Order) ProfitOrZero() decimal.Decimal {
	if o.Profit != nil {
		return o.Profit.Profit
	}
	return decimal.Zero
}

// NewOrderInput carrega os campos do formulário de criação de pedido
type NewOrderInput struct {
	CustomerName      string          `json:"customer_name"`
	Email             string          `json:"email"`
	CPF               string          `json:"cpf"`
	Address           string          `json:"address"`
	AddressNumber     string          `json:"address_number"`
	AddressComplement *string         `json:"address_complement,omitempty"`
	ZipCode           string          `json:"zip_code"`
	ProductBrand      string          `json:"product_brand"`
	ProductPrice      decimal.Decimal `json:"product_price"`
	ShippingCost      decimal.Decimal `json:"shipping_cost"`
}
