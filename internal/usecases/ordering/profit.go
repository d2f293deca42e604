package ordering

import (
	"github.com/montelucce/dashboard-api/pkg/utils"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// ComputeProfit calcula o lucro de um pedido: preço de venda menos custo
// do produto menos frete. Resultados negativos (prejuízo) são válidos.
func ComputeProfit(sellingPrice, productCost, shippingCost decimal.Decimal) decimal.Decimal {
	return sellingPrice.Sub(productCost).Sub(shippingCost)
}

// ComputeMargin calcula a margem percentual do lucro sobre o preço de
// venda. Preço de venda zero ou negativo resulta em margem zero, nunca em
// divisão por zero.
func ComputeMargin(profit, sellingPrice decimal.Decimal) float64 {
	if sellingPrice.Sign() <= 0 {
		return 0
	}

	margin, _ := profit.Div(sellingPrice).Mul(oneHundred).Float64()
	return utils.RoundWithTwoDecimalPlace(margin)
}
