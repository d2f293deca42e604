package exporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/montelucce/dashboard-api/internal/config"
	"github.com/montelucce/dashboard-api/internal/domain"
	"github.com/montelucce/dashboard-api/pkg/utils"
)

// csvHeader segue a ordem de colunas da planilha usada pela equipe
var csvHeader = []string{
	"Customer Name",
	"Email",
	"CPF",
	"Address",
	"Zip Code",
	"Product Brand",
	"Product Price",
	"Shipping Cost",
	"Date",
	"Product Cost",
	"Selling Price",
	"Profit",
}

// Exporter gera o arquivo CSV de pedidos do período selecionado
type Exporter interface {
	Export(w io.Writer, orders []*domain.Order) error
	Filename(period domain.Period, now time.Time) string
}

type Service struct {
	filenamePrefix string
}

func NewService(cfg *config.Config) Exporter {
	return &Service{
		filenamePrefix: cfg.Export.FilenamePrefix,
	}
}

// Export escreve o cabeçalho e uma linha por pedido, em UTF-8 com BOM
// para que planilhas abram a acentuação corretamente. Valores monetários
// saem com 2 casas; o trio de lucro sai em branco quando não calculado.
func (s *Service) Export(w io.Writer, orders []*domain.Order) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("erro ao escrever BOM: %w", err)
	}

	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for _, order := range orders {
		if err := writer.Write(orderRow(order)); err != nil {
			return fmt.Errorf("erro ao escrever pedido %s: %w", order.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Filename embute o período selecionado e a data corrente no nome do
// arquivo exportado
func (s *Service) Filename(period domain.Period, now time.Time) string {
	return fmt.Sprintf("%s_%s_%s.csv", s.filenamePrefix, period, now.Format("2006-01-02"))
}

func orderRow(order *domain.Order) []string {
	productCost := ""
	sellingPrice := ""
	profit := ""

	if order.Profit != nil {
		productCost = order.Profit.ProductCost.StringFixed(2)
		sellingPrice = order.Profit.SellingPrice.StringFixed(2)
		profit = order.Profit.Profit.StringFixed(2)
	}

	return []string{
		order.CustomerName,
		order.Email,
		order.CPF,
		fullAddress(order),
		order.ZipCode,
		order.ProductBrand,
		order.ProductPrice.StringFixed(2),
		order.ShippingCost.StringFixed(2),
		utils.FormatDateBR(order.Date),
		productCost,
		sellingPrice,
		profit,
	}
}

func fullAddress(order *domain.Order) string {
	address := fmt.Sprintf("%s, %s", order.Address, order.AddressNumber)
	if order.AddressComplement != nil && *order.AddressComplement != "" {
		address = fmt.Sprintf("%s %s", address, *order.AddressComplement)
	}
	return strings.TrimSpace(address)
}
