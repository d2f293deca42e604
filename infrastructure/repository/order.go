package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/montelucce/dashboard-api/infrastructure/database/postgres"
	"github.com/montelucce/dashboard-api/internal/domain"
	"github.com/montelucce/dashboard-api/pkg/utils"
	"github.com/shopspring/decimal"
)

const (
	ordersTable   = "orders o"
	ordersColumns = `o.id, o.customer_name, o.email, o.cpf, o.address, o.address_number,
		o.address_complement, o.zip_code, o.product_brand, o.product_price,
		o.shipping_cost, o.date, o.product_cost, o.selling_price,
		o.calculated_profit, o.created_at, o.updated_at`
)

// OrderRepository é o adaptador do armazenamento de pedidos. Ele converte
// as linhas brutas do banco para o modelo interno, incluindo o tratamento
// do trio opcional custo/venda/lucro.
type OrderRepository interface {
	Create(input *domain.NewOrderInput) (*domain.Order, error)
	GetByID(id string) (*domain.Order, error)
	ListByDateDesc() ([]*domain.Order, error)
	UpdateProfit(ctx context.Context, id string, profit *domain.OrderProfit) (*domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// Create insere um novo pedido. O id opaco e o timestamp de criação são
// atribuídos aqui; os campos de lucro nascem ausentes.
func (r *orderRepository) Create(input *domain.NewOrderInput) (*domain.Order, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do pedido: %w", err)
	}

	query, args, err := squirrel.
		Insert("orders").
		Columns(
			"id", "customer_name", "email", "cpf", "address", "address_number",
			"address_complement", "zip_code", "product_brand", "product_price",
			"shipping_cost", "date",
		).
		Values(
			id,
			input.CustomerName,
			input.Email,
			input.CPF,
			input.Address,
			input.AddressNumber,
			input.AddressComplement,
			input.ZipCode,
			input.ProductBrand,
			input.ProductPrice,
			input.ShippingCost,
			squirrel.Expr("NOW()"),
		).
		Suffix("RETURNING date, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	order := &domain.Order{
		ID:                id,
		CustomerName:      input.CustomerName,
		Email:             input.Email,
		CPF:               input.CPF,
		Address:           input.Address,
		AddressNumber:     input.AddressNumber,
		AddressComplement: input.AddressComplement,
		ZipCode:           input.ZipCode,
		ProductBrand:      input.ProductBrand,
		ProductPrice:      input.ProductPrice,
		ShippingCost:      input.ShippingCost,
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&order.Date, &order.CreatedAt, &order.UpdatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir pedido: %w", err)
	}

	return order, nil
}

func (r *orderRepository) GetByID(id string) (*domain.Order, error) {
	query, args, err := squirrel.
		Select(ordersColumns).
		From(ordersTable).
		Where(squirrel.Eq{"o.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	order, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
	}

	return order, nil
}

// ListByDateDesc retorna todos os pedidos ordenados pela data do pedido,
// do mais recente para o mais antigo
func (r *orderRepository) ListByDateDesc() ([]*domain.Order, error) {
	query, args, err := squirrel.
		Select(ordersColumns).
		From(ordersTable).
		OrderBy("o.date DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedidos: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

// UpdateProfit persiste o trio custo/venda/lucro como uma única escrita e
// retorna o pedido atualizado. A leitura de retorno acontece na mesma
// transação para que o chamador nunca veja um estado parcial.
func (r *orderRepository) UpdateProfit(ctx context.Context, id string, profit *domain.OrderProfit) (*domain.Order, error) {
	var updated *domain.Order

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Update("orders").
			Set("product_cost", profit.ProductCost).
			Set("selling_price", profit.SellingPrice).
			Set("calculated_profit", profit.Profit).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.Exec(query, args...)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao executar a query: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}
		if rowsAffected == 0 {
			return sql.ErrNoRows
		}

		selectQuery, selectArgs, err := squirrel.
			Select(ordersColumns).
			From(ordersTable).
			Where(squirrel.Eq{"o.id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		updated, err = scanOrder(tx.QueryRow(selectQuery, selectArgs...))
		if err != nil {
			return fmt.Errorf("erro ao escanear pedido atualizado: %w", err)
		}

		return nil
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return updated, nil
}

// scanner cobre *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (*domain.Order, error) {
	order := &domain.Order{}

	var (
		complement   sql.NullString
		productCost  decimal.NullDecimal
		sellingPrice decimal.NullDecimal
		calculated   decimal.NullDecimal
	)

	err := s.Scan(
		&order.ID,
		&order.CustomerName,
		&order.Email,
		&order.CPF,
		&order.Address,
		&order.AddressNumber,
		&complement,
		&order.ZipCode,
		&order.ProductBrand,
		&order.ProductPrice,
		&order.ShippingCost,
		&order.Date,
		&productCost,
		&sellingPrice,
		&calculated,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if complement.Valid {
		order.AddressComplement = &complement.String
	}

	// O trio custo/venda/lucro só é exposto quando os três valores estão
	// presentes; linhas legadas com preenchimento parcial são tratadas
	// como não calculadas
	if productCost.Valid && sellingPrice.Valid && calculated.Valid {
		order.Profit = &domain.OrderProfit{
			ProductCost:  productCost.Decimal,
			SellingPrice: sellingPrice.Decimal,
			Profit:       calculated.Decimal,
		}
	}

	return order, nil
}
