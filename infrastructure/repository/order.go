package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

const lineItemsAggregate = `COALESCE(
	json_agg(json_build_object(
		'product_name', pr.name,
		'quantity', li.quantity,
		'unit_price', li.unit_price,
		'amount', li.amount
	) ORDER BY li.id) FILTER (WHERE li.id IS NOT NULL),
	'[]'::json
) AS line_items`

// ordersWithLineItems monta a consulta de pedidos com os itens agregados em uma lista.
// O predicado pode usar os aliases o, p e c.
func ordersWithLineItems(where squirrel.Sqlizer) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"o.id",
			"o.invoice_number",
			"o.date",
			"o.amount",
			"p.id",
			"p.name",
			lineItemsAggregate,
		).
		From("orders o").
		Join("people p ON p.id = o.person_id").
		Join("companies c ON c.id = p.company_id").
		LeftJoin("line_items li ON li.order_id = o.id").
		LeftJoin("products pr ON pr.id = li.product_id").
		Where(where).
		GroupBy("o.id", "p.id").
		OrderBy("o.date DESC", "o.id DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func queryOrders(ctx context.Context, q postgres.Queryer, where squirrel.Sqlizer) ([]domain.Order, error) {
	sqlQuery, args, err := ordersWithLineItems(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de pedidos: %w", err)
	}

	rows, err := q.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de pedidos: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de pedidos: %w", err)
	}

	return orders, nil
}

func scanOrder(rows *sql.Rows) (*domain.Order, error) {
	order := &domain.Order{}
	var lineItems []byte

	err := rows.Scan(
		&order.ID,
		&order.InvoiceNumber,
		&order.Date,
		&order.Amount,
		&order.PersonID,
		&order.PersonName,
		&lineItems,
	)
	if err != nil {
		return nil, err
	}

	order.LineItems, err = domain.ParseLineItems(lineItems)
	if err != nil {
		return nil, fmt.Errorf("line items do pedido %d: %w", order.ID, err)
	}

	return order, nil
}
