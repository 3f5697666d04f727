package db

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
)

const orderItemColumns = `id, order_id, menu_item_id, menu_item_name, quantity, unit_price, total_price,
selected_variation, selected_add_ons, created_at`

func scanOrderItem(row pgx.Row) (OrderItem, error) {
	var item OrderItem
	err := row.Scan(
		&item.ID, &item.OrderID, &item.MenuItemID, &item.MenuItemName, &item.Quantity, &item.UnitPrice,
		&item.TotalPrice, &item.SelectedVariation, &item.SelectedAddOns, &item.CreatedAt,
	)
	return item, err
}

type CreateOrderItemParams struct {
	ID                string
	OrderID           string
	MenuItemID        *string
	MenuItemName      string
	Quantity          int64
	UnitPrice         float64
	TotalPrice        float64
	SelectedVariation json.RawMessage
	SelectedAddOns    json.RawMessage
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	query := `INSERT INTO order_items (id, order_id, menu_item_id, menu_item_name, quantity, unit_price,
total_price, selected_variation, selected_add_ons)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + orderItemColumns

	row := q.db.QueryRow(ctx, query,
		arg.ID, arg.OrderID, arg.MenuItemID, arg.MenuItemName, arg.Quantity, arg.UnitPrice,
		arg.TotalPrice, arg.SelectedVariation, arg.SelectedAddOns,
	)
	return scanOrderItem(row)
}

func (q *Queries) ListOrderItemsByOrderID(ctx context.Context, orderID string) ([]OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY created_at`

	rows, err := q.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
