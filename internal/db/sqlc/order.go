package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, order_number, customer_name, contact_number, service_type, address, landmark,
pickup_time, party_size, dine_in_time, payment_method, reference_number, status, total, notes,
customer_ip, delivery_fee, lalamove_quotation_id, lalamove_order_id, lalamove_status,
lalamove_tracking_url, branch_id, created_at, updated_at, completed_at`

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerName, &o.ContactNumber, &o.ServiceType, &o.Address, &o.Landmark,
		&o.PickupTime, &o.PartySize, &o.DineInTime, &o.PaymentMethod, &o.ReferenceNumber, &o.Status, &o.Total, &o.Notes,
		&o.CustomerIP, &o.DeliveryFee, &o.LalamoveQuotationID, &o.LalamoveOrderID, &o.LalamoveStatus,
		&o.LalamoveTrackingURL, &o.BranchID, &o.CreatedAt, &o.UpdatedAt, &o.CompletedAt,
	)
	return o, err
}

type CreateOrderParams struct {
	ID                  string
	OrderNumber         string
	CustomerName        string
	ContactNumber       string
	ServiceType         ServiceType
	Address             *string
	Landmark            *string
	PickupTime          *string
	PartySize           *int64
	DineInTime          *string
	PaymentMethod       PaymentMethod
	ReferenceNumber     *string
	Status              OrderStatus
	Total               float64
	Notes               *string
	CustomerIP          string
	DeliveryFee         *float64
	LalamoveQuotationID *string
	BranchID            *string
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	query := `INSERT INTO orders (id, order_number, customer_name, contact_number, service_type, address,
landmark, pickup_time, party_size, dine_in_time, payment_method, reference_number, status, total, notes,
customer_ip, delivery_fee, lalamove_quotation_id, branch_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
RETURNING ` + orderColumns

	row := q.db.QueryRow(ctx, query,
		arg.ID, arg.OrderNumber, arg.CustomerName, arg.ContactNumber, arg.ServiceType, arg.Address,
		arg.Landmark, arg.PickupTime, arg.PartySize, arg.DineInTime, arg.PaymentMethod, arg.ReferenceNumber,
		arg.Status, arg.Total, arg.Notes, arg.CustomerIP, arg.DeliveryFee, arg.LalamoveQuotationID, arg.BranchID,
	)
	return scanOrder(row)
}

func (q *Queries) GetOrderByID(ctx context.Context, id string) (Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return scanOrder(q.db.QueryRow(ctx, query, id))
}

func (q *Queries) GetOrderByLalamoveOrderID(ctx context.Context, lalamoveOrderID string) (Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE lalamove_order_id = $1`
	return scanOrder(q.db.QueryRow(ctx, query, lalamoveOrderID))
}

type ListOrdersParams struct {
	Status      *OrderStatus
	ServiceType *ServiceType
	DateFrom    *time.Time
	DateTo      *time.Time
	Search      *string
}

// ListOrders returns orders newest first, narrowed by the optional filters.
// The search term matches order number, customer name, or contact number.
func (q *Queries) ListOrders(ctx context.Context, arg ListOrdersParams) ([]Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}

	if arg.Status != nil {
		args = append(args, *arg.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if arg.ServiceType != nil {
		args = append(args, *arg.ServiceType)
		query += fmt.Sprintf(" AND service_type = $%d", len(args))
	}
	if arg.DateFrom != nil {
		args = append(args, *arg.DateFrom)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if arg.DateTo != nil {
		args = append(args, *arg.DateTo)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	if arg.Search != nil {
		args = append(args, "%"+*arg.Search+"%")
		query += fmt.Sprintf(" AND (order_number ILIKE $%d OR customer_name ILIKE $%d OR contact_number ILIKE $%d)",
			len(args), len(args), len(args))
	}

	query += " ORDER BY created_at DESC"

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

// ListOrdersWithActiveDelivery returns delivery orders that have an upstream
// order ID but are not yet completed or cancelled. The delivery tracker polls
// these.
func (q *Queries) ListOrdersWithActiveDelivery(ctx context.Context) ([]Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
WHERE service_type = 'delivery'
  AND lalamove_order_id IS NOT NULL
  AND status NOT IN ('completed', 'cancelled')
ORDER BY created_at`

	rows, err := q.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

type UpdateOrderStatusParams struct {
	ID     string
	Status OrderStatus
}

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	query := `UPDATE orders
SET status = $2,
    updated_at = now(),
    completed_at = CASE WHEN $2 = 'completed' THEN now() ELSE completed_at END
WHERE id = $1
RETURNING ` + orderColumns

	return scanOrder(q.db.QueryRow(ctx, query, arg.ID, arg.Status))
}

type BulkUpdateOrderStatusParams struct {
	IDs    []string
	Status OrderStatus
}

func (q *Queries) BulkUpdateOrderStatus(ctx context.Context, arg BulkUpdateOrderStatusParams) error {
	query := `UPDATE orders
SET status = $2,
    updated_at = now(),
    completed_at = CASE WHEN $2 = 'completed' THEN now() ELSE completed_at END
WHERE id = ANY($1)`

	_, err := q.db.Exec(ctx, query, arg.IDs, arg.Status)
	return err
}

type UpdateOrderDeliveryInfoParams struct {
	ID                  string
	LalamoveOrderID     *string
	LalamoveStatus      *string
	LalamoveTrackingURL *string
}

func (q *Queries) UpdateOrderDeliveryInfo(ctx context.Context, arg UpdateOrderDeliveryInfoParams) (Order, error) {
	query := `UPDATE orders
SET lalamove_order_id = COALESCE($2, lalamove_order_id),
    lalamove_status = COALESCE($3, lalamove_status),
    lalamove_tracking_url = COALESCE($4, lalamove_tracking_url),
    updated_at = now()
WHERE id = $1
RETURNING ` + orderColumns

	return scanOrder(q.db.QueryRow(ctx, query, arg.ID, arg.LalamoveOrderID, arg.LalamoveStatus, arg.LalamoveTrackingURL))
}

type UpdateOrderDeliveryStatusParams struct {
	LalamoveOrderID string
	LalamoveStatus  string
}

func (q *Queries) UpdateOrderDeliveryStatus(ctx context.Context, arg UpdateOrderDeliveryStatusParams) error {
	query := `UPDATE orders
SET lalamove_status = $2,
    updated_at = now()
WHERE lalamove_order_id = $1`

	_, err := q.db.Exec(ctx, query, arg.LalamoveOrderID, arg.LalamoveStatus)
	return err
}

func (q *Queries) GetOrderStats(ctx context.Context) (OrderStats, error) {
	query := `SELECT
	COUNT(*),
	COUNT(*) FILTER (WHERE status = 'pending'),
	COUNT(*) FILTER (WHERE created_at >= date_trunc('day', now())),
	COALESCE(SUM(total) FILTER (WHERE created_at >= date_trunc('day', now()) AND status <> 'cancelled'), 0),
	COUNT(*) FILTER (WHERE status = 'completed'),
	COUNT(*) FILTER (WHERE status = 'cancelled')
FROM orders`

	var stats OrderStats
	err := q.db.QueryRow(ctx, query).Scan(
		&stats.TotalOrders,
		&stats.PendingOrders,
		&stats.TodayOrders,
		&stats.TodayRevenue,
		&stats.CompletedOrders,
		&stats.CancelledOrders,
	)
	return stats, err
}
