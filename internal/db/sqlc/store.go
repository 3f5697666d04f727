package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides all functions to execute db queries and transactions.
type Store interface {
	Querier

	CreateOrderTx(ctx context.Context, arg CreateOrderTxParams) (CreateOrderTxResult, error)
	Ping(ctx context.Context) error
}

// Querier is the set of single-statement queries.
type Querier interface {
	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	GetOrderByID(ctx context.Context, id string) (Order, error)
	GetOrderByLalamoveOrderID(ctx context.Context, lalamoveOrderID string) (Order, error)
	ListOrders(ctx context.Context, arg ListOrdersParams) ([]Order, error)
	ListOrdersWithActiveDelivery(ctx context.Context) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error)
	BulkUpdateOrderStatus(ctx context.Context, arg BulkUpdateOrderStatusParams) error
	UpdateOrderDeliveryInfo(ctx context.Context, arg UpdateOrderDeliveryInfoParams) (Order, error)
	UpdateOrderDeliveryStatus(ctx context.Context, arg UpdateOrderDeliveryStatusParams) error
	GetOrderStats(ctx context.Context) (OrderStats, error)

	CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error)
	ListOrderItemsByOrderID(ctx context.Context, orderID string) ([]OrderItem, error)

	CreateMenuItem(ctx context.Context, arg CreateMenuItemParams) (MenuItem, error)
	GetMenuItemByID(ctx context.Context, id string) (MenuItem, error)
	GetMenuItemBySlug(ctx context.Context, slug string) (MenuItem, error)
	ListMenuItems(ctx context.Context, arg ListMenuItemsParams) ([]MenuItem, error)
	UpdateMenuItem(ctx context.Context, arg UpdateMenuItemParams) (MenuItem, error)
	UpdateMenuItemImage(ctx context.Context, arg UpdateMenuItemImageParams) (MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error

	CreateBranch(ctx context.Context, arg CreateBranchParams) (Branch, error)
	GetBranchByID(ctx context.Context, id string) (Branch, error)
	ListBranches(ctx context.Context, activeOnly bool) ([]Branch, error)
	UpdateBranch(ctx context.Context, arg UpdateBranchParams) (Branch, error)
	DeleteBranch(ctx context.Context, id string) error

	UpsertSiteSetting(ctx context.Context, arg UpsertSiteSettingParams) (SiteSetting, error)
	GetSiteSetting(ctx context.Context, key string) (SiteSetting, error)
	ListSiteSettings(ctx context.Context) ([]SiteSetting, error)
}

// DBTX is satisfied by both the pool and a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// WithTx returns a Queries bound to a transaction.
func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

type SQLStore struct {
	*Queries
	connPool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(db *pgxpool.Pool) Store {
	return &SQLStore{
		Queries:  New(db),
		connPool: db,
	}
}

// Ping checks if the database connection is alive.
func (store *SQLStore) Ping(ctx context.Context) error {
	return store.connPool.Ping(ctx)
}

// ExecTx executes a function within a database transaction.
func (store *SQLStore) ExecTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := store.connPool.Begin(ctx)
	if err != nil {
		return err
	}

	qTx := store.Queries.WithTx(tx)
	if err = fn(qTx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx error: %v, rollback error: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
