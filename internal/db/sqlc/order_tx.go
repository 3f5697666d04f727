package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/beracah/beracah-BE/internal/util"
	"github.com/google/uuid"
)

type CreateOrderItemInput struct {
	MenuItemID        *string
	MenuItemName      string
	Quantity          int64
	UnitPrice         float64
	SelectedVariation json.RawMessage
	SelectedAddOns    json.RawMessage
}

type CreateOrderTxParams struct {
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
	Total               float64
	Notes               *string
	CustomerIP          string
	DeliveryFee         *float64
	LalamoveQuotationID *string
	BranchID            *string
	Items               []CreateOrderItemInput
}

type CreateOrderTxResult struct {
	Order      Order       `json:"order"`
	OrderItems []OrderItem `json:"order_items"`
}

// CreateOrderTx inserts the order and its items atomically. A failure on any
// item rolls back the whole order, so no half-written order ever becomes
// visible to the dashboard.
func (store *SQLStore) CreateOrderTx(ctx context.Context, arg CreateOrderTxParams) (CreateOrderTxResult, error) {
	var result CreateOrderTxResult

	err := store.ExecTx(ctx, func(qTx *Queries) error {
		orderID, _ := uuid.NewV7()
		orderNumber := util.GenerateOrderNumber()

		order, err := qTx.CreateOrder(ctx, CreateOrderParams{
			ID:                  orderID.String(),
			OrderNumber:         orderNumber,
			CustomerName:        arg.CustomerName,
			ContactNumber:       arg.ContactNumber,
			ServiceType:         arg.ServiceType,
			Address:             arg.Address,
			Landmark:            arg.Landmark,
			PickupTime:          arg.PickupTime,
			PartySize:           arg.PartySize,
			DineInTime:          arg.DineInTime,
			PaymentMethod:       arg.PaymentMethod,
			ReferenceNumber:     arg.ReferenceNumber,
			Status:              OrderStatusPending,
			Total:               arg.Total,
			Notes:               arg.Notes,
			CustomerIP:          arg.CustomerIP,
			DeliveryFee:         arg.DeliveryFee,
			LalamoveQuotationID: arg.LalamoveQuotationID,
			BranchID:            arg.BranchID,
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		result.Order = order

		result.OrderItems = make([]OrderItem, 0, len(arg.Items))
		for _, item := range arg.Items {
			itemID, _ := uuid.NewV7()

			orderItem, err := qTx.CreateOrderItem(ctx, CreateOrderItemParams{
				ID:                itemID.String(),
				OrderID:           order.ID,
				MenuItemID:        item.MenuItemID,
				MenuItemName:      item.MenuItemName,
				Quantity:          item.Quantity,
				UnitPrice:         item.UnitPrice,
				TotalPrice:        item.UnitPrice * float64(item.Quantity),
				SelectedVariation: item.SelectedVariation,
				SelectedAddOns:    item.SelectedAddOns,
			})
			if err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}

			result.OrderItems = append(result.OrderItems, orderItem)
		}

		return nil
	})

	return result, err
}
