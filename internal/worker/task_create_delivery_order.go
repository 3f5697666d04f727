package worker

import (
	"context"
	"encoding/json"
	"fmt"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/event"
	"github.com/beracah/beracah-BE/internal/lalamove"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// PayloadCreateDeliveryOrder carries everything needed to confirm a
// quotation into a Lalamove order after checkout. The store config is
// captured at enqueue time so the task does not depend on settings that
// may change before it runs.
type PayloadCreateDeliveryOrder struct {
	OrderID string
	Store   lalamove.StoreConfig
}

func (distributor *RedisTaskDistributor) DistributeTaskCreateDeliveryOrder(
	ctx context.Context,
	payload *PayloadCreateDeliveryOrder,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskCreateDeliveryOrder, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskCreateDeliveryOrder(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadCreateDeliveryOrder
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	order, err := processor.store.GetOrderByID(ctx, payload.OrderID)
	if err != nil {
		return fmt.Errorf("failed to get order %s: %w", payload.OrderID, asynq.SkipRetry)
	}

	if order.LalamoveQuotationID == nil || *order.LalamoveQuotationID == "" {
		return fmt.Errorf("order %s has no quotation: %w", order.ID, asynq.SkipRetry)
	}

	// A delivery order already exists for this quotation; creating another
	// would duplicate the upstream delivery.
	if order.LalamoveOrderID != nil && *order.LalamoveOrderID != "" {
		log.Info().Str("order_id", order.ID).Msg("delivery order already created, skipping")
		return nil
	}

	remarks := ""
	if order.Landmark != nil {
		remarks = *order.Landmark
	}

	metadata := map[string]any{
		"internalOrderId": order.ID,
		"orderNumber":     order.OrderNumber,
	}
	if order.Address != nil {
		metadata["deliveryAddress"] = *order.Address
	}

	result, err := processor.deliveryService.CreateOrder(ctx, lalamove.CreateOrderParams{
		QuotationID:      *order.LalamoveQuotationID,
		RecipientName:    order.CustomerName,
		RecipientPhone:   order.ContactNumber,
		RecipientRemarks: remarks,
		Metadata:         metadata,
		Store:            payload.Store,
	})
	if err != nil {
		// The order record stays intact without tracking fields; this is
		// a non-fatal partial failure from the customer's point of view.
		return fmt.Errorf("failed to create delivery order for %s: %w", order.ID, err)
	}

	updated, err := processor.store.UpdateOrderDeliveryInfo(ctx, db.UpdateOrderDeliveryInfoParams{
		ID:                  order.ID,
		LalamoveOrderID:     &result.OrderID,
		LalamoveStatus:      &result.Status,
		LalamoveTrackingURL: &result.ShareLink,
	})
	if err != nil {
		return fmt.Errorf("failed to persist delivery info for %s: %w", order.ID, err)
	}

	processor.eventSender.Broadcast(event.Event{
		Topic: event.TopicOrders,
		Type:  event.EventTypeDeliveryUpdated,
		Data:  updated,
	})

	log.Info().Str("type", task.Type()).Str("order_id", order.ID).
		Str("lalamove_order_id", result.OrderID).Msg("task processed")

	return nil
}
