package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

type PayloadNotifyNewOrder struct {
	OrderID string
}

func (distributor *RedisTaskDistributor) DistributeTaskNotifyNewOrder(
	ctx context.Context,
	payload *PayloadNotifyNewOrder,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskNotifyNewOrder, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Info().Str("type", task.Type()).Bytes("payload", task.Payload()).Str("queue", info.Queue).Int("max_retry", info.MaxRetry).Msg("task enqueued")

	return nil
}

func (processor *RedisTaskProcessor) ProcessTaskNotifyNewOrder(
	ctx context.Context,
	task *asynq.Task,
) error {
	var payload PayloadNotifyNewOrder
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	order, err := processor.store.GetOrderByID(ctx, payload.OrderID)
	if err != nil {
		return fmt.Errorf("failed to get order %s: %w", payload.OrderID, asynq.SkipRetry)
	}

	items, err := processor.store.ListOrderItemsByOrderID(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("failed to list order items: %w", err)
	}

	if processor.notifier != nil {
		if err = processor.notifier.NotifyNewOrder(order, len(items)); err != nil {
			log.Error().Err(err).Str("order_id", order.ID).Msg("failed to send discord notification")
		}
	}

	if processor.mailSender != nil {
		if err = processor.mailSender.SendOrderReceipt(order, items); err != nil {
			log.Error().Err(err).Str("order_id", order.ID).Msg("failed to send order receipt email")
		}
	}

	log.Info().Str("type", task.Type()).Str("order_id", order.ID).Msg("task processed")

	return nil
}
