package deliverytracking

import (
	"context"
	"time"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/event"
	"github.com/beracah/beracah-BE/internal/lalamove"
	"github.com/beracah/beracah-BE/internal/notification"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// DeliveryTracker polls Lalamove for the status of in-flight delivery
// orders and mirrors it into the orders table.
type DeliveryTracker struct {
	store           db.Store
	deliveryService lalamove.DeliveryProvider
	storeConfig     lalamove.StoreConfig
	notifier        *notification.DiscordNotifier
	eventSender     event.EventSender
	scheduler       gocron.Scheduler
	pollInterval    time.Duration
}

func NewDeliveryTracker(
	store db.Store,
	deliveryService lalamove.DeliveryProvider,
	storeConfig lalamove.StoreConfig,
	notifier *notification.DiscordNotifier,
	eventSender event.EventSender,
) (*DeliveryTracker, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &DeliveryTracker{
		store:           store,
		deliveryService: deliveryService,
		storeConfig:     storeConfig,
		notifier:        notifier,
		eventSender:     eventSender,
		scheduler:       scheduler,
		pollInterval:    30 * time.Second,
	}, nil
}

// Start runs the status polling job until Stop is called.
func (t *DeliveryTracker) Start() error {
	_, err := t.scheduler.NewJob(
		gocron.DurationJob(t.pollInterval),
		gocron.NewTask(
			func() {
				t.checkDeliveryStatus()
			},
		),
	)
	if err != nil {
		return err
	}

	t.scheduler.Start()
	return nil
}

func (t *DeliveryTracker) Stop() error {
	return t.scheduler.Shutdown()
}

// checkDeliveryStatus fetches the Lalamove status of every order with an
// active delivery and updates the database when it changed.
func (t *DeliveryTracker) checkDeliveryStatus() {
	ctx := context.Background()

	orders, err := t.store.ListOrdersWithActiveDelivery(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list orders for delivery tracking")
		return
	}

	for _, order := range orders {
		if order.LalamoveOrderID == nil || *order.LalamoveOrderID == "" {
			continue
		}

		details, err := t.deliveryService.GetOrderDetails(ctx, t.storeConfig, *order.LalamoveOrderID)
		if err != nil {
			log.Error().Err(err).
				Str("order_number", order.OrderNumber).
				Str("lalamove_order_id", *order.LalamoveOrderID).
				Msg("failed to get delivery order details")
			continue
		}

		currentStatus := ""
		if order.LalamoveStatus != nil {
			currentStatus = *order.LalamoveStatus
		}
		if details.Status == currentStatus {
			continue
		}

		log.Info().
			Str("order_number", order.OrderNumber).
			Str("old_status", currentStatus).
			Str("new_status", details.Status).
			Msg("delivery status changed, updating database")

		err = t.store.UpdateOrderDeliveryStatus(ctx, db.UpdateOrderDeliveryStatusParams{
			LalamoveOrderID: *order.LalamoveOrderID,
			LalamoveStatus:  details.Status,
		})
		if err != nil {
			log.Error().Err(err).
				Str("lalamove_order_id", *order.LalamoveOrderID).
				Msg("failed to update delivery status")
			continue
		}

		updated := order
		updated.LalamoveStatus = &details.Status

		// A completed delivery completes the order; the other Lalamove
		// statuses only update the tracking fields.
		if details.Status == "COMPLETED" && order.Status != db.OrderStatusCompleted {
			updated, err = t.store.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
				ID:     order.ID,
				Status: db.OrderStatusCompleted,
			})
			if err != nil {
				log.Error().Err(err).
					Str("order_number", order.OrderNumber).
					Msg("failed to complete delivered order")
				continue
			}
		}

		t.eventSender.Broadcast(event.Event{
			Topic: event.TopicOrders,
			Type:  event.EventTypeDeliveryUpdated,
			Data:  updated,
		})

		if t.notifier != nil {
			if err = t.notifier.NotifyDeliveryUpdate(order.OrderNumber, details.Status); err != nil {
				log.Error().Err(err).
					Str("order_number", order.OrderNumber).
					Msg("failed to send delivery update notification")
			}
		}
	}
}
