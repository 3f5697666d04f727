package worker

import (
	"context"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/event"
	"github.com/beracah/beracah-BE/internal/lalamove"
	"github.com/beracah/beracah-BE/internal/mailer"
	"github.com/beracah/beracah-BE/internal/notification"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

/*
This file contains the code that picks tasks up from the Redis queue and processes them.
*/

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

type RedisTaskProcessor struct {
	server          *asynq.Server
	store           db.Store
	deliveryService lalamove.DeliveryProvider
	notifier        *notification.DiscordNotifier
	mailSender      *mailer.GmailSender
	eventSender     event.EventSender
}

func NewRedisTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	deliveryService lalamove.DeliveryProvider,
	notifier *notification.DiscordNotifier,
	mailSender *mailer.GmailSender,
	eventSender event.EventSender,
) *RedisTaskProcessor {
	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger: NewLogger(),
		},
	)

	return &RedisTaskProcessor{
		server:          server,
		store:           store,
		deliveryService: deliveryService,
		notifier:        notifier,
		mailSender:      mailSender,
		eventSender:     eventSender,
	}
}

// Start registers the task handlers for the mux, attaches the mux to the asynq server, and starts the server.
func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskCreateDeliveryOrder, processor.ProcessTaskCreateDeliveryOrder)
	mux.HandleFunc(TaskNotifyNewOrder, processor.ProcessTaskNotifyNewOrder)

	return processor.server.Start(mux)
}
