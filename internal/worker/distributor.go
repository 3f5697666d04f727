package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

const (
	TaskCreateDeliveryOrder = "delivery:create_order"
	TaskNotifyNewOrder      = "order:notify"
)

/*
This file contains the code to create tasks and distribute them to the Redis queue.
*/

type TaskDistributor interface {
	DistributeTaskCreateDeliveryOrder(ctx context.Context, payload *PayloadCreateDeliveryOrder, opts ...asynq.Option) error
	DistributeTaskNotifyNewOrder(ctx context.Context, payload *PayloadNotifyNewOrder, opts ...asynq.Option) error
}

type RedisTaskDistributor struct {
	client *asynq.Client // client sends tasks to redis queue.
}

func NewTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)

	return &RedisTaskDistributor{
		client: client,
	}
}
