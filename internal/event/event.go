package event

// Event is one message pushed to dashboard clients.
type Event struct {
	Topic string // e.g. "orders"
	Type  string // order_created, order_updated, delivery_updated
	Data  interface{}
}

const (
	TopicOrders = "orders"

	EventTypeOrderCreated    = "order_created"
	EventTypeOrderUpdated    = "order_updated"
	EventTypeDeliveryUpdated = "delivery_updated"
)

// EventSender represents the server pushing events to connected clients.
type EventSender interface {
	Register(topic string, client chan Event)
	Unregister(topic string, client chan Event)
	Broadcast(event Event)
	Run()
}
