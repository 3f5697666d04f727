package api

import (
	"context"
	"os"
	"testing"
	"time"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/event"
	"github.com/beracah/beracah-BE/internal/lalamove"
	"github.com/beracah/beracah-BE/internal/token"
	"github.com/beracah/beracah-BE/internal/util"
	"github.com/beracah/beracah-BE/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// --- Mocks ---

type mockEventSender struct {
	events []event.Event
}

func (m *mockEventSender) Register(topic string, client chan event.Event)   {}
func (m *mockEventSender) Unregister(topic string, client chan event.Event) {}
func (m *mockEventSender) Broadcast(ev event.Event) {
	m.events = append(m.events, ev)
}
func (m *mockEventSender) Run() {}

type mockDeliveryProvider struct {
	requestQuoteFunc    func(ctx context.Context, cfg lalamove.StoreConfig, deliveryAddress string, coord lalamove.Coordinates) (*lalamove.Quote, error)
	createOrderFunc     func(ctx context.Context, arg lalamove.CreateOrderParams) (*lalamove.OrderResult, error)
	getOrderDetailsFunc func(ctx context.Context, cfg lalamove.StoreConfig, orderID string) (*lalamove.OrderDetails, error)
}

func (m *mockDeliveryProvider) RequestQuote(ctx context.Context, cfg lalamove.StoreConfig, deliveryAddress string, coord lalamove.Coordinates) (*lalamove.Quote, error) {
	return m.requestQuoteFunc(ctx, cfg, deliveryAddress, coord)
}

func (m *mockDeliveryProvider) CreateOrder(ctx context.Context, arg lalamove.CreateOrderParams) (*lalamove.OrderResult, error) {
	return m.createOrderFunc(ctx, arg)
}

func (m *mockDeliveryProvider) GetOrderDetails(ctx context.Context, cfg lalamove.StoreConfig, orderID string) (*lalamove.OrderDetails, error) {
	return m.getOrderDetailsFunc(ctx, cfg, orderID)
}

type mockTaskDistributor struct {
	deliveryPayloads []*worker.PayloadCreateDeliveryOrder
	notifyPayloads   []*worker.PayloadNotifyNewOrder
}

func (m *mockTaskDistributor) DistributeTaskCreateDeliveryOrder(ctx context.Context, payload *worker.PayloadCreateDeliveryOrder, opts ...asynq.Option) error {
	m.deliveryPayloads = append(m.deliveryPayloads, payload)
	return nil
}

func (m *mockTaskDistributor) DistributeTaskNotifyNewOrder(ctx context.Context, payload *worker.PayloadNotifyNewOrder, opts ...asynq.Option) error {
	m.notifyPayloads = append(m.notifyPayloads, payload)
	return nil
}

// mockStore embeds the Store interface so each test only implements the
// queries it touches.
type mockStore struct {
	db.Store

	createOrderTxFunc             func(ctx context.Context, arg db.CreateOrderTxParams) (db.CreateOrderTxResult, error)
	listOrdersFunc                func(ctx context.Context, arg db.ListOrdersParams) ([]db.Order, error)
	listSiteSettingsFunc          func(ctx context.Context) ([]db.SiteSetting, error)
	getOrderByLalamoveOrderIDFunc func(ctx context.Context, lalamoveOrderID string) (db.Order, error)
	updateOrderDeliveryStatusFunc func(ctx context.Context, arg db.UpdateOrderDeliveryStatusParams) error
}

func (m *mockStore) CreateOrderTx(ctx context.Context, arg db.CreateOrderTxParams) (db.CreateOrderTxResult, error) {
	return m.createOrderTxFunc(ctx, arg)
}

func (m *mockStore) ListOrders(ctx context.Context, arg db.ListOrdersParams) ([]db.Order, error) {
	return m.listOrdersFunc(ctx, arg)
}

func (m *mockStore) ListSiteSettings(ctx context.Context) ([]db.SiteSetting, error) {
	return m.listSiteSettingsFunc(ctx)
}

func (m *mockStore) GetOrderByLalamoveOrderID(ctx context.Context, lalamoveOrderID string) (db.Order, error) {
	return m.getOrderByLalamoveOrderIDFunc(ctx, lalamoveOrderID)
}

func (m *mockStore) UpdateOrderDeliveryStatus(ctx context.Context, arg db.UpdateOrderDeliveryStatusParams) error {
	return m.updateOrderDeliveryStatusFunc(ctx, arg)
}

// --- Helpers ---

func newTestServer(t *testing.T, store db.Store, provider lalamove.DeliveryProvider) (*Server, *mockEventSender, *mockTaskDistributor) {
	t.Helper()

	tokenMaker, err := token.NewJWTMaker("12345678901234567890123456789012")
	require.NoError(t, err)

	eventSender := &mockEventSender{}
	taskDistributor := &mockTaskDistributor{}

	server := &Server{
		dbStore:    store,
		tokenMaker: tokenMaker,
		config: &util.Config{
			AllowedOrigins:        []string{"http://localhost:3000"},
			TokenSecretKey:        "12345678901234567890123456789012",
			AccessTokenDuration:   time.Hour,
			LalamoveWebhookSecret: "webhook-secret",
		},
		taskDistributor: taskDistributor,
		deliveryService: provider,
		eventSender:     eventSender,
	}
	server.setupRouter()

	return server, eventSender, taskDistributor
}
