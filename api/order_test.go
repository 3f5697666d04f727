package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/event"
	"github.com/stretchr/testify/require"
)

func validOrderBody(serviceType string) map[string]any {
	body := map[string]any{
		"customer_name":  "Maria Santos",
		"contact_number": "+639181234567",
		"service_type":   serviceType,
		"payment_method": "gcash",
		"total":          350.0,
		"items": []map[string]any{
			{"menu_item_name": "Chicken Adobo", "quantity": 2, "unit_price": 175.0},
		},
	}
	if serviceType == "delivery" {
		body["address"] = "123 Main St, Quezon City"
	}
	return body
}

func siteSettingsForTest() []db.SiteSetting {
	settings := []db.SiteSetting{}
	for key, value := range map[string]string{
		"lalamove_market":       "PH",
		"lalamove_service_type": "MOTORCYCLE",
		"lalamove_sandbox":      "true",
		"store_name":            "Beracah Kitchen",
		"store_phone":           "+639170000000",
		"store_address":         "456 Branch Ave, Quezon City",
		"store_latitude":        "14.6331",
		"store_longitude":       "121.0452",
	} {
		settings = append(settings, db.SiteSetting{Key: key, Value: value})
	}
	return settings
}

func TestCreateOrder(t *testing.T) {
	var capturedArg db.CreateOrderTxParams
	store := &mockStore{
		createOrderTxFunc: func(ctx context.Context, arg db.CreateOrderTxParams) (db.CreateOrderTxResult, error) {
			capturedArg = arg
			return db.CreateOrderTxResult{
				Order: db.Order{ID: "order-1", OrderNumber: "ORD-TEST123456", ServiceType: arg.ServiceType, Status: db.OrderStatusPending},
			}, nil
		},
	}
	server, eventSender, taskDistributor := newTestServer(t, store, &mockDeliveryProvider{})

	recorder := postJSON(server, "/v1/orders", validOrderBody("pickup"))

	require.Equal(t, http.StatusCreated, recorder.Code)

	require.Equal(t, "Maria Santos", capturedArg.CustomerName)
	require.Equal(t, db.ServiceTypePickup, capturedArg.ServiceType)
	require.Len(t, capturedArg.Items, 1)
	require.Equal(t, int64(2), capturedArg.Items[0].Quantity)

	var result db.CreateOrderTxResult
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	require.Equal(t, "ORD-TEST123456", result.Order.OrderNumber)

	require.Len(t, eventSender.events, 1)
	require.Equal(t, event.EventTypeOrderCreated, eventSender.events[0].Type)

	require.Len(t, taskDistributor.notifyPayloads, 1)
	require.Equal(t, "order-1", taskDistributor.notifyPayloads[0].OrderID)
	require.Empty(t, taskDistributor.deliveryPayloads)
}

func TestCreateOrderWithQuotationEnqueuesDeliveryTask(t *testing.T) {
	store := &mockStore{
		createOrderTxFunc: func(ctx context.Context, arg db.CreateOrderTxParams) (db.CreateOrderTxResult, error) {
			return db.CreateOrderTxResult{
				Order: db.Order{ID: "order-2", OrderNumber: "ORD-TEST234567", ServiceType: arg.ServiceType, LalamoveQuotationID: arg.LalamoveQuotationID},
			}, nil
		},
		listSiteSettingsFunc: func(ctx context.Context) ([]db.SiteSetting, error) {
			return siteSettingsForTest(), nil
		},
	}
	server, _, taskDistributor := newTestServer(t, store, &mockDeliveryProvider{})

	body := validOrderBody("delivery")
	body["lalamove_quotation_id"] = "Q1"
	body["delivery_fee"] = 85.0

	recorder := postJSON(server, "/v1/orders", body)

	require.Equal(t, http.StatusCreated, recorder.Code)

	require.Len(t, taskDistributor.deliveryPayloads, 1)
	payload := taskDistributor.deliveryPayloads[0]
	require.Equal(t, "order-2", payload.OrderID)
	require.Equal(t, "PH", payload.Store.Market)
	require.Equal(t, "Beracah Kitchen", payload.Store.StoreName)
}

func TestCreateOrderIncompleteSettingsSkipsDeliveryTask(t *testing.T) {
	store := &mockStore{
		createOrderTxFunc: func(ctx context.Context, arg db.CreateOrderTxParams) (db.CreateOrderTxResult, error) {
			return db.CreateOrderTxResult{
				Order: db.Order{ID: "order-3", OrderNumber: "ORD-TEST345678"},
			}, nil
		},
		listSiteSettingsFunc: func(ctx context.Context) ([]db.SiteSetting, error) {
			return []db.SiteSetting{}, nil
		},
	}
	server, _, taskDistributor := newTestServer(t, store, &mockDeliveryProvider{})

	body := validOrderBody("delivery")
	body["lalamove_quotation_id"] = "Q1"

	recorder := postJSON(server, "/v1/orders", body)

	// The order itself still goes through.
	require.Equal(t, http.StatusCreated, recorder.Code)
	require.Empty(t, taskDistributor.deliveryPayloads)
	require.Len(t, taskDistributor.notifyPayloads, 1)
}

func TestCreateOrderValidation(t *testing.T) {
	server, _, _ := newTestServer(t, &mockStore{}, &mockDeliveryProvider{})

	testCases := []struct {
		name   string
		mutate func(body map[string]any)
	}{
		{name: "missing customer name", mutate: func(body map[string]any) { delete(body, "customer_name") }},
		{name: "bad service type", mutate: func(body map[string]any) { body["service_type"] = "teleport" }},
		{name: "bad payment method", mutate: func(body map[string]any) { body["payment_method"] = "barter" }},
		{name: "zero total", mutate: func(body map[string]any) { body["total"] = 0 }},
		{name: "no items", mutate: func(body map[string]any) { body["items"] = []map[string]any{} }},
		{name: "delivery without address", mutate: func(body map[string]any) {
			body["service_type"] = "delivery"
			delete(body, "address")
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := validOrderBody("pickup")
			tc.mutate(body)

			recorder := postJSON(server, "/v1/orders", body)

			require.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
