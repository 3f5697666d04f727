package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	db "github.com/beracah/beracah-BE/internal/db/sqlc"
	"github.com/beracah/beracah-BE/internal/event"
	"github.com/beracah/beracah-BE/internal/lalamove"
	"github.com/stretchr/testify/require"
)

func validQuoteBody() map[string]any {
	return map[string]any{
		"deliveryAddress": "123 Main St",
		"deliveryLat":     14.55,
		"deliveryLng":     121.02,
		"market":          "PH",
		"serviceType":     "MOTORCYCLE",
		"sandbox":         true,
		"storeName":       "Beracah Kitchen",
		"storePhone":      "+639170000000",
		"storeAddress":    "456 Branch Ave, Quezon City",
		"storeLatitude":   14.6331,
		"storeLongitude":  121.0452,
	}
}

func postJSON(server *Server, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	request.Header.Set("Content-Type", "application/json")
	server.router.ServeHTTP(recorder, request)
	return recorder
}

func TestDeliveryQuote(t *testing.T) {
	provider := &mockDeliveryProvider{
		requestQuoteFunc: func(ctx context.Context, cfg lalamove.StoreConfig, deliveryAddress string, coord lalamove.Coordinates) (*lalamove.Quote, error) {
			require.Equal(t, "123 Main St", deliveryAddress)
			require.Equal(t, 14.55, coord.Lat)
			require.Equal(t, 121.02, coord.Lng)
			require.True(t, cfg.Sandbox)

			return &lalamove.Quote{
				QuotationID: "Q1",
				Price:       85,
				Currency:    "PHP",
				ExpiresAt:   "2025-01-01T00:00:00Z",
			}, nil
		},
	}
	server, _, _ := newTestServer(t, nil, provider)

	recorder := postJSON(server, "/v1/delivery/quote", validQuoteBody())

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp lalamove.Quote
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Equal(t, "Q1", resp.QuotationID)
	require.Equal(t, 85.0, resp.Price)
	require.Equal(t, "PHP", resp.Currency)
	require.Equal(t, "2025-01-01T00:00:00Z", resp.ExpiresAt)
}

func TestDeliveryQuoteMissingFields(t *testing.T) {
	server, _, _ := newTestServer(t, nil, &mockDeliveryProvider{})

	testCases := []struct {
		name   string
		mutate func(body map[string]any)
	}{
		{name: "missing address", mutate: func(body map[string]any) { delete(body, "deliveryAddress") }},
		{name: "missing lat", mutate: func(body map[string]any) { delete(body, "deliveryLat") }},
		{name: "missing lng", mutate: func(body map[string]any) { delete(body, "deliveryLng") }},
		{name: "missing market", mutate: func(body map[string]any) { delete(body, "market") }},
		{name: "missing store name", mutate: func(body map[string]any) { delete(body, "storeName") }},
		{name: "missing store coords", mutate: func(body map[string]any) { delete(body, "storeLatitude") }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := validQuoteBody()
			tc.mutate(body)

			recorder := postJSON(server, "/v1/delivery/quote", body)

			require.Equal(t, http.StatusBadRequest, recorder.Code)
			require.Contains(t, recorder.Body.String(), "error")
		})
	}
}

func TestDeliveryOrderUpstreamError(t *testing.T) {
	provider := &mockDeliveryProvider{
		createOrderFunc: func(ctx context.Context, arg lalamove.CreateOrderParams) (*lalamove.OrderResult, error) {
			return nil, &lalamove.UpstreamError{
				Status: http.StatusForbidden,
				Body:   `{"message":"quotation expired"}`,
			}
		},
	}
	server, _, _ := newTestServer(t, nil, provider)

	body := validQuoteBody()
	body["quotationId"] = "Q1"
	body["recipientName"] = "Juan dela Cruz"
	body["recipientPhone"] = "+639181111111"

	recorder := postJSON(server, "/v1/delivery/order", body)

	require.Equal(t, http.StatusForbidden, recorder.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["error"])

	// The raw upstream body never reaches the client.
	require.NotContains(t, recorder.Body.String(), "quotation expired")
}

func TestDeliveryOrderMissingFields(t *testing.T) {
	server, _, _ := newTestServer(t, nil, &mockDeliveryProvider{})

	for _, missing := range []string{"quotationId", "recipientName", "recipientPhone"} {
		t.Run("missing "+missing, func(t *testing.T) {
			body := validQuoteBody()
			body["quotationId"] = "Q1"
			body["recipientName"] = "Juan dela Cruz"
			body["recipientPhone"] = "+639181111111"
			delete(body, missing)

			recorder := postJSON(server, "/v1/delivery/order", body)

			require.Equal(t, http.StatusBadRequest, recorder.Code)
			require.Contains(t, recorder.Body.String(), missing)
		})
	}
}

func TestDeliveryUnknownAction(t *testing.T) {
	server, _, _ := newTestServer(t, nil, &mockDeliveryProvider{})

	recorder := postJSON(server, "/v1/delivery/refund", map[string]any{})

	require.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestDeliveryPreflight(t *testing.T) {
	server, _, _ := newTestServer(t, nil, &mockDeliveryProvider{})

	for _, path := range []string{"/v1/delivery/quote", "/v1/delivery/order"} {
		t.Run(path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodOptions, path, nil)
			request.Header.Set("Origin", "http://anywhere.example")
			request.Header.Set("Access-Control-Request-Method", "POST")
			server.router.ServeHTTP(recorder, request)

			require.Equal(t, http.StatusNoContent, recorder.Code)
			require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
			require.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), "POST")
			require.Empty(t, recorder.Body.String())
		})
	}
}

func TestDeliveryWebhook(t *testing.T) {
	webhookBody := `{"eventType":"ORDER_STATUS_CHANGED","data":{"order":{"orderId":"O1","status":"PICKED_UP"}}}`
	signature := "dbb78769cc2d888d76afc4075485bd729721267530949682d9cc18c7652f2b2c"

	var updatedStatus string
	store := &mockStore{
		updateOrderDeliveryStatusFunc: func(ctx context.Context, arg db.UpdateOrderDeliveryStatusParams) error {
			require.Equal(t, "O1", arg.LalamoveOrderID)
			updatedStatus = arg.LalamoveStatus
			return nil
		},
		getOrderByLalamoveOrderIDFunc: func(ctx context.Context, lalamoveOrderID string) (db.Order, error) {
			return db.Order{ID: "order-1", OrderNumber: "ORD-TEST123456"}, nil
		},
	}
	server, eventSender, _ := newTestServer(t, store, &mockDeliveryProvider{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/delivery/webhook", strings.NewReader(webhookBody))
	request.Header.Set(deliveryWebhookSignatureHeader, signature)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "PICKED_UP", updatedStatus)

	require.Len(t, eventSender.events, 1)
	require.Equal(t, event.EventTypeDeliveryUpdated, eventSender.events[0].Type)
}

func TestDeliveryWebhookBadSignature(t *testing.T) {
	server, _, _ := newTestServer(t, &mockStore{}, &mockDeliveryProvider{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/delivery/webhook", strings.NewReader(`{}`))
	request.Header.Set(deliveryWebhookSignatureHeader, fmt.Sprintf("%064d", 0))
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}
