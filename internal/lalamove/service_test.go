package lalamove

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubCredentials struct {
	values map[string]string
}

func (s *stubCredentials) GetRequiredSecret(name string) (string, error) {
	value, ok := s.values[name]
	if !ok || value == "" {
		return "", fmt.Errorf("missing required secret %s", name)
	}
	return value, nil
}

func newTestService(upstreamURL string) *Service {
	service := NewService(&stubCredentials{values: map[string]string{
		"LALAMOVE_API_KEY":    "pk_test_key",
		"LALAMOVE_API_SECRET": "test-secret",
	}})
	service.baseURLOverride = upstreamURL
	service.now = func() time.Time {
		return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return service
}

func TestRequestQuote(t *testing.T) {
	var capturedPath, capturedMarket, capturedAuth, capturedRequestID string
	var capturedBody []byte

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedMarket = r.Header.Get("X-LLM-Market")
		capturedAuth = r.Header.Get("Authorization")
		capturedRequestID = r.Header.Get("X-Request-Id")
		capturedBody, _ = io.ReadAll(r.Body)

		fmt.Fprint(w, `{"data":{"quotationId":"Q1","priceBreakdown":{"total":"85.00","currency":"PHP"},"expiresAt":"2025-01-01T00:00:00Z"}}`)
	}))
	defer upstream.Close()

	service := newTestService(upstream.URL)

	quote, err := service.RequestQuote(context.Background(), storeConfigForTest(), "123 Main St", Coordinates{Lat: 14.55, Lng: 121.02})
	require.NoError(t, err)

	require.Equal(t, "Q1", quote.QuotationID)
	require.Equal(t, 85.0, quote.Price)
	require.Equal(t, "PHP", quote.Currency)
	require.Equal(t, "2025-01-01T00:00:00Z", quote.ExpiresAt)

	require.Equal(t, "/quotations", capturedPath)
	require.Equal(t, "PH", capturedMarket)
	require.True(t, strings.HasPrefix(capturedAuth, "hmac pk_test_key:"))
	require.NotEmpty(t, capturedRequestID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(capturedBody, &payload))
	data := payload["data"].(map[string]any)
	require.Equal(t, "MOTORCYCLE", data["serviceType"])
	require.Equal(t, "en_PH", data["language"])
	require.Len(t, data["stops"], 2)

	item := data["item"].(map[string]any)
	require.Equal(t, "1", item["quantity"])
	require.Equal(t, "LESS_THAN_3_KG", item["weight"])
	require.Equal(t, []any{"FOOD_DELIVERY"}, item["categories"])
	require.Equal(t, []any{"KEEP_UPRIGHT"}, item["handlingInstructions"])
}

func TestRequestQuoteToleratesMissingTotal(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data":{"quotationId":"Q2","priceBreakdown":{"currency":"PHP"}}}`)
	}))
	defer upstream.Close()

	service := newTestService(upstream.URL)

	quote, err := service.RequestQuote(context.Background(), storeConfigForTest(), "123 Main St", Coordinates{Lat: 14.55, Lng: 121.02})
	require.NoError(t, err)
	require.Equal(t, "Q2", quote.QuotationID)
	require.Zero(t, quote.Price)
	require.Empty(t, quote.ExpiresAt)
}

func TestCreateOrder(t *testing.T) {
	var capturedPath string
	var capturedBody []byte

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedBody, _ = io.ReadAll(r.Body)

		fmt.Fprint(w, `{"data":{"orderId":"O1","status":"ASSIGNING_DRIVER","shareLink":"https://share.example/O1","driverId":""}}`)
	}))
	defer upstream.Close()

	service := newTestService(upstream.URL)

	result, err := service.CreateOrder(context.Background(), CreateOrderParams{
		QuotationID:      "Q1",
		RecipientName:    "Juan dela Cruz",
		RecipientPhone:   "+639181111111",
		RecipientRemarks: "Blue gate beside the bakery",
		Store:            storeConfigForTest(),
	})
	require.NoError(t, err)

	require.Equal(t, "O1", result.OrderID)
	require.Equal(t, "ASSIGNING_DRIVER", result.Status)
	require.Equal(t, "https://share.example/O1", result.ShareLink)
	require.Empty(t, result.DriverID)

	require.Equal(t, "/orders", capturedPath)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(capturedBody, &payload))
	data := payload["data"].(map[string]any)
	require.Equal(t, "Q1", data["quotationId"])
	require.Equal(t, true, data["isPODEnabled"])

	sender := data["sender"].(map[string]any)
	require.Equal(t, "Beracah Kitchen", sender["name"])
	require.Equal(t, "+639170000000", sender["phone"])

	recipients := data["recipients"].([]any)
	require.Len(t, recipients, 1)
	recipient := recipients[0].(map[string]any)
	require.Equal(t, "Juan dela Cruz", recipient["name"])
	require.Equal(t, "Blue gate beside the bakery", recipient["remarks"])

	require.NotNil(t, data["metadata"])
}

func TestCreateOrderUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message":"quotation expired"}`)
	}))
	defer upstream.Close()

	service := newTestService(upstream.URL)

	_, err := service.CreateOrder(context.Background(), CreateOrderParams{
		QuotationID:    "Q1",
		RecipientName:  "Juan dela Cruz",
		RecipientPhone: "+639181111111",
		Store:          storeConfigForTest(),
	})

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	require.Equal(t, http.StatusForbidden, upstreamErr.Status)
	require.Contains(t, upstreamErr.Body, "quotation expired")
}

func TestGetOrderDetails(t *testing.T) {
	var capturedMethod, capturedPath string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		capturedPath = r.URL.Path

		fmt.Fprint(w, `{"data":{"orderId":"O1","status":"COMPLETED","shareLink":"https://share.example/O1","driverId":"D9"}}`)
	}))
	defer upstream.Close()

	service := newTestService(upstream.URL)

	details, err := service.GetOrderDetails(context.Background(), storeConfigForTest(), "O1")
	require.NoError(t, err)

	require.Equal(t, http.MethodGet, capturedMethod)
	require.Equal(t, "/orders/O1", capturedPath)
	require.Equal(t, "COMPLETED", details.Status)
	require.Equal(t, "D9", details.DriverID)
}

func TestMissingCredentialFailsBeforeNetwork(t *testing.T) {
	requestCount := 0
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
	}))
	defer upstream.Close()

	service := NewService(&stubCredentials{values: map[string]string{
		"LALAMOVE_API_KEY": "pk_test_key",
	}})
	service.baseURLOverride = upstream.URL

	_, err := service.RequestQuote(context.Background(), storeConfigForTest(), "123 Main St", Coordinates{Lat: 14.55, Lng: 121.02})
	require.Error(t, err)
	require.Contains(t, err.Error(), "LALAMOVE_API_SECRET")
	require.Zero(t, requestCount)
}
