package lalamove

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignRequestFixedVector(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	timestamp, signature := signRequest("test-secret", "POST", "/quotations", `{"data":{}}`, now)

	require.Equal(t, "2025-01-01T00:00:00.000Z", timestamp)
	require.Equal(t, "mi9mZRMGZIEknnKbwkyU5XbTuH4zhXFBsm+nJx3TyT4=", signature)
}

func TestSignRequestDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 15, 8, 30, 0, 0, time.UTC)

	_, first := signRequest("test-secret", "POST", "/orders", `{"data":{"quotationId":"Q1"}}`, now)
	_, second := signRequest("test-secret", "POST", "/orders", `{"data":{"quotationId":"Q1"}}`, now)

	require.Equal(t, first, second)
}

func TestSignRequestAvalanche(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, base := signRequest("test-secret", "POST", "/quotations", `{"data":{}}`, now)

	testCases := []struct {
		name   string
		secret string
		method string
		path   string
		body   string
	}{
		{name: "different secret", secret: "test-secreT", method: "POST", path: "/quotations", body: `{"data":{}}`},
		{name: "different method", secret: "test-secret", method: "GET", path: "/quotations", body: `{"data":{}}`},
		{name: "different path", secret: "test-secret", method: "POST", path: "/quotation", body: `{"data":{}}`},
		{name: "different body", secret: "test-secret", method: "POST", path: "/quotations", body: `{"data":{ }}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, signature := signRequest(tc.secret, tc.method, tc.path, tc.body, now)
			require.NotEqual(t, base, signature)
		})
	}
}

func TestSignRequestTimestampIsUTCMilliseconds(t *testing.T) {
	manila := time.FixedZone("PHT", 8*60*60)
	now := time.Date(2025, 3, 10, 20, 15, 30, 123_000_000, manila)

	timestamp, _ := signRequest("test-secret", "GET", "/orders/abc", "", now)

	require.Equal(t, "2025-03-10T12:15:30.123Z", timestamp)
}
