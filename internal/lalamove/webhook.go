package lalamove

import (
	"github.com/zpmep/hmacutil"
)

// WebhookEvent is the payload Lalamove posts to our status-update callback.
type WebhookEvent struct {
	EventType string `json:"eventType"`
	Data      struct {
		Order struct {
			OrderID   string `json:"orderId"`
			Status    string `json:"status"`
			ShareLink string `json:"shareLink"`
			DriverID  string `json:"driverId"`
		} `json:"order"`
	} `json:"data"`
}

// VerifyWebhookSignature checks the hex HMAC-SHA256 of the raw webhook body
// against the signature header.
func VerifyWebhookSignature(secret, rawBody, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}

	expected := hmacutil.HexStringEncode(hmacutil.SHA256, secret, rawBody)
	return expected == signature
}
